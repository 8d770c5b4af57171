package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreateReview godoc
// @Summary Review a completed trip
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Travel plan ID"
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travel-plans/{id}/reviews [post]
func (r *ReviewController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), c.Param("id"), c.GetString("user_email"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, review, "Review created successfully")
}

// GetReviewsByPlan godoc
// @Summary List a plan's reviews with the mean rating
// @Tags Reviews
// @Produce json
// @Param id path string true "Travel plan ID"
// @Success 200 {object} utils.APIResponse
// @Router /travel-plans/{id}/reviews [get]
func (r *ReviewController) GetReviewsByPlan(c *gin.Context) {
	reviews, err := r.reviewService.GetReviewsByPlan(c.Request.Context(), c.Param("id"), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

// UpdateReview godoc
// @Summary Update an owned review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body request_models.UpdateReviewRequest true "Review patch"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [patch]
func (r *ReviewController) UpdateReview(c *gin.Context) {
	var patch request_models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := r.reviewService.UpdateReview(c.Request.Context(), c.Param("id"), c.GetString("user_email"), patch); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review updated successfully")
}

// DeleteReview godoc
// @Summary Delete an owned review
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (r *ReviewController) DeleteReview(c *gin.Context) {
	if err := r.reviewService.DeleteReview(c.Request.Context(), c.Param("id"), c.GetString("user_email")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review deleted successfully")
}
