package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TravelPlanController struct {
	planService services.TravelPlanServiceInterface
}

func NewTravelPlanController(planService services.TravelPlanServiceInterface) *TravelPlanController {
	return &TravelPlanController{planService: planService}
}

// CreateTravelPlan godoc
// @Summary Publish a new travel plan
// @Tags TravelPlans
// @Accept json
// @Produce json
// @Param request body request_models.CreateTravelPlanRequest true "Travel plan payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travel-plans [post]
func (t *TravelPlanController) CreateTravelPlan(c *gin.Context) {
	var req request_models.CreateTravelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := t.planService.CreateTravelPlan(c.Request.Context(), c.GetString("user_email"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, plan, "Travel plan created successfully")
}

// GetTravelPlanByID godoc
// @Summary Get a travel plan with owner, reviews, and join requests
// @Tags TravelPlans
// @Produce json
// @Param id path string true "Travel plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /travel-plans/{id} [get]
func (t *TravelPlanController) GetTravelPlanByID(c *gin.Context) {
	plan, err := t.planService.GetTravelPlanByID(c.Request.Context(), c.Param("id"), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Travel plan retrieved successfully")
}

// ListTravelPlans godoc
// @Summary List travel plans, newest first
// @Tags TravelPlans
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} utils.APIResponse
// @Router /travel-plans [get]
func (t *TravelPlanController) ListTravelPlans(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	plans, err := t.planService.ListTravelPlans(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Travel plans fetched successfully")
}

// MatchTravelPlans godoc
// @Summary Find plans matching destination, country, type, keyword, or interests
// @Tags TravelPlans
// @Produce json
// @Param destination query string false "Exact destination"
// @Param country query string false "Exact country"
// @Param travel_type query string false "Travel type"
// @Param search query string false "Keyword across title/destination/country/description"
// @Param interests query []string false "Owner interests overlap"
// @Success 200 {object} utils.APIResponse
// @Router /travel-plans/match [get]
func (t *TravelPlanController) MatchTravelPlans(c *gin.Context) {
	var q request_models.MatchTravelPlansQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	plans, err := t.planService.MatchTravelPlans(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Travel plans matched successfully")
}

// UpdateTravelPlan godoc
// @Summary Update an owned travel plan
// @Tags TravelPlans
// @Accept json
// @Produce json
// @Param id path string true "Travel plan ID"
// @Param request body request_models.UpdateTravelPlanRequest true "Plan patch"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travel-plans/{id} [patch]
func (t *TravelPlanController) UpdateTravelPlan(c *gin.Context) {
	var patch request_models.UpdateTravelPlanRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := t.planService.UpdateTravelPlan(c.Request.Context(), c.Param("id"), c.GetString("user_email"), patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Travel plan updated successfully")
}

// DeleteTravelPlan godoc
// @Summary Delete an owned travel plan
// @Tags TravelPlans
// @Produce json
// @Param id path string true "Travel plan ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travel-plans/{id} [delete]
func (t *TravelPlanController) DeleteTravelPlan(c *gin.Context) {
	if err := t.planService.DeleteTravelPlan(c.Request.Context(), c.Param("id"), c.GetString("user_email")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Travel plan deleted successfully")
}
