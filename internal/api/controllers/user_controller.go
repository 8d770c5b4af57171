package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type UserController struct {
	userService        services.UserServiceInterface
	joinRequestService services.JoinRequestServiceInterface
	dashboardService   services.DashboardServiceInterface
}

func NewUserController(
	userService services.UserServiceInterface,
	joinRequestService services.JoinRequestServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *UserController {
	return &UserController{
		userService:        userService,
		joinRequestService: joinRequestService,
		dashboardService:   dashboardService,
	}
}

// GetMyProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (u *UserController) GetMyProfile(c *gin.Context) {
	profile, err := u.userService.GetMyProfile(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateMyProfile godoc
// @Summary Update the authenticated user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (u *UserController) UpdateMyProfile(c *gin.Context) {
	var patch request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := u.userService.UpdateMyProfile(c.Request.Context(), c.GetString("user_email"), patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// UploadProfileImage godoc
// @Summary Upload a profile image for the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UploadProfileImageRequest true "Base64 image payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me/photo [post]
func (u *UserController) UploadProfileImage(c *gin.Context) {
	var req request_models.UploadProfileImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := u.userService.UploadProfileImage(c.Request.Context(), c.GetString("user_email"), req.Image)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile image uploaded successfully")
}

// ChangeUserStatus godoc
// @Summary Change a user's status (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.ChangeUserStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id}/status [patch]
func (u *UserController) ChangeUserStatus(c *gin.Context) {
	var req request_models.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.ChangeUserStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User status updated successfully")
}

// HardDeleteUser godoc
// @Summary Permanently delete a user and their data (admin only)
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (u *UserController) HardDeleteUser(c *gin.Context) {
	if err := u.userService.HardDeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// GetDashboard godoc
// @Summary Get the authenticated user's dashboard snapshot
// @Description Owned-plan count, pending and accepted join requests with
// @Description requester profiles, review/payment counts, and upcoming trips.
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/dashboard [get]
func (u *UserController) GetDashboard(c *gin.Context) {
	stats, err := u.dashboardService.GetDashboardStats(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Dashboard data fetched successfully")
}

// SendJoinRequest godoc
// @Summary Request to join another traveler's plan
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.SendJoinRequest true "Join request payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/join-requests [post]
func (u *UserController) SendJoinRequest(c *gin.Context) {
	var req request_models.SendJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := u.joinRequestService.SendJoinRequest(c.Request.Context(), c.GetString("user_email"), req.TravelPlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, result, "Join request sent successfully")
}

// UpdateJoinRequestStatus godoc
// @Summary Accept or reject a pending join request on an owned plan
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "Join request ID"
// @Param request body request_models.UpdateJoinRequestStatus true "Decision payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/join-requests/{id} [patch]
func (u *UserController) UpdateJoinRequestStatus(c *gin.Context) {
	var req request_models.UpdateJoinRequestStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := u.joinRequestService.UpdateJoinRequestStatus(c.Request.Context(), c.Param("id"), c.GetString("user_email"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Join request updated successfully")
}
