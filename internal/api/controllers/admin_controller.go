package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{adminService: adminService}
}

// CreateAdmin godoc
// @Summary Create an admin account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateAdminRequest true "Admin payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admins [post]
func (a *AdminController) CreateAdmin(c *gin.Context) {
	var req request_models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	admin, err := a.adminService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, admin, "Admin created successfully")
}

// GetAdmin godoc
// @Summary Get an admin by id
// @Tags Admin
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admins/{id} [get]
func (a *AdminController) GetAdmin(c *gin.Context) {
	admin, err := a.adminService.GetAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, admin, "Admin retrieved successfully")
}

// ListAdmins godoc
// @Summary List admins
// @Tags Admin
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admins [get]
func (a *AdminController) ListAdmins(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	admins, total, err := a.adminService.ListAdmins(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"admins": admins, "total": total}, "Admins retrieved successfully")
}

// UpdateAdmin godoc
// @Summary Update an admin's profile fields
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body request_models.UpdateAdminRequest true "Admin patch"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admins/{id} [patch]
func (a *AdminController) UpdateAdmin(c *gin.Context) {
	var patch request_models.UpdateAdminRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	admin, err := a.adminService.UpdateAdmin(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, admin, "Admin updated successfully")
}

// DeleteAdmin godoc
// @Summary Permanently delete an admin and its account
// @Tags Admin
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admins/{id} [delete]
func (a *AdminController) DeleteAdmin(c *gin.Context) {
	if err := a.adminService.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Admin deleted successfully")
}

// SoftDeleteAdmin godoc
// @Summary Flag an admin as deleted without removing the rows
// @Tags Admin
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admins/{id}/soft-delete [patch]
func (a *AdminController) SoftDeleteAdmin(c *gin.Context) {
	if err := a.adminService.SoftDeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Admin soft-deleted successfully")
}

// GetAppStatistics godoc
// @Summary Platform-wide statistics for the admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admins/statistics [get]
func (a *AdminController) GetAppStatistics(c *gin.Context) {
	stats, err := a.adminService.GetAppStatistics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Statistics retrieved successfully")
}
