package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP codes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrJoinRequestNotFound),
		errors.Is(err, ErrReviewNotFound),
		errors.Is(err, ErrAdminNotFound),
		errors.Is(err, ErrPaymentNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrDuplicateJoinRequest),
		errors.Is(err, ErrDuplicateReview):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrNotPlanOwner),
		errors.Is(err, ErrNotReviewAuthor),
		errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrOwnPlanJoinRequest),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrTripNotCompleted),
		errors.Is(err, ErrRequestAlreadyResolved):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrUploadFailed):
		log.Printf("Upload error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
