package utils

import "errors"

var (
	// Lookup failures
	ErrUserNotFound        = errors.New("user not found")
	ErrPlanNotFound        = errors.New("travel plan not found")
	ErrJoinRequestNotFound = errors.New("join request not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrPaymentNotFound     = errors.New("payment not found")

	// Uniqueness violations
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrDuplicateJoinRequest = errors.New("join request already exists for this plan")
	ErrDuplicateReview      = errors.New("plan already reviewed by this user")

	// Authorization / self-reference
	ErrOwnPlanJoinRequest = errors.New("cannot request to join your own plan")
	ErrNotPlanOwner       = errors.New("not the owner of this travel plan")
	ErrNotReviewAuthor    = errors.New("not the author of this review")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation / state
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
	ErrInvalidDateRange       = errors.New("start date must be before end date")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrTripNotCompleted       = errors.New("trip is not completed yet")
	ErrRequestAlreadyResolved = errors.New("join request already resolved")

	ErrDatabaseError = errors.New("database error")
	ErrUploadFailed  = errors.New("image upload failed")
)
