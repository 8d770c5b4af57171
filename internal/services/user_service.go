package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/uploader"
	"tripmate/pkg/utils"
)

type UserServiceInterface interface {
	GetMyProfile(ctx context.Context, email string) (*resp.ProfileResponse, error)
	UpdateMyProfile(ctx context.Context, email string, patch request_models.UpdateProfileRequest) (*resp.ProfileResponse, error)
	UploadProfileImage(ctx context.Context, email string, base64Image string) (*resp.ProfileResponse, error)
	ChangeUserStatus(ctx context.Context, userID string, status string) error
	HardDeleteUser(ctx context.Context, userID string) error
}

type UserService struct {
	userRepo repositories.UserRepository
	uploader uploader.Uploader
}

func NewUserService(userRepo repositories.UserRepository, imageUploader uploader.Uploader) UserServiceInterface {
	return &UserService{userRepo: userRepo, uploader: imageUploader}
}

func (s *UserService) GetMyProfile(ctx context.Context, email string) (*resp.ProfileResponse, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return profileResponse(user), nil
}

// UpdateMyProfile applies the allow-listed patch fields; anything not
// named in UpdateProfileRequest never reaches the store.
func (s *UserService) UpdateMyProfile(ctx context.Context, email string, patch request_models.UpdateProfileRequest) (*resp.ProfileResponse, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.Age != nil {
		updates["age"] = *patch.Age
	}
	if patch.Gender != nil {
		updates["gender"] = *patch.Gender
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.City != nil {
		updates["city"] = *patch.City
	}
	if patch.CurrentLocation != nil {
		updates["current_location"] = *patch.CurrentLocation
	}
	if patch.Interests != nil {
		updates["interests"] = pq.StringArray(patch.Interests)
	}
	if patch.VisitedCountries != nil {
		updates["visited_countries"] = pq.StringArray(patch.VisitedCountries)
	}
	if patch.BudgetRange != nil {
		updates["budget_range"] = *patch.BudgetRange
	}
	if patch.ProfileImage != nil {
		updates["profile_image"] = *patch.ProfileImage
	}

	if err := s.userRepo.UpdateProfile(ctx, user.ID, updates); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updated, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	return profileResponse(updated), nil
}

// UploadProfileImage pushes the image to the blob store and persists
// the returned URL on the profile.
func (s *UserService) UploadProfileImage(ctx context.Context, email string, base64Image string) (*resp.ProfileResponse, error) {
	if base64Image == "" {
		return nil, utils.ErrInvalidInput
	}

	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	url, err := s.uploader.UploadBase64Image(ctx, base64Image, "profiles/"+user.ID.String())
	if err != nil {
		return nil, utils.ErrUploadFailed
	}

	if err := s.userRepo.UpdateProfile(ctx, user.ID, map[string]interface{}{"profile_image": url}); err != nil {
		return nil, utils.ErrDatabaseError
	}

	user.ProfileImage = &url
	return profileResponse(user), nil
}

func (s *UserService) ChangeUserStatus(ctx context.Context, userID string, status string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	switch db_models.UserStatus(status) {
	case db_models.UserStatusActive, db_models.UserStatusBlocked, db_models.UserStatusDeleted:
	default:
		return utils.ErrInvalidInput
	}

	if err := s.userRepo.UpdateStatus(ctx, id, db_models.UserStatus(status)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrUserNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

// HardDeleteUser permanently removes the account and its owned records.
// Unlike ChangeUserStatus this is not reversible.
func (s *UserService) HardDeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := s.userRepo.HardDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrUserNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func profileResponse(u *db_models.User) *resp.ProfileResponse {
	return &resp.ProfileResponse{
		PublicProfile:    toPublicProfile(u),
		Role:             string(u.Role),
		Status:           string(u.Status),
		Age:              u.Age,
		Gender:           u.Gender,
		CurrentLocation:  u.CurrentLocation,
		VisitedCountries: u.VisitedCountries,
		BudgetRange:      u.BudgetRange,
		CreatedAt:        utils.FromUnixSeconds(u.CreatedAt),
	}
}
