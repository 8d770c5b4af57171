package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type AdminServiceInterface interface {
	CreateAdmin(ctx context.Context, req request_models.CreateAdminRequest) (*resp.AdminResponse, error)
	GetAdmin(ctx context.Context, id string) (*resp.AdminResponse, error)
	ListAdmins(ctx context.Context, page, pageSize int) ([]resp.AdminResponse, int64, error)
	UpdateAdmin(ctx context.Context, id string, patch request_models.UpdateAdminRequest) (*resp.AdminResponse, error)
	DeleteAdmin(ctx context.Context, id string) error
	SoftDeleteAdmin(ctx context.Context, id string) error
	GetAppStatistics(ctx context.Context) (*resp.AppStatistics, error)
}

type AdminService struct {
	adminRepo repositories.AdminRepository
	userRepo  repositories.UserRepository
	statsRepo repositories.StatisticsRepository
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	userRepo repositories.UserRepository,
	statsRepo repositories.StatisticsRepository,
) AdminServiceInterface {
	return &AdminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

func (s *AdminService) CreateAdmin(ctx context.Context, req request_models.CreateAdminRequest) (*resp.AdminResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleAdmin,
		Status:       db_models.UserStatusActive,
		ProfileImage: req.ProfilePhoto,
	}
	admin := &db_models.Admin{
		Name:          req.Name,
		Email:         req.Email,
		ProfilePhoto:  req.ProfilePhoto,
		ContactNumber: req.ContactNumber,
	}

	// Credential row and admin row commit together or not at all.
	if err := s.adminRepo.CreateWithUser(ctx, user, admin); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return adminResponse(admin), nil
}

func (s *AdminService) GetAdmin(ctx context.Context, id string) (*resp.AdminResponse, error) {
	adminID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if admin == nil {
		return nil, utils.ErrAdminNotFound
	}
	return adminResponse(admin), nil
}

func (s *AdminService) ListAdmins(ctx context.Context, page, pageSize int) ([]resp.AdminResponse, int64, error) {
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	admins, total, err := s.adminRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	out := make([]resp.AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, *adminResponse(&admins[i]))
	}
	return out, total, nil
}

func (s *AdminService) UpdateAdmin(ctx context.Context, id string, patch request_models.UpdateAdminRequest) (*resp.AdminResponse, error) {
	adminID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.ContactNumber != nil {
		updates["contact_number"] = *patch.ContactNumber
	}
	if patch.ProfilePhoto != nil {
		updates["profile_photo"] = *patch.ProfilePhoto
	}

	if err := s.adminRepo.UpdateFields(ctx, adminID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAdminNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil || admin == nil {
		return nil, utils.ErrDatabaseError
	}
	return adminResponse(admin), nil
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id string) error {
	adminID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	admin, err := s.adminRepo.DeleteWithUser(ctx, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if admin == nil {
		return utils.ErrAdminNotFound
	}
	return nil
}

func (s *AdminService) SoftDeleteAdmin(ctx context.Context, id string) error {
	adminID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	admin, err := s.adminRepo.SoftDeleteWithUser(ctx, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if admin == nil {
		return utils.ErrAdminNotFound
	}
	return nil
}

func (s *AdminService) GetAppStatistics(ctx context.Context) (*resp.AppStatistics, error) {
	activeUsers, err := s.statsRepo.CountActiveUsers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalPlans, err := s.statsRepo.CountTravelPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	groupsFormed, err := s.statsRepo.CountAcceptedJoinRequests(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	countries, err := s.statsRepo.CountDistinctCountries(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	images, err := s.statsRepo.SampleProfileImages(ctx, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.AppStatistics{
		ActiveUsers:      activeUsers,
		TotalTravelPlans: totalPlans,
		GroupsFormed:     groupsFormed,
		Countries:        countries,
		CommunityImages:  images,
	}, nil
}

func adminResponse(a *db_models.Admin) *resp.AdminResponse {
	return &resp.AdminResponse{
		ID:            a.ID.String(),
		Name:          a.Name,
		Email:         a.Email,
		ProfilePhoto:  a.ProfilePhoto,
		ContactNumber: a.ContactNumber,
	}
}
