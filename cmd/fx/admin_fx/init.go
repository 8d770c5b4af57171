package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideAdminService, provideAdminRepo, provideStatisticsRepo)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideStatisticsRepo(db *gorm.DB) repositories.StatisticsRepository {
	return repositories.NewStatisticsRepository(db)
}

func provideAdminService(
	adminRepo repositories.AdminRepository,
	userRepo repositories.UserRepository,
	statsRepo repositories.StatisticsRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, userRepo, statsRepo)
}
