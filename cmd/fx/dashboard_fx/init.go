package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideDashboardRepo)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	joinRequestRepo repositories.JoinRequestRepository,
	userRepo repositories.UserRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, joinRequestRepo, userRepo)
}
