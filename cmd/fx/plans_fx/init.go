package plans_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	providePlanService, providePlanRepo, provideJoinRequestRepo, provideJoinRequestService)

func providePlanRepo(db *gorm.DB) repositories.TravelPlanRepository {
	return repositories.NewTravelPlanRepository(db)
}

func provideJoinRequestRepo(db *gorm.DB) repositories.JoinRequestRepository {
	return repositories.NewJoinRequestRepository(db)
}

func providePlanService(
	planRepo repositories.TravelPlanRepository,
	userRepo repositories.UserRepository,
) services.TravelPlanServiceInterface {
	return services.NewTravelPlanService(planRepo, userRepo)
}

func provideJoinRequestService(
	joinRequestRepo repositories.JoinRequestRepository,
	planRepo repositories.TravelPlanRepository,
	userRepo repositories.UserRepository,
) services.JoinRequestServiceInterface {
	return services.NewJoinRequestService(joinRequestRepo, planRepo, userRepo)
}
