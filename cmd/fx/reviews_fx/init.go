package reviews_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideReviewService, provideReviewRepo)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	planRepo repositories.TravelPlanRepository,
	userRepo repositories.UserRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, planRepo, userRepo)
}
