package controllers_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewTravelPlanController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewPaymentController))
