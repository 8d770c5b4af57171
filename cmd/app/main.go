package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripmate/cmd/fx/account_fx"
	"tripmate/cmd/fx/admin_fx"
	"tripmate/cmd/fx/controllers_fx"
	"tripmate/cmd/fx/dashboard_fx"
	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/payments_fx"
	"tripmate/cmd/fx/plans_fx"
	"tripmate/cmd/fx/reviews_fx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		plans_fx.Module,
		reviews_fx.Module,
		dashboard_fx.Module,
		admin_fx.Module,
		payments_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	planController *controllers.TravelPlanController,
	reviewController *controllers.ReviewController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, userController, planController, reviewController, adminController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	planController *controllers.TravelPlanController,
	reviewController *controllers.ReviewController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	// Gateway callbacks carry their own event ids, not user tokens.
	paymentGroup := r.Group("/payments")
	paymentGroup.POST("/webhook", paymentController.HandleWebhook)

	userGroup := r.Group("/users", middleware.JWTAuthMiddleware())
	userGroup.GET("/me", userController.GetMyProfile)
	userGroup.PATCH("/me", userController.UpdateMyProfile)
	userGroup.POST("/me/photo", userController.UploadProfileImage)
	userGroup.GET("/dashboard", userController.GetDashboard)
	userGroup.POST("/join-requests", userController.SendJoinRequest)
	userGroup.PATCH("/join-requests/:id", userController.UpdateJoinRequestStatus)
	userGroup.PATCH("/:id/status",
		middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"),
		userController.ChangeUserStatus)
	userGroup.DELETE("/:id",
		middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"),
		userController.HardDeleteUser)

	planGroup := r.Group("/travel-plans", middleware.JWTAuthMiddleware())
	planGroup.POST("", planController.CreateTravelPlan)
	planGroup.GET("", planController.ListTravelPlans)
	planGroup.GET("/match", planController.MatchTravelPlans)
	planGroup.GET("/:id", planController.GetTravelPlanByID)
	planGroup.PATCH("/:id", planController.UpdateTravelPlan)
	planGroup.DELETE("/:id", planController.DeleteTravelPlan)
	planGroup.POST("/:id/reviews", reviewController.CreateReview)
	planGroup.GET("/:id/reviews", reviewController.GetReviewsByPlan)

	reviewGroup := r.Group("/reviews", middleware.JWTAuthMiddleware())
	reviewGroup.PATCH("/:id", reviewController.UpdateReview)
	reviewGroup.DELETE("/:id", reviewController.DeleteReview)

	adminGroup := r.Group("/admins",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"))
	adminGroup.POST("", adminController.CreateAdmin)
	adminGroup.GET("", adminController.ListAdmins)
	adminGroup.GET("/statistics", adminController.GetAppStatistics)
	adminGroup.GET("/:id", adminController.GetAdmin)
	adminGroup.PATCH("/:id", adminController.UpdateAdmin)
	adminGroup.DELETE("/:id", adminController.DeleteAdmin)
	adminGroup.PATCH("/:id/soft-delete", adminController.SoftDeleteAdmin)
}
