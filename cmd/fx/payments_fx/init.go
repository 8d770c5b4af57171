package payments_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePaymentRepo)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(paymentRepo repositories.PaymentRepository) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo)
}
