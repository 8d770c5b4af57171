package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/uploader"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo, provideUserService, provideUploader)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUploader() uploader.Uploader {
	return uploader.NewCloudinaryUploader()
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}

func provideUserService(userRepo repositories.UserRepository, imageUploader uploader.Uploader) services.UserServiceInterface {
	return services.NewUserService(userRepo, imageUploader)
}
