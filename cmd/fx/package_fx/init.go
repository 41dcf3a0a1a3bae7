package package_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuliptour/internal/api/controllers"
	"tuliptour/internal/repositories"
	"tuliptour/internal/services"
)

var Module = fx.Provide(
	providePackageRepo, providePackageService, providePackageController,
)

func providePackageRepo(db *gorm.DB) repositories.PackageRepositoryInterface {
	return repositories.NewPackageRepository(db)
}

func providePackageService(packageRepo repositories.PackageRepositoryInterface) services.PackageServiceInterface {
	return services.NewPackageService(packageRepo)
}

func providePackageController(packageService services.PackageServiceInterface) *controllers.PackageController {
	return controllers.NewPackageController(packageService)
}
