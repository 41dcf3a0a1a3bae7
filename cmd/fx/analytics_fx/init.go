package analytics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuliptour/internal/api/controllers"
	"tuliptour/internal/repositories"
	"tuliptour/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsRepo, provideAnalyticsService, provideAnalyticsController,
)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepositoryInterface {
	return repositories.NewAnalyticsRepository(db)
}

func provideAnalyticsService(analyticsRepo repositories.AnalyticsRepositoryInterface) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(analyticsRepo)
}

func provideAnalyticsController(analyticsService services.AnalyticsServiceInterface) *controllers.AnalyticsController {
	return controllers.NewAnalyticsController(analyticsService)
}
