package blog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuliptour/internal/api/controllers"
	"tuliptour/internal/repositories"
	"tuliptour/internal/services"
)

var Module = fx.Provide(
	provideBlogRepo, provideBlogService, provideBlogController,
)

func provideBlogRepo(db *gorm.DB) repositories.BlogRepositoryInterface {
	return repositories.NewBlogRepository(db)
}

func provideBlogService(blogRepo repositories.BlogRepositoryInterface) services.BlogServiceInterface {
	return services.NewBlogService(blogRepo)
}

func provideBlogController(blogService services.BlogServiceInterface) *controllers.BlogController {
	return controllers.NewBlogController(blogService)
}
