package family_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuliptour/internal/api/controllers"
	"tuliptour/internal/repositories"
	"tuliptour/internal/services"
)

var Module = fx.Provide(
	provideFamilyRepo, provideFamilyService, provideFamilyController,
)

func provideFamilyRepo(db *gorm.DB) repositories.FamilyRepositoryInterface {
	return repositories.NewFamilyRepository(db)
}

func provideFamilyService(familyRepo repositories.FamilyRepositoryInterface) services.FamilyServiceInterface {
	return services.NewFamilyService(familyRepo)
}

func provideFamilyController(familyService services.FamilyServiceInterface) *controllers.FamilyController {
	return controllers.NewFamilyController(familyService)
}
