package nutrition_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arogya/internal/api/controllers"
	"arogya/internal/repositories"
	"arogya/internal/services"
	mem "arogya/pkg/memcache"
)

var Module = fx.Provide(
	provideNutritionRepo,
	provideNutritionService,
	provideSpoonacularService,
	provideNutritionController,
)

func provideNutritionRepo(db *gorm.DB) repositories.NutritionRepository {
	return repositories.NewNutritionRepository(db)
}

func provideNutritionService(nutritionRepo repositories.NutritionRepository) services.NutritionServiceInterface {
	return services.NewNutritionService(nutritionRepo)
}

func provideSpoonacularService(cache mem.LookupCache) services.SpoonacularService {
	return services.NewSpoonacularService(cache)
}

func provideNutritionController(
	nutritionService services.NutritionServiceInterface,
	spoonacularService services.SpoonacularService,
) *controllers.NutritionController {
	return controllers.NewNutritionController(nutritionService, spoonacularService)
}
