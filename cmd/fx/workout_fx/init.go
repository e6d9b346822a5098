package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arogya/internal/api/controllers"
	"arogya/internal/repositories"
	"arogya/internal/services"
	mem "arogya/pkg/memcache"
)

var Module = fx.Provide(
	provideWorkoutRepo,
	provideVideoService,
	provideWorkoutService,
	provideWorkoutController,
)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideVideoService(cache mem.LookupCache) services.VideoService {
	return services.NewVideoService(cache)
}

func provideWorkoutService(workoutRepo repositories.WorkoutRepository, videoService services.VideoService) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo, videoService)
}

func provideWorkoutController(workoutService services.WorkoutServiceInterface) *controllers.WorkoutController {
	return controllers.NewWorkoutController(workoutService)
}
