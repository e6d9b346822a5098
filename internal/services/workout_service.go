package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/internal/models/response_models"
	"arogya/internal/repositories"
	"arogya/pkg/utils"
)

type WorkoutServiceInterface interface {
	ListPlans(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error)
	CreatePlan(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutPlanRequest) (*db_models.WorkoutPlan, error)
	ListWorkouts(ctx context.Context, userID uuid.UUID) ([]db_models.Workout, error)
	CreateWorkout(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutRequest) (*db_models.Workout, error)
	GetWorkout(ctx context.Context, userID uuid.UUID, id string) (*db_models.Workout, error)
	CompleteWorkout(ctx context.Context, userID uuid.UUID, request request_models.CompleteWorkoutRequest) (*db_models.Workout, error)
	SearchVideos(ctx context.Context, query string) []response_models.ExerciseVideo
}

type WorkoutService struct {
	workoutRepo  repositories.WorkoutRepository
	videoService VideoService
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository, videoService VideoService) WorkoutServiceInterface {
	return &WorkoutService{
		workoutRepo:  workoutRepo,
		videoService: videoService,
	}
}

func (w *WorkoutService) ListPlans(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error) {
	plans, err := w.workoutRepo.ListPlansByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (w *WorkoutService) CreatePlan(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutPlanRequest) (*db_models.WorkoutPlan, error) {
	plan := &db_models.WorkoutPlan{
		UserID:          userID,
		Name:            request.Name,
		Description:     request.Description,
		Difficulty:      request.Difficulty,
		DurationMinutes: request.DurationMinutes,
	}
	if len(request.PlanData) > 0 {
		plan.PlanData = datatypes.JSON(request.PlanData)
	}
	if err := w.workoutRepo.InsertPlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (w *WorkoutService) ListWorkouts(ctx context.Context, userID uuid.UUID) ([]db_models.Workout, error) {
	workouts, err := w.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workouts, nil
}

// CreateWorkout logs a session; exercises lacking a video_id get the top
// YouTube hit for their name when the video adapter is configured.
func (w *WorkoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutRequest) (*db_models.Workout, error) {
	workout := &db_models.Workout{
		UserID:          userID,
		Name:            request.Name,
		DurationMinutes: request.DurationMinutes,
		Notes:           request.Notes,
	}
	if request.PlanID != "" {
		planID, err := uuid.Parse(request.PlanID)
		if err != nil {
			return nil, utils.ErrWorkoutPlanNotFound
		}
		workout.PlanID = &planID
	}
	if len(request.Exercises) > 0 {
		workout.Exercises = datatypes.JSON(w.enrichExercises(ctx, request.Exercises))
	}

	if err := w.workoutRepo.Insert(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workout, nil
}

func (w *WorkoutService) GetWorkout(ctx context.Context, userID uuid.UUID, id string) (*db_models.Workout, error) {
	// A malformed id reads as absent; it must never reach the uuid
	// column and surface as a store error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrWorkoutNotFound
	}
	workout, err := w.workoutRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}
	return workout, nil
}

func (w *WorkoutService) CompleteWorkout(ctx context.Context, userID uuid.UUID, request request_models.CompleteWorkoutRequest) (*db_models.Workout, error) {
	if _, err := uuid.Parse(request.WorkoutID); err != nil {
		return nil, utils.ErrWorkoutNotFound
	}
	workout, err := w.workoutRepo.FindByID(ctx, userID, request.WorkoutID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	now := time.Now().Unix()
	workout.CompletedAt = &now
	if request.DurationMinutes > 0 {
		workout.DurationMinutes = request.DurationMinutes
	}
	if err := w.workoutRepo.Update(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workout, nil
}

func (w *WorkoutService) SearchVideos(ctx context.Context, query string) []response_models.ExerciseVideo {
	return w.videoService.SearchExerciseVideos(ctx, query, 5)
}

// enrichExercises fills missing video_id fields. Any decode trouble
// leaves the payload untouched.
func (w *WorkoutService) enrichExercises(ctx context.Context, raw json.RawMessage) json.RawMessage {
	var exercises []map[string]interface{}
	if err := json.Unmarshal(raw, &exercises); err != nil {
		return raw
	}

	changed := false
	for _, ex := range exercises {
		if _, has := ex["video_id"]; has {
			continue
		}
		name, _ := ex["name"].(string)
		if name == "" {
			continue
		}
		videos := w.videoService.SearchExerciseVideos(ctx, name, 1)
		if len(videos) > 0 {
			ex["video_id"] = videos[0].VideoID
			changed = true
		}
	}
	if !changed {
		return raw
	}

	enriched, err := json.Marshal(exercises)
	if err != nil {
		return raw
	}
	return enriched
}
