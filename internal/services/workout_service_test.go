package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/internal/models/response_models"
	"arogya/pkg/utils"
)

type fakeWorkoutRepo struct {
	plans    []*db_models.WorkoutPlan
	workouts []*db_models.Workout
}

func (f *fakeWorkoutRepo) ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error) {
	var out []db_models.WorkoutPlan
	for _, p := range f.plans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) InsertPlan(ctx context.Context, plan *db_models.WorkoutPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakeWorkoutRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Workout, error) {
	var out []db_models.Workout
	for _, w := range f.workouts {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) Insert(ctx context.Context, workout *db_models.Workout) error {
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	f.workouts = append(f.workouts, workout)
	return nil
}

func (f *fakeWorkoutRepo) FindByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.Workout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errInvalidUUIDSyntax
	}
	for _, w := range f.workouts {
		if w.ID.String() == id && w.UserID == userID {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkoutRepo) Update(ctx context.Context, workout *db_models.Workout) error {
	for i, w := range f.workouts {
		if w.ID == workout.ID {
			f.workouts[i] = workout
			return nil
		}
	}
	return nil
}

func (f *fakeWorkoutRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.workouts)), nil
}

// stubVideoService answers every query with a single fixed hit, or
// nothing when empty is set.
type stubVideoService struct {
	empty bool
}

func (s stubVideoService) SearchExerciseVideos(ctx context.Context, query string, maxResults int64) []response_models.ExerciseVideo {
	if s.empty {
		return []response_models.ExerciseVideo{}
	}
	return []response_models.ExerciseVideo{{
		VideoID: "vid-" + query,
		Title:   query + " tutorial",
	}}
}

func TestCreateWorkoutEnrichesMissingVideoIDs(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, stubVideoService{})
	userID := uuid.New()

	exercises := json.RawMessage(`[{"name":"squat"},{"name":"plank","video_id":"kept"}]`)
	workout, err := svc.CreateWorkout(context.Background(), userID, request_models.CreateWorkoutRequest{
		Name:      "Leg day",
		Exercises: exercises,
	})
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(workout.Exercises, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "vid-squat", got[0]["video_id"])
	assert.Equal(t, "kept", got[1]["video_id"])
}

func TestCreateWorkoutNoVideoAdapterLeavesPayload(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, stubVideoService{empty: true})

	exercises := json.RawMessage(`[{"name":"squat"}]`)
	workout, err := svc.CreateWorkout(context.Background(), uuid.New(), request_models.CreateWorkoutRequest{
		Name:      "Leg day",
		Exercises: exercises,
	})
	require.NoError(t, err)
	assert.JSONEq(t, string(exercises), string(workout.Exercises))
}

func TestCreateWorkoutInvalidPlanID(t *testing.T) {
	svc := NewWorkoutService(&fakeWorkoutRepo{}, stubVideoService{empty: true})

	_, err := svc.CreateWorkout(context.Background(), uuid.New(), request_models.CreateWorkoutRequest{
		Name:   "Run",
		PlanID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, utils.ErrWorkoutPlanNotFound)
}

func TestCompleteWorkoutStampsTime(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, stubVideoService{empty: true})
	userID := uuid.New()

	workout, err := svc.CreateWorkout(context.Background(), userID, request_models.CreateWorkoutRequest{Name: "Run"})
	require.NoError(t, err)
	require.Nil(t, workout.CompletedAt)

	done, err := svc.CompleteWorkout(context.Background(), userID, request_models.CompleteWorkoutRequest{
		WorkoutID:       workout.ID.String(),
		DurationMinutes: 45,
	})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.NotZero(t, *done.CompletedAt)
	assert.Equal(t, 45, done.DurationMinutes)
}

func TestCompleteWorkoutForeignOwnerIsNotFound(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, stubVideoService{empty: true})
	owner := uuid.New()

	workout, err := svc.CreateWorkout(context.Background(), owner, request_models.CreateWorkoutRequest{Name: "Run"})
	require.NoError(t, err)

	_, err = svc.CompleteWorkout(context.Background(), uuid.New(), request_models.CompleteWorkoutRequest{
		WorkoutID: workout.ID.String(),
	})
	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
	assert.Nil(t, repo.workouts[0].CompletedAt)
}

func TestWorkoutMalformedIDIsNotFound(t *testing.T) {
	svc := NewWorkoutService(&fakeWorkoutRepo{}, stubVideoService{empty: true})
	userID := uuid.New()

	_, err := svc.GetWorkout(context.Background(), userID, "abc")
	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)

	_, err = svc.CompleteWorkout(context.Background(), userID, request_models.CompleteWorkoutRequest{
		WorkoutID: "abc",
	})
	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
}

func TestGetWorkoutScopedToOwner(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, stubVideoService{empty: true})
	owner := uuid.New()

	workout, err := svc.CreateWorkout(context.Background(), owner, request_models.CreateWorkoutRequest{Name: "Swim"})
	require.NoError(t, err)

	got, err := svc.GetWorkout(context.Background(), owner, workout.ID.String())
	require.NoError(t, err)
	assert.Equal(t, workout.ID, got.ID)

	_, err = svc.GetWorkout(context.Background(), uuid.New(), workout.ID.String())
	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
}
