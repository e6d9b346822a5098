package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
)

type fakeHealthRepo struct {
	byUser map[uuid.UUID]*db_models.HealthAssessment
}

func newFakeHealthRepo() *fakeHealthRepo {
	return &fakeHealthRepo{byUser: make(map[uuid.UUID]*db_models.HealthAssessment)}
}

func (f *fakeHealthRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.HealthAssessment, error) {
	return f.byUser[userID], nil
}

func (f *fakeHealthRepo) Insert(ctx context.Context, assessment *db_models.HealthAssessment) error {
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	f.byUser[assessment.UserID] = assessment
	return nil
}

func (f *fakeHealthRepo) Update(ctx context.Context, assessment *db_models.HealthAssessment) error {
	f.byUser[assessment.UserID] = assessment
	return nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func TestUpsertAssessmentInsertsThenUpdates(t *testing.T) {
	repo := newFakeHealthRepo()
	svc := NewHealthService(repo)
	userID := uuid.New()

	first, updated, err := svc.UpsertAssessment(context.Background(), userID, request_models.UpsertAssessmentRequest{
		Age:      intPtr(30),
		WeightKg: floatPtr(72.5),
	})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 30, *first.Age)

	second, updated, err := svc.UpsertAssessment(context.Background(), userID, request_models.UpsertAssessmentRequest{
		WeightKg: floatPtr(71.0),
	})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 71.0, *second.WeightKg)
	// Fields the second request did not carry survive the update.
	require.NotNil(t, second.Age)
	assert.Equal(t, 30, *second.Age)
}

func TestUpsertAssessmentReplacesOnlySentSlices(t *testing.T) {
	repo := newFakeHealthRepo()
	svc := NewHealthService(repo)
	userID := uuid.New()

	_, _, err := svc.UpsertAssessment(context.Background(), userID, request_models.UpsertAssessmentRequest{
		HealthConditions: []string{"asthma"},
		Injuries:         []string{"knee"},
	})
	require.NoError(t, err)

	got, _, err := svc.UpsertAssessment(context.Background(), userID, request_models.UpsertAssessmentRequest{
		Injuries: []string{"shoulder"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"asthma"}, []string(got.HealthConditions))
	assert.Equal(t, []string{"shoulder"}, []string(got.Injuries))
}

func TestGetAssessmentMissingIsNil(t *testing.T) {
	svc := NewHealthService(newFakeHealthRepo())

	got, err := svc.GetAssessment(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpsertAssessmentNotesAndPreferences(t *testing.T) {
	repo := newFakeHealthRepo()
	svc := NewHealthService(repo)
	userID := uuid.New()

	got, updated, err := svc.UpsertAssessment(context.Background(), userID, request_models.UpsertAssessmentRequest{
		FitnessGoal:       stringPtr("weight_loss"),
		DietaryPreference: stringPtr("vegetarian"),
		Notes:             stringPtr("prefers morning sessions"),
	})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, "weight_loss", *got.FitnessGoal)
	assert.Equal(t, "vegetarian", *got.DietaryPreference)
	assert.Equal(t, "prefers morning sessions", *got.Notes)
}
