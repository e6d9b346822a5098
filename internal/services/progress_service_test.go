package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/pkg/utils"
)

type fakeProgressRepo struct {
	entries []*db_models.ProgressEntry
}

func (f *fakeProgressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
	var out []db_models.ProgressEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) Insert(ctx context.Context, entry *db_models.ProgressEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeProgressRepo) FindByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.ProgressEntry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errInvalidUUIDSyntax
	}
	for _, e := range f.entries {
		if e.ID.String() == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func TestCreateEntryStampsRecordedAt(t *testing.T) {
	svc := NewProgressService(&fakeProgressRepo{})

	entry, err := svc.CreateEntry(context.Background(), uuid.New(), request_models.CreateProgressRequest{
		EntryType: "weight",
		Value:     71.2,
		Unit:      "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, "weight", entry.EntryType)
	assert.NotZero(t, entry.RecordedAt)
}

func TestGetEntryScopedToOwner(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewProgressService(repo)
	owner := uuid.New()

	entry, err := svc.CreateEntry(context.Background(), owner, request_models.CreateProgressRequest{
		EntryType: "steps",
		Value:     9000,
	})
	require.NoError(t, err)

	got, err := svc.GetEntry(context.Background(), owner, entry.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)

	_, err = svc.GetEntry(context.Background(), uuid.New(), entry.ID.String())
	assert.ErrorIs(t, err, utils.ErrProgressNotFound)
}

func TestGetEntryMalformedIDIsNotFound(t *testing.T) {
	svc := NewProgressService(&fakeProgressRepo{})

	_, err := svc.GetEntry(context.Background(), uuid.New(), "abc")
	assert.ErrorIs(t, err, utils.ErrProgressNotFound)
}

func TestListEntriesOnlyOwn(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewProgressService(repo)
	owner := uuid.New()

	_, err := svc.CreateEntry(context.Background(), owner, request_models.CreateProgressRequest{EntryType: "weight", Value: 70})
	require.NoError(t, err)
	_, err = svc.CreateEntry(context.Background(), uuid.New(), request_models.CreateProgressRequest{EntryType: "weight", Value: 90})
	require.NoError(t, err)

	entries, err := svc.ListEntries(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
