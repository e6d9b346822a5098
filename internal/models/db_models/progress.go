package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProgressEntry is an append-only log row: weight, measurement,
// workout-completion and similar free-form entry types.
type ProgressEntry struct {
	BaseModel
	UserID     uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	EntryType  string         `json:"entry_type"`
	Value      float64        `json:"value,omitempty"`
	Unit       string         `json:"unit,omitempty"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	RecordedAt int64          `json:"recorded_at"`
}
