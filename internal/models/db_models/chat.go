package db_models

import "github.com/google/uuid"

type ChatSession struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Title  string    `json:"title"`

	Messages []ChatMessage `gorm:"foreignKey:SessionID" json:"-"`
}

// ChatMessage rows are append-only; ordering within a session is by
// creation time, with Seq breaking ties when two turns of the same
// request land in the same second.
type ChatMessage struct {
	BaseModel
	Seq       int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	SessionID uuid.UUID `gorm:"type:uuid;index" json:"session_id"`
	Role      string    `json:"role"` // user or assistant
	Content   string    `json:"content"`
}
