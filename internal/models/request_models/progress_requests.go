package request_models

import "encoding/json"

type CreateProgressRequest struct {
	EntryType string          `json:"entry_type" binding:"required"`
	Value     float64         `json:"value"`
	Unit      string          `json:"unit"`
	Metadata  json.RawMessage `json:"metadata"`
	Notes     string          `json:"notes"`
}
