package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records every workflow action: session starts, step
// completions, abandons and expirations.
type AuditLog struct {
	ID         uuid.UUID  `json:"id"`
	SessionID  *uuid.UUID `json:"session_id,omitempty"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	Meta       any        `json:"meta,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
