package history

import (
	"time"

	"github.com/google/uuid"
)

// Conversion statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Conversion represents one recorded conversion run.
type Conversion struct {
	ID          uuid.UUID  `json:"id"`
	Source      string     `json:"source"`
	OutputPath  string     `json:"output_path,omitempty"`
	Pages       int        `json:"pages"`
	SizeBytes   int        `json:"size_bytes"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
