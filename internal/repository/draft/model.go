package draft

import (
	"time"

	"github.com/google/uuid"
)

type DraftDB struct {
	ID             uuid.UUID
	Kind           string
	OwnerID        string
	CurrentStep    int32
	CompletedSteps []int32
	State          []byte
	UpdatedAt      time.Time
	ExpiresAt      time.Time
}
