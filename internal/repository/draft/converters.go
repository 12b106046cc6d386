package draft

import (
	"encoding/json"

	"tracker/internal/entities"
)

func ToDomain(d *DraftDB) *entities.Draft {
	if d == nil {
		return nil
	}

	completed := make([]int, len(d.CompletedSteps))
	for i, step := range d.CompletedSteps {
		completed[i] = int(step)
	}

	return &entities.Draft{
		ID:        d.ID,
		Kind:      entities.DraftKind(d.Kind),
		OwnerID:   d.OwnerID,
		Step:      int(d.CurrentStep),
		Completed: completed,
		State:     json.RawMessage(d.State),
		UpdatedAt: d.UpdatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}

func FromDomain(d *entities.Draft) *DraftDB {
	if d == nil {
		return nil
	}

	completed := make([]int32, len(d.Completed))
	for i, step := range d.Completed {
		completed[i] = int32(step)
	}

	state := []byte(d.State)
	if len(state) == 0 {
		state = []byte("{}")
	}

	return &DraftDB{
		ID:             d.ID,
		Kind:           d.Kind.String(),
		OwnerID:        d.OwnerID,
		CurrentStep:    int32(d.Step),
		CompletedSteps: completed,
		State:          state,
		UpdatedAt:      d.UpdatedAt,
		ExpiresAt:      d.ExpiresAt,
	}
}
