package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"tracker/internal/entities"
)

type Draft struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Step      int             `json:"step"`
	Completed []int           `json:"completed"`
	State     json.RawMessage `json:"state"`
	UpdatedAt time.Time       `json:"updatedAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func FromDraft(d entities.Draft) Draft {
	completed := d.Completed
	if completed == nil {
		completed = []int{}
	}
	return Draft{
		ID:        d.ID,
		Kind:      d.Kind.String(),
		Step:      d.Step,
		Completed: completed,
		State:     d.State,
		UpdatedAt: d.UpdatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}

type ActionRequest struct {
	Action string          `json:"action"`
	Step   int             `json:"step,omitempty"`
	Args   json.RawMessage `json:"args,omitempty"`
}

func (r ActionRequest) ToEntity() entities.ActionRequest {
	return entities.ActionRequest{
		Action: entities.WizardAction(r.Action),
		Step:   r.Step,
		Args:   r.Args,
	}
}

type Intent struct {
	Kind     string `json:"kind"`
	Step     int    `json:"step"`
	Location string `json:"location,omitempty"`
}

type WizardResult struct {
	Draft   Draft  `json:"draft"`
	Intent  Intent `json:"intent"`
	Receipt any    `json:"receipt,omitempty"`
}

func FromWizardResult(r entities.WizardResult) WizardResult {
	return WizardResult{
		Draft: FromDraft(r.Draft),
		Intent: Intent{
			Kind:     string(r.Intent.Kind),
			Step:     r.Intent.Step,
			Location: r.Intent.Location,
		},
		Receipt: receipt(r.Receipt),
	}
}

// receipt переводит первую вставленную строку документа в DTO.
func receipt(v any) any {
	switch r := v.(type) {
	case *entities.Dispatch:
		return FromDispatch(*r)
	case *entities.Delivery:
		return FromDelivery(*r)
	case *entities.Ticket:
		return FromTicket(*r)
	default:
		return v
	}
}
