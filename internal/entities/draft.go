package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DraftKind string

const (
	DraftDispatch DraftKind = "dispatch"
	DraftLoading  DraftKind = "loading"
	DraftTicket   DraftKind = "ticket"
)

func (k DraftKind) String() string {
	return string(k)
}

// Draft сохранённое состояние мастера одного пользователя.
type Draft struct {
	ID        uuid.UUID
	Kind      DraftKind
	OwnerID   string
	Step      int
	Completed []int
	State     json.RawMessage
	UpdatedAt time.Time
	ExpiresAt time.Time
}

type WizardAction string

const (
	ActionNext           WizardAction = "next"
	ActionBack           WizardAction = "back"
	ActionJump           WizardAction = "jump"
	ActionAddLine        WizardAction = "add-line"
	ActionRemoveLine     WizardAction = "remove-line"
	ActionSelectDispatch WizardAction = "select-dispatch"
	ActionLoadLines      WizardAction = "load-lines"
)

type ActionRequest struct {
	Action WizardAction
	Step   int
	Args   json.RawMessage
}

type IntentKind string

const (
	IntentStay      IntentKind = "stay"
	IntentAdvance   IntentKind = "advance"
	IntentBack      IntentKind = "back"
	IntentJump      IntentKind = "jump"
	IntentSubmitted IntentKind = "submitted"
)

// NavigationIntent явный сигнал клиенту, куда перейти после действия.
type NavigationIntent struct {
	Kind     IntentKind
	Step     int
	Location string
}

type WizardResult struct {
	Draft   Draft
	Intent  NavigationIntent
	Receipt any
}
