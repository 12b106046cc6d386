//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wizard_draft_get_test
package wizard_draft_get

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"tracker/internal/entities"
	"tracker/internal/service/draft"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Wizards interface {
	Lookup(kind entities.DraftKind) (draft.Wizard, error)
}

// Wizard набор методов draft.Wizard.
type Wizard interface {
	Kind() entities.DraftKind
	Start(ctx context.Context, actor string) (*entities.Draft, error)
	Get(ctx context.Context, actor string, id uuid.UUID) (*entities.Draft, error)
	Patch(ctx context.Context, actor string, id uuid.UUID, patch json.RawMessage) (*entities.Draft, error)
	Act(ctx context.Context, actor string, id uuid.UUID, req entities.ActionRequest) (*entities.WizardResult, error)
}
