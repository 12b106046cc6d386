package draft

import (
	"context"
	"encoding/json"

	"tracker/internal/entities"
	"tracker/internal/wizard"
)

// Receipt результат отправки мастера: первая вставленная строка и ссылка
// на печатную форму.
type Receipt struct {
	Value    any
	Location string
}

// ActionFunc изменяет состояние формы без смены шага (add-line, select-dispatch...).
type ActionFunc[S any] func(ctx context.Context, state S, args json.RawMessage) (S, error)

// Flow описание конкретного мастера.
type Flow[S any] struct {
	Kind     entities.DraftKind
	Steps    int
	Initial  func() S
	Validate wizard.Validator[S]
	Submit   func(ctx context.Context, actor string, state S) (Receipt, error)
	Actions  map[entities.WizardAction]ActionFunc[S]
}
