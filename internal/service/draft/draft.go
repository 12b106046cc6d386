// Package draft хранит состояние мастеров на сервере и применяет к нему
// действия пользователя (next, back, jump, добавление строк и т.д.).
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"tracker/internal/entities"
	"tracker/internal/wizard"
)

// Wizard не зависящий от типа формы интерфейс для HTTP слоя.
type Wizard interface {
	Kind() entities.DraftKind
	Start(ctx context.Context, actor string) (*entities.Draft, error)
	Get(ctx context.Context, actor string, id uuid.UUID) (*entities.Draft, error)
	Patch(ctx context.Context, actor string, id uuid.UUID, patch json.RawMessage) (*entities.Draft, error)
	Act(ctx context.Context, actor string, id uuid.UUID, req entities.ActionRequest) (*entities.WizardResult, error)
}

type Wizards map[entities.DraftKind]Wizard

func NewWizards(wizards ...Wizard) Wizards {
	result := make(Wizards, len(wizards))
	for _, w := range wizards {
		result[w.Kind()] = w
	}
	return result
}

func (ws Wizards) Lookup(kind entities.DraftKind) (Wizard, error) {
	w, ok := ws[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return w, nil
}

type Service[S any] struct {
	flow       Flow[S]
	repository Repository
	txManager  TxManager
	ttl        time.Duration
	now        func() time.Time
}

func New[S any](flow Flow[S], repository Repository, txManager TxManager, ttl time.Duration) (*Service[S], error) {
	if ttl <= 0 {
		return nil, ErrInvalidDraftTTL
	}
	if _, err := wizard.New(flow.Steps, flow.Initial, flow.Validate); err != nil {
		return nil, fmt.Errorf("%s flow: %w", flow.Kind, err)
	}

	return &Service[S]{
		flow:       flow,
		repository: repository,
		txManager:  txManager,
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

func (s *Service[S]) Kind() entities.DraftKind {
	return s.flow.Kind
}

func (s *Service[S]) Start(ctx context.Context, actor string) (*entities.Draft, error) {
	ctrl, err := wizard.New(s.flow.Steps, s.flow.Initial, s.flow.Validate)
	if err != nil {
		return nil, err
	}

	draft, err := s.toDraft(uuid.New(), actor, ctrl)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, *draft); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return draft, nil
}

func (s *Service[S]) Get(ctx context.Context, actor string, id uuid.UUID) (*entities.Draft, error) {
	draft, err := s.repository.Get(ctx, id, actor)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if draft.Kind != s.flow.Kind {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// Patch накладывает частичный JSON на сохранённое состояние. Шаг не меняется.
func (s *Service[S]) Patch(ctx context.Context, actor string, id uuid.UUID, patch json.RawMessage) (*entities.Draft, error) {
	var result *entities.Draft
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ctrl, err := s.load(ctx, actor, id)
		if err != nil {
			return err
		}

		state := ctrl.State()
		if err := json.Unmarshal(patch, &state); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
		}
		ctrl.Update(state)

		result, err = s.save(ctx, id, actor, ctrl)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service[S]) Act(ctx context.Context, actor string, id uuid.UUID, req entities.ActionRequest) (*entities.WizardResult, error) {
	var result entities.WizardResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ctrl, err := s.load(ctx, actor, id)
		if err != nil {
			return err
		}

		intent, receipt, err := s.apply(ctx, actor, ctrl, req)
		if err != nil {
			return err
		}

		draft, err := s.save(ctx, id, actor, ctrl)
		if err != nil {
			return err
		}

		result = entities.WizardResult{
			Draft:   *draft,
			Intent:  intent,
			Receipt: receipt.Value,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service[S]) apply(
	ctx context.Context,
	actor string,
	ctrl *wizard.Controller[S],
	req entities.ActionRequest,
) (entities.NavigationIntent, Receipt, error) {
	stay := entities.NavigationIntent{Kind: entities.IntentStay, Step: ctrl.Current()}

	switch req.Action {
	case entities.ActionNext:
		step := ctrl.Current()
		var receipt Receipt
		outcome, err := ctrl.Next(ctx, func(ctx context.Context, state S) error {
			r, err := s.flow.Submit(ctx, actor, state)
			if err != nil {
				return err
			}
			receipt = r
			return nil
		})
		if err != nil {
			return stay, Receipt{}, err
		}

		switch outcome {
		case wizard.OutcomeAdvanced:
			return entities.NavigationIntent{Kind: entities.IntentAdvance, Step: ctrl.Current()}, Receipt{}, nil
		case wizard.OutcomeSubmitted:
			return entities.NavigationIntent{
				Kind:     entities.IntentSubmitted,
				Step:     ctrl.Current(),
				Location: receipt.Location,
			}, receipt, nil
		default:
			return stay, Receipt{}, fmt.Errorf("step %d: %w", step, ErrStepIncomplete)
		}

	case entities.ActionBack:
		if ctrl.Back() {
			return entities.NavigationIntent{Kind: entities.IntentBack, Step: ctrl.Current()}, Receipt{}, nil
		}
		return stay, Receipt{}, nil

	case entities.ActionJump:
		if ctrl.JumpTo(req.Step) {
			return entities.NavigationIntent{Kind: entities.IntentJump, Step: ctrl.Current()}, Receipt{}, nil
		}
		return stay, Receipt{}, nil
	}

	action, ok := s.flow.Actions[req.Action]
	if !ok {
		return stay, Receipt{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	state, err := action(ctx, ctrl.State(), req.Args)
	if err != nil {
		return stay, Receipt{}, fmt.Errorf("%s: %w", req.Action, err)
	}
	ctrl.Update(state)

	return stay, Receipt{}, nil
}

// load берёт черновик под блокировку строки, поэтому двойная отправка
// одного черновика выполняется последовательно.
func (s *Service[S]) load(ctx context.Context, actor string, id uuid.UUID) (*wizard.Controller[S], error) {
	draft, err := s.repository.GetForUpdate(ctx, id, actor)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if draft.Kind != s.flow.Kind {
		return nil, ErrDraftNotFound
	}

	state := s.flow.Initial()
	if len(draft.State) > 0 {
		if err := json.Unmarshal(draft.State, &state); err != nil {
			return nil, fmt.Errorf("decode draft state: %w", err)
		}
	}

	return wizard.Restore(s.flow.Steps, s.flow.Initial, s.flow.Validate, wizard.Snapshot[S]{
		Step:      draft.Step,
		Completed: draft.Completed,
		State:     state,
	})
}

func (s *Service[S]) save(ctx context.Context, id uuid.UUID, actor string, ctrl *wizard.Controller[S]) (*entities.Draft, error) {
	draft, err := s.toDraft(id, actor, ctrl)
	if err != nil {
		return nil, err
	}
	if err := s.repository.Save(ctx, *draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

func (s *Service[S]) toDraft(id uuid.UUID, actor string, ctrl *wizard.Controller[S]) (*entities.Draft, error) {
	snap := ctrl.Snapshot()
	state, err := json.Marshal(snap.State)
	if err != nil {
		return nil, fmt.Errorf("encode draft state: %w", err)
	}

	now := s.now().UTC()
	return &entities.Draft{
		ID:        id,
		Kind:      s.flow.Kind,
		OwnerID:   actor,
		Step:      snap.Step,
		Completed: snap.Completed,
		State:     state,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}, nil
}

// Cleaner удаляет просроченные черновики всех мастеров.
type Cleaner struct {
	repository Repository
	now        func() time.Time
}

func NewCleaner(repository Repository) *Cleaner {
	return &Cleaner{repository: repository, now: time.Now}
}

func (c *Cleaner) CleanupExpiredDrafts(ctx context.Context) (int64, error) {
	deleted, err := c.repository.DeleteExpired(ctx, c.now().UTC())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}
	return deleted, nil
}
