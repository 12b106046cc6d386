// Package wizard реализует пошаговый мастер: текущий шаг, накопленное
// состояние формы и множество пройденных шагов.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrInvalidSteps     = errors.New("wizard must have at least one step")
)

// Validator проверяет, можно ли уйти вперёд с шага step.
type Validator[S any] func(step int, state S) bool

// SubmitFunc отправляет собранное состояние с последнего шага.
type SubmitFunc[S any] func(ctx context.Context, state S) error

type Outcome int

const (
	OutcomeBlocked Outcome = iota
	OutcomeAdvanced
	OutcomeSubmitted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeSubmitted:
		return "submitted"
	default:
		return "blocked"
	}
}

// Snapshot сериализуемое состояние контроллера.
type Snapshot[S any] struct {
	Step      int
	Completed []int
	State     S
}

type Controller[S any] struct {
	steps      int
	initial    func() S
	validate   Validator[S]
	current    int
	state      S
	completed  map[int]struct{}
	submitting bool
}

func New[S any](steps int, initial func() S, validate Validator[S]) (*Controller[S], error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}
	return &Controller[S]{
		steps:     steps,
		initial:   initial,
		validate:  validate,
		current:   1,
		state:     initial(),
		completed: make(map[int]struct{}),
	}, nil
}

// Restore поднимает контроллер из сохранённого снимка. Шаг вне диапазона
// приводится к ближайшей границе.
func Restore[S any](steps int, initial func() S, validate Validator[S], snap Snapshot[S]) (*Controller[S], error) {
	c, err := New(steps, initial, validate)
	if err != nil {
		return nil, err
	}

	c.current = min(max(snap.Step, 1), steps)
	c.state = snap.State
	for _, step := range snap.Completed {
		if step >= 1 && step <= steps {
			c.completed[step] = struct{}{}
		}
	}
	return c, nil
}

func (c *Controller[S]) Steps() int {
	return c.steps
}

func (c *Controller[S]) Current() int {
	return c.current
}

func (c *Controller[S]) State() S {
	return c.state
}

// Update заменяет состояние формы целиком, шаг и пройденные шаги не меняются.
func (c *Controller[S]) Update(state S) {
	c.state = state
}

// Completed пройденные шаги по возрастанию.
func (c *Controller[S]) Completed() []int {
	out := make([]int, 0, len(c.completed))
	for step := range c.completed {
		out = append(out, step)
	}
	slices.Sort(out)
	return out
}

func (c *Controller[S]) Snapshot() Snapshot[S] {
	return Snapshot[S]{
		Step:      c.current,
		Completed: c.Completed(),
		State:     c.state,
	}
}

// Next переходит на следующий шаг, если текущий валиден. На последнем шаге
// вместо перехода вызывается submit: при успехе мастер сбрасывается,
// при ошибке состояние сохраняется для повторной попытки.
func (c *Controller[S]) Next(ctx context.Context, submit SubmitFunc[S]) (Outcome, error) {
	if c.submitting {
		return OutcomeBlocked, ErrSubmitInProgress
	}

	if !c.validate(c.current, c.state) {
		return OutcomeBlocked, nil
	}

	if c.current < c.steps {
		c.completed[c.current] = struct{}{}
		c.current++
		return OutcomeAdvanced, nil
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	if err := submit(ctx, c.state); err != nil {
		return OutcomeBlocked, fmt.Errorf("submit: %w", err)
	}

	c.Reset()
	return OutcomeSubmitted, nil
}

// Back никогда не валидирует.
func (c *Controller[S]) Back() bool {
	if c.current <= 1 {
		return false
	}
	c.current--
	return true
}

// JumpTo разрешает вернуться на пройденный или текущий шаг, но не перепрыгнуть вперёд.
func (c *Controller[S]) JumpTo(step int) bool {
	if step < 1 || step > c.furthest() {
		return false
	}
	c.current = step
	return true
}

func (c *Controller[S]) Reset() {
	c.state = c.initial()
	c.current = 1
	clear(c.completed)
}

func (c *Controller[S]) furthest() int {
	furthest := c.current
	for step := range c.completed {
		furthest = max(furthest, step)
	}
	return furthest
}
