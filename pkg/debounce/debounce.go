// Package debounce откладывает вызов на окно тишины и отменяет
// устаревшие вызовы с тем же ключом, когда приходит более новый.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSuperseded = errors.New("superseded by a newer call")

type Group struct {
	window time.Duration

	mu    sync.Mutex
	seq   uint64
	calls map[string]call
}

type call struct {
	seq    uint64
	cancel context.CancelCauseFunc
}

func New(window time.Duration) *Group {
	return &Group{
		window: window,
		calls:  make(map[string]call),
	}
}

// Do ждёт окно тишины и выполняет fn. Если за это время (или пока fn
// выполняется) пришёл вызов с тем же ключом, текущий отменяется
// и возвращает ErrSuperseded, а его результат отбрасывается.
func Do[T any](ctx context.Context, g *Group, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	seq := g.register(key, cancel)
	defer g.release(key, seq)

	timer := time.NewTimer(g.window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if errors.Is(context.Cause(ctx), ErrSuperseded) {
			return zero, ErrSuperseded
		}
		return zero, ctx.Err()
	case <-timer.C:
	}

	res, err := fn(ctx)
	if errors.Is(context.Cause(ctx), ErrSuperseded) {
		return zero, ErrSuperseded
	}
	return res, err
}

func (g *Group) register(key string, cancel context.CancelCauseFunc) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	if prev, ok := g.calls[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	g.calls[key] = call{seq: g.seq, cancel: cancel}
	return g.seq
}

func (g *Group) release(key string, seq uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.calls[key]; ok && c.seq == seq {
		delete(g.calls, key)
	}
}
