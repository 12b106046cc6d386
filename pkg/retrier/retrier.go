// Package retrier повтор операций с экспоненциальной паузой: подключение
// к базе и брокеру на старте, запись статусов при временных сбоях.
package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	Do(ctx context.Context, op func(context.Context) error) error
}

type Policy struct {
	Initial    time.Duration
	Max        time.Duration
	MaxElapsed time.Duration
	Jitter     float64
	Multiplier float64

	// MaxAttempts 0 - ограничивает только MaxElapsed.
	MaxAttempts uint64

	// Retryable nil - повторяются все ошибки.
	Retryable func(error) bool
	// OnRetry вызывается перед паузой, attempt начинается с 1.
	OnRetry func(attempt uint64, err error, wait time.Duration)
}

// Startup политика ожидания зависимостей при старте процесса.
func Startup() Policy {
	return Policy{
		Initial:    time.Second,
		Max:        30 * time.Second,
		MaxElapsed: 2 * time.Minute,
		Jitter:     0.5,
		Multiplier: 2,
	}
}
