package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"tracker/pkg/retrier"
	"tracker/pkg/retrier/backoff_adapter"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

type outerTx struct{}

type Manager struct {
	internal *manager.Manager
	retry    retrier.Retrier
}

// New менеджер транзакций. Serializable транзакции, упавшие на конфликте
// сериализации, повторяются целиком до трёх раз.
func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retry: backoff_adapter.New(retrier.Policy{
			Initial:     10 * time.Millisecond,
			Max:         100 * time.Millisecond,
			MaxElapsed:  2 * time.Second,
			Jitter:      0.5,
			Multiplier:  2,
			MaxAttempts: 3,
			Retryable:   IsSerializationFailure,
		}),
	}
}

// Do выполняет fn в serializable транзакции: выдача номеров документов
// и отправка мастера должны быть атомарными. Вложенный вызов
// присоединяется к внешней транзакции и сам не повторяется.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	serializable := pgx.TxOptions{IsoLevel: pgx.Serializable}
	if ctx.Value(outerTx{}) != nil {
		return m.exec(ctx, serializable, fn)
	}

	return m.retry.Do(ctx, func(ctx context.Context) error {
		return m.exec(context.WithValue(ctx, outerTx{}, true), serializable, fn)
	})
}

// ReadOnly даёт согласованный снимок для отчётов, которые читают историю
// несколькими запросами.
func (m *Manager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func (m *Manager) exec(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(opts),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
