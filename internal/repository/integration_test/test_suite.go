// Package integration_test общая обвязка интеграционных тестов
// репозиториев: пул к тестовой базе со свежей схемой.
package integration_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/dotenv"
	"tracker/internal/pkg/migrations"
	"tracker/internal/pkg/postgres"
	"tracker/pkg/logger"
	"tracker/pkg/querier"
)

// tables все таблицы схемы, очищаются после каждого теста.
const tables = `lti_sto, obd_waybill, shipments_updates, tickets, kpis, statuses, categories,
	departments, service_providers, user_profiles, wizard_drafts`

var (
	querierInstance *querier.Querier
	querierErr      error
	querierOnce     sync.Once
)

// GetQuerier подключается по POSTGRES_* (из окружения или .env.test)
// и один раз накатывает миграции.
func GetQuerier(t *testing.T) *querier.Querier {
	t.Helper()

	querierOnce.Do(func() {
		querierInstance, querierErr = connect()
	})
	require.NoError(t, querierErr)
	return querierInstance
}

func connect() (*querier.Querier, error) {
	if err := dotenv.LoadEnv(".env.test"); err != nil {
		return nil, err
	}
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewConnPool(ctx, logger.Nop{}, &cfg.Database)
	if err != nil {
		return nil, err
	}
	if _, err := migrations.Run(ctx, pool, migrations.Up); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate test database %s: %w", os.Getenv("POSTGRES_DB"), err)
	}
	return querier.New(pool, pgxv5.DefaultCtxGetter), nil
}

// SetupDB заливает сид и регистрирует очистку таблиц.
func SetupDB(t *testing.T, seedSQL string) *querier.Querier {
	t.Helper()

	q := GetQuerier(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if seedSQL != "" {
		_, err := q.Exec(ctx, seedSQL)
		require.NoError(t, err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := q.Exec(ctx, "TRUNCATE TABLE "+tables+" RESTART IDENTITY CASCADE")
		require.NoError(t, err)
	})
	return q
}
