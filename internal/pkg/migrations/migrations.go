// Package migrations схема базы, встроенная в бинарь и применяемая через goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func newProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, mustSub())
	if err != nil {
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	return provider, nil
}

// Run применяет (Up) все миграции или откатывает (Down) последнюю.
func Run(ctx context.Context, pool *pgxpool.Pool, direction Direction) ([]*goose.MigrationResult, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := newProvider(db)
	if err != nil {
		return nil, err
	}

	switch direction {
	case Up:
		return provider.Up(ctx)
	case Down:
		result, err := provider.Down(ctx)
		if err != nil {
			return nil, err
		}
		return []*goose.MigrationResult{result}, nil
	default:
		return nil, fmt.Errorf("unknown migration direction %q", direction)
	}
}

func Status(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationStatus, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := newProvider(db)
	if err != nil {
		return nil, err
	}
	return provider.Status(ctx)
}
