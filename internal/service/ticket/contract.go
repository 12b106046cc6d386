//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_test
package ticket

import (
	"context"
	"io"

	"tracker/internal/entities"
)

type Repository interface {
	NextTicketNumber(ctx context.Context) (int64, error)
	NextTicketVersion(ctx context.Context, number string) (int, error)
	CreateTicket(ctx context.Context, ticket entities.Ticket) (*entities.Ticket, error)
	GetCurrent(ctx context.Context, number string) (*entities.Ticket, error)
	Versions(ctx context.Context, number string) ([]entities.Ticket, error)
	// ListTicketVersions все версии тикетов, у которых хотя бы одна версия
	// попадает в scope фильтра.
	ListTicketVersions(ctx context.Context, filter entities.TicketFilter) ([]entities.Ticket, error)
	AllTicketVersions(ctx context.Context) ([]entities.Ticket, error)
	Ping(ctx context.Context) error
}

// References имена справочных записей по id из формы и список исполнителей.
type References interface {
	ReferenceName(ctx context.Context, kind entities.ReferenceKind, id int64) (string, error)
	AssignableUsers(ctx context.Context) ([]entities.UserProfile, error)
}

type AttachmentStore interface {
	Save(owner, filename string, r io.Reader) (string, int64, error)
	Open(name string) (io.ReadCloser, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
