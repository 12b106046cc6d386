//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_put_test
package ticket_put

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateTicket(ctx context.Context, modify entities.TicketModify) (*entities.Ticket, error)
}
