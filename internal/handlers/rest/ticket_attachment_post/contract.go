//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_attachment_post_test
package ticket_attachment_post

import (
	"context"
	"io"

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
	UploadAttachment(ctx context.Context, actor, filename, contentType string, r io.Reader) (*entities.Attachment, error)
}
