//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_session_post_test
package admin_session_post

import (
	"tracker/internal/service/access"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OpenSession(actor, key string) (access.Session, error)
}
