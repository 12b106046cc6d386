package rate_limiter

import (
	"time"

	"tracker/pkg/logger"
)

// Limiter лимит по ключу: пользователь, а без него адрес клиента.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
