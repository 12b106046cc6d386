package drafts_cleanup

import (
	"context"
	"time"

	"tracker/pkg/logger"
)

type Service interface {
	CleanupExpiredDrafts(ctx context.Context) (int64, error)
}

// DraftsCleanup удаляет брошенные черновики мастеров с истёкшим ExpiresAt.
type DraftsCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDraftsCleanup(log logger.Logger, service Service, interval time.Duration) *DraftsCleanup {
	return &DraftsCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DraftsCleanup) TTL() time.Duration {
	return d.interval
}

func (d *DraftsCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	deleted, err := d.service.CleanupExpiredDrafts(ctxWithTimeout)

	if deleted > 0 {
		d.log.With(
			logger.NewField("expired_drafts", deleted),
		).Info("drafts cleanup")
	}

	return err
}

func (d *DraftsCleanup) Info() string {
	return "drafts cleanup"
}
