package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainRepos "venture-link.backend/internal/domain/repositories"
	"venture-link.backend/pkg/logger"
	"venture-link.backend/pkg/metrics"
)

// NotificationDispatchJob drains the notification outbox. Notifications are
// written in the same transaction as the state change they describe and
// delivered here afterwards, so a crash between the two never loses one.
type NotificationDispatchJob struct {
	repo      domainRepos.NotificationRepository
	interval  time.Duration
	batchSize int
	stop      chan struct{}
}

func NewNotificationDispatchJob(repo domainRepos.NotificationRepository, interval time.Duration) *NotificationDispatchJob {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &NotificationDispatchJob{
		repo:      repo,
		interval:  interval,
		batchSize: 100,
		stop:      make(chan struct{}),
	}
}

func (j *NotificationDispatchJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting notification dispatch job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "notification dispatch job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "notification dispatch job stopped")
			return
		case <-ticker.C:
			j.DrainOnce(ctx)
		}
	}
}

func (j *NotificationDispatchJob) Stop() {
	close(j.stop)
}

// DrainOnce delivers one batch of pending notifications
func (j *NotificationDispatchJob) DrainOnce(ctx context.Context) {
	pending, err := j.repo.ListPendingDispatch(ctx, j.batchSize)
	if err != nil {
		logger.Error(ctx, "failed to fetch pending notifications", zap.Error(err))
		metrics.CountDispatch("error")
		return
	}

	if len(pending) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(pending))
	for _, n := range pending {
		// Delivery is in-app: the row itself is what the client polls for.
		// Push channels (email, webhooks) would hook in here.
		ids = append(ids, n.ID)
	}

	if err := j.repo.MarkDispatched(ctx, ids); err != nil {
		logger.Error(ctx, "failed to mark notifications dispatched", zap.Error(err))
		metrics.CountDispatch("error")
		return
	}

	for range ids {
		metrics.CountDispatch("sent")
	}
	logger.Info(ctx, "dispatched notifications", zap.Int("count", len(ids)))
}
