package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"kahramana-backend/internal/domains/cart/repository"
	"kahramana-backend/pkg/logger"
)

// PurgeExpiredCartsHandler deletes expired postgres snapshots. Redis and
// in-memory storage expire keys on their own.
type PurgeExpiredCartsHandler struct {
	db  repository.DBTX
	now func() time.Time
}

func NewPurgeExpiredCartsHandler(db repository.DBTX) *PurgeExpiredCartsHandler {
	return &PurgeExpiredCartsHandler{db: db, now: time.Now}
}

func (h *PurgeExpiredCartsHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	deleted, err := repository.PurgeExpired(ctx, h.db, h.now())
	if err != nil {
		logger.Error("Failed to purge expired carts", err)
		return err
	}

	logger.Info("Purged expired carts", map[string]interface{}{
		"deleted_count": deleted,
	})
	return nil
}
