package job

import (
	"context"

	"github.com/hibiken/asynq"

	"kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/shared/utils"
	"kahramana-backend/pkg/logger"
)

// TrackCheckoutHandler records WhatsApp handoffs in the structured log.
// The handoff is one-way, so this is the only trace an order leaves.
type TrackCheckoutHandler struct{}

func NewTrackCheckoutHandler() *TrackCheckoutHandler {
	return &TrackCheckoutHandler{}
}

func (h *TrackCheckoutHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.TrackCheckoutPayload
	if err := utils.DecodeTask(t, &payload); err != nil {
		return err
	}

	logger.Info("Tracked checkout", map[string]interface{}{
		"order_number":   payload.OrderNumber,
		"session_id":     payload.SessionID,
		"branch_id":      payload.BranchID,
		"language":       payload.Language,
		"currency":       payload.Currency,
		"total":          payload.Total,
		"item_count":     payload.ItemCount,
		"line_count":     payload.LineCount,
		"unpriced_lines": payload.UnpricedLines,
		"client_ip":      payload.ClientIP,
		"created_at":     payload.CreatedAt,
	})
	return nil
}
