package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/shared/utils"
	"kahramana-backend/pkg/logger"
)

// CartClearer is the part of the cart service the job needs
type CartClearer interface {
	ClearCart(ctx context.Context, sessionID string) model.Outcome
}

type ClearCartHandler struct {
	carts CartClearer
}

func NewClearCartHandler(carts CartClearer) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

func (h *ClearCartHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.ClearCartPayload
	if err := utils.DecodeTask(t, &payload); err != nil {
		return err
	}
	if payload.SessionID == "" {
		return fmt.Errorf("clear cart: empty session id: %w", asynq.SkipRetry)
	}

	outcome := h.carts.ClearCart(ctx, payload.SessionID)

	logger.Info("Cleared cart after checkout", map[string]interface{}{
		"session_id": payload.SessionID,
		"outcome":    outcome.String(),
	})
	return nil
}
