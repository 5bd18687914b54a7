package main

import (
	"github.com/hibiken/asynq"

	cartJob "kahramana-backend/internal/domains/cart/job"
	"kahramana-backend/internal/shared"
	"kahramana-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	clearCart     *cartJob.ClearCartHandler
	trackCheckout *cartJob.TrackCheckoutHandler
	purgeExpired  *cartJob.PurgeExpiredCartsHandler // nil unless postgres storage
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	h := &HandlerRegistry{
		clearCart:     cartJob.NewClearCartHandler(c.CartService),
		trackCheckout: cartJob.NewTrackCheckoutHandler(),
	}
	if c.DB != nil {
		h.purgeExpired = cartJob.NewPurgeExpiredCartsHandler(c.DB.Pool)
	}
	return h
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeClearCart, h.clearCart.ProcessTask)
	mux.HandleFunc(shared.TypeTrackCheckout, h.trackCheckout.ProcessTask)

	if h.purgeExpired != nil {
		mux.HandleFunc(shared.TypePurgeExpiredCarts, h.purgeExpired.ProcessTask)
	}
}
