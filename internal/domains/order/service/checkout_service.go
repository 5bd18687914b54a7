package service

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	cart "kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/domains/order/model"
	"kahramana-backend/internal/shared"
	"kahramana-backend/internal/shared/i18n"
	"kahramana-backend/internal/shared/utils"
	"kahramana-backend/pkg/logger"
)

// CartReader is the part of the cart service checkout needs
type CartReader interface {
	GetCart(ctx context.Context, sessionID string) []cart.LineItem
}

// CurrencySource reports the catalog currency; implemented by the menu
// service
type CurrencySource interface {
	Currency() string
}

// TaskEnqueuer is satisfied by *asynq.Client
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// CheckoutConfig holds the order settings
type CheckoutConfig struct {
	// Currency is used when the catalog does not name one
	Currency string
	Decimals int
	// ClearAfter schedules a cart:clear task this long after checkout;
	// zero keeps the cart
	ClearAfter time.Duration
}

// CheckoutInput is one checkout request with its request-scoped metadata
type CheckoutInput struct {
	SessionID string
	Language  i18n.Language
	ClientIP  string
	Request   model.CheckoutRequest
}

type CheckoutService struct {
	carts    CartReader
	currency CurrencySource
	composer *Composer
	branches []model.Branch
	queue    TaskEnqueuer
	cfg      CheckoutConfig
	now      func() time.Time
}

func NewCheckoutService(carts CartReader, currency CurrencySource, composer *Composer, branches []model.Branch, queue TaskEnqueuer, cfg CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		currency: currency,
		composer: composer,
		branches: branches,
		queue:    queue,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Currency is the catalog currency, falling back to the configured one
func (s *CheckoutService) Currency() string {
	if s.currency != nil {
		if c := s.currency.Currency(); c != "" {
			return c
		}
	}
	return s.cfg.Currency
}

// Branches lists the configured branches
func (s *CheckoutService) Branches() []model.Branch {
	return s.branches
}

// Branch looks a branch up by id
func (s *CheckoutService) Branch(id string) (model.Branch, error) {
	for _, b := range s.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Branch{}, model.ErrBranchNotFound
}

// Checkout composes the order message for the session cart and returns it
// with the WhatsApp link. Follow-up tasks are best effort: enqueue
// failures are logged and do not fail the checkout.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*model.CheckoutResult, error) {
	var branch *model.Branch
	if in.Request.BranchID != "" {
		b, err := s.Branch(in.Request.BranchID)
		if err != nil {
			return nil, err
		}
		branch = &b
	}

	lines := s.carts.GetCart(ctx, in.SessionID)
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	currency := s.Currency()
	msg := s.composer.Compose(lines, model.ComposeContext{
		Language:         in.Language,
		Currency:         currency,
		Decimals:         model.Places(s.cfg.Decimals),
		Branch:           branch,
		CustomerLocation: in.Request.Location,
	})

	number := ""
	if branch != nil {
		number = branch.WhatsApp
	}

	totals := cart.ComputeTotals(lines)
	result := &model.CheckoutResult{
		OrderNumber: msg.OrderNumber,
		Message:     msg.Text,
		WhatsAppURL: WhatsAppLink(number, msg.Text),
		Total:       utils.FormatMoney(totals.Price, s.cfg.Decimals),
		Currency:    currency,
		ItemCount:   totals.Quantity,
		BranchID:    in.Request.BranchID,
		CreatedAt:   s.now().UTC(),
	}

	s.enqueueFollowUps(ctx, in, lines, result)
	return result, nil
}

func (s *CheckoutService) enqueueFollowUps(ctx context.Context, in CheckoutInput, lines []cart.LineItem, result *model.CheckoutResult) {
	if s.queue == nil {
		return
	}

	unpriced := 0
	for _, l := range lines {
		if !l.IncludedInTotal {
			unpriced++
		}
	}
	s.enqueue(ctx, shared.TypeTrackCheckout, cart.TrackCheckoutPayload{
		OrderNumber:   result.OrderNumber,
		SessionID:     in.SessionID,
		BranchID:      result.BranchID,
		Language:      in.Language.String(),
		Currency:      result.Currency,
		Total:         result.Total,
		ItemCount:     result.ItemCount,
		LineCount:     len(lines),
		UnpricedLines: unpriced,
		ClientIP:      in.ClientIP,
		CreatedAt:     result.CreatedAt,
	}, asynq.Queue(shared.QueueLow), asynq.MaxRetry(3))

	if s.cfg.ClearAfter > 0 {
		s.enqueue(ctx, shared.TypeClearCart, cart.ClearCartPayload{SessionID: in.SessionID},
			asynq.Queue(shared.QueueDefault),
			asynq.ProcessIn(s.cfg.ClearAfter),
			asynq.MaxRetry(5),
		)
	}
}

func (s *CheckoutService) enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) {
	task, err := utils.NewTask(taskType, payload, opts...)
	if err == nil {
		_, err = s.queue.EnqueueContext(ctx, task)
	}
	if err != nil {
		logger.Warn("Failed to enqueue checkout task", map[string]interface{}{
			"task":  taskType,
			"error": err.Error(),
		})
	}
}
