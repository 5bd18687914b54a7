package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/domains/order/model"
	"kahramana-backend/internal/shared"
	"kahramana-backend/internal/shared/i18n"
)

type fakeCarts struct {
	lines []cart.LineItem
}

func (f fakeCarts) GetCart(context.Context, string) []cart.LineItem { return f.lines }

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{ID: "t", Type: task.Type()}, nil
}

func newCheckout(lines []cart.LineItem, q TaskEnqueuer, clearAfter time.Duration) *CheckoutService {
	composer := NewComposer(func() string { return "ORD-000001-1234" })
	return NewCheckoutService(fakeCarts{lines: lines}, nil, composer, []model.Branch{*riffa}, q,
		CheckoutConfig{Currency: "BHD", Decimals: 3, ClearAfter: clearAfter})
}

func TestCheckout(t *testing.T) {
	t.Parallel()

	q := &fakeQueue{}
	svc := newCheckout(sampleLines(), q, time.Hour)

	res, err := svc.Checkout(context.Background(), CheckoutInput{
		SessionID: "s-1",
		Language:  i18n.English,
		ClientIP:  "203.0.113.9",
		Request:   model.CheckoutRequest{BranchID: "riffa", Location: "Riffa"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001-1234", res.OrderNumber)
	assert.Equal(t, "10.000", res.Total)
	assert.Equal(t, 4, res.ItemCount)
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/97317131413?text=New%20Order"))
	assert.Contains(t, res.Message, "Branch: Riffa Branch")

	require.Len(t, q.tasks, 2)
	assert.Equal(t, shared.TypeTrackCheckout, q.tasks[0].Type())
	assert.Contains(t, string(q.tasks[0].Payload()), `"unpriced_lines":1`)
	assert.Equal(t, shared.TypeClearCart, q.tasks[1].Type())
	assert.JSONEq(t, `{"session_id":"s-1"}`, string(q.tasks[1].Payload()))
}

type fixedCurrency string

func (c fixedCurrency) Currency() string { return string(c) }

func TestCheckoutUsesCatalogCurrency(t *testing.T) {
	t.Parallel()

	composer := NewComposer(func() string { return "N" })
	cfg := CheckoutConfig{Currency: "BHD", Decimals: 3}
	in := CheckoutInput{SessionID: "s", Language: i18n.English}

	svc := NewCheckoutService(fakeCarts{lines: sampleLines()}, fixedCurrency("BD"), composer, nil, nil, cfg)
	res, err := svc.Checkout(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "BD", res.Currency)
	assert.Contains(t, res.Message, "Tikka x2 — 2.500 BD each (5.000 BD) (spicy)")
	assert.Contains(t, res.Message, "Total: 10.000 BD")

	fallback := NewCheckoutService(fakeCarts{lines: sampleLines()}, fixedCurrency(""), composer, nil, nil, cfg)
	res, err = fallback.Checkout(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "BHD", res.Currency)
	assert.Contains(t, res.Message, "Total: 10.000 BHD")
}

func TestCheckoutWithoutBranchUsesGenericLink(t *testing.T) {
	t.Parallel()

	q := &fakeQueue{}
	svc := newCheckout(sampleLines(), q, 0)

	res, err := svc.Checkout(context.Background(), CheckoutInput{SessionID: "s", Language: i18n.Arabic})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/?text="))
	assert.Len(t, q.tasks, 1, "no clear task when ClearAfter is zero")
}

func TestCheckoutErrors(t *testing.T) {
	t.Parallel()

	_, err := newCheckout(nil, nil, 0).Checkout(context.Background(), CheckoutInput{SessionID: "s"})
	assert.ErrorIs(t, err, model.ErrEmptyCart)

	_, err = newCheckout(sampleLines(), nil, 0).Checkout(context.Background(), CheckoutInput{
		SessionID: "s",
		Request:   model.CheckoutRequest{BranchID: "manama"},
	})
	assert.ErrorIs(t, err, model.ErrBranchNotFound)
}

func TestCheckoutSurvivesQueueFailure(t *testing.T) {
	t.Parallel()

	svc := newCheckout(sampleLines(), &fakeQueue{err: errors.New("redis down")}, time.Minute)
	res, err := svc.Checkout(context.Background(), CheckoutInput{SessionID: "s", Language: i18n.English})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Message)
}
