package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/shared"
	"kahramana-backend/internal/shared/utils"
)

type fakeClearer struct {
	sessions []string
}

func (f *fakeClearer) ClearCart(_ context.Context, sessionID string) model.Outcome {
	f.sessions = append(f.sessions, sessionID)
	return model.OutcomeCleared
}

func TestClearCartHandler(t *testing.T) {
	t.Parallel()

	clearer := &fakeClearer{}
	h := NewClearCartHandler(clearer)

	task, err := utils.NewTask(shared.TypeClearCart, model.ClearCartPayload{SessionID: "s-1"})
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(context.Background(), task))
	assert.Equal(t, []string{"s-1"}, clearer.sessions)

	task, err = utils.NewTask(shared.TypeClearCart, model.ClearCartPayload{})
	require.NoError(t, err)
	assert.ErrorIs(t, h.ProcessTask(context.Background(), task), asynq.SkipRetry)

	err = h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeClearCart, []byte("nope")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestTrackCheckoutHandler(t *testing.T) {
	t.Parallel()

	task, err := utils.NewTask(shared.TypeTrackCheckout, model.TrackCheckoutPayload{
		OrderNumber: "ORD-123456-1234",
		Total:       "10.000",
		ItemCount:   2,
	})
	require.NoError(t, err)
	assert.NoError(t, NewTrackCheckoutHandler().ProcessTask(context.Background(), task))
}

type purgeDB struct {
	args []any
	err  error
}

func (d *purgeDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	d.args = args
	if d.err != nil {
		return pgconn.CommandTag{}, d.err
	}
	return pgconn.NewCommandTag("DELETE 3"), nil
}

func (d *purgeDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func TestPurgeExpiredCartsHandler(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	db := &purgeDB{}
	h := NewPurgeExpiredCartsHandler(db)
	h.now = func() time.Time { return now }

	task := asynq.NewTask(shared.TypePurgeExpiredCarts, nil)
	require.NoError(t, h.ProcessTask(context.Background(), task))
	require.Len(t, db.args, 1)
	assert.Equal(t, now, db.args[0])

	db.err = errors.New("db down")
	assert.Error(t, h.ProcessTask(context.Background(), task))
}
