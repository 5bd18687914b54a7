package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahramana-backend/internal/domains/cart/model"
	menu "kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/shared/i18n"
)

type catalogStub map[string]menu.Entry

func (c catalogStub) Get(id string) (menu.Entry, error) {
	e, ok := c[id]
	if !ok {
		return menu.Entry{}, menu.ErrEntryNotFound
	}
	return e, nil
}

func TestCartServiceUpdateNoteKeepsText(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCartService(newStorage(), catalogStub{"tikka": entry(t, tikkaDoc)}, Config{})
	_, err := svc.AddItem(ctx, "s-1", model.AddItemRequest{EntryID: "tikka"}, i18n.English)
	require.NoError(t, err)

	outcome, lines := svc.UpdateNote(ctx, "s-1", "tikka", "  extra sauce  ")
	assert.Equal(t, model.OutcomeUpdated, outcome)
	require.Len(t, lines, 1)
	assert.Equal(t, "  extra sauce  ", lines[0].Note)

	reloaded := svc.GetCart(ctx, "s-1")
	require.Len(t, reloaded, 1)
	assert.Equal(t, "  extra sauce  ", reloaded[0].Note)

	outcome, _ = svc.UpdateNote(ctx, "s-1", "missing", "x")
	assert.Equal(t, model.OutcomeNotFound, outcome)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCartService(newStorage(), catalogStub{"tikka": entry(t, tikkaDoc)}, Config{})
	_, err := svc.AddItem(ctx, "a", model.AddItemRequest{EntryID: "tikka"}, i18n.English)
	require.NoError(t, err)

	assert.Len(t, svc.GetCart(ctx, "a"), 1)
	assert.Empty(t, svc.GetCart(ctx, "b"))

	_, err = svc.AddItem(ctx, "a", model.AddItemRequest{EntryID: "nope"}, i18n.English)
	assert.ErrorIs(t, err, menu.ErrEntryNotFound)
}
