package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	menu "kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/shared/i18n"
)

func mustEntry(t *testing.T, doc string) menu.Entry {
	t.Helper()
	var e menu.Entry
	require.NoError(t, json.Unmarshal([]byte(doc), &e))
	return e
}

func idx(i int) *int { return &i }

func TestResolvePricing(t *testing.T) {
	t.Parallel()

	t.Run("fixed ignores selection", func(t *testing.T) {
		r, err := ResolvePricing(mustEntry(t, `{"id":"a","price":1.25,"sizes":[{"label":"x","price":9}]}`), idx(0), i18n.English)
		require.NoError(t, err)
		assert.True(t, r.IncludedInTotal)
		assert.True(t, r.Price.Equal(decimal.RequireFromString("1.25")))
		assert.Nil(t, r.SizeIndex)
		assert.Empty(t, r.SizeLabel)
	})

	t.Run("variant with priced size", func(t *testing.T) {
		r, err := ResolvePricing(mustEntry(t, `{"id":"a","price":null,"sizes":[{"label":"S","price":3.5},{"label":"L","price":5}]}`), idx(1), i18n.English)
		require.NoError(t, err)
		assert.True(t, r.IncludedInTotal)
		assert.Equal(t, "L", r.SizeLabel)
		assert.Equal(t, 1, *r.SizeIndex)
		assert.True(t, r.Price.Equal(decimal.NewFromInt(5)))
	})

	t.Run("variant with unpriced size", func(t *testing.T) {
		r, err := ResolvePricing(mustEntry(t, `{"id":"a","price":null,"sizes":[{"label":"Tray"}]}`), idx(0), i18n.English)
		require.NoError(t, err)
		assert.False(t, r.IncludedInTotal)
		assert.True(t, r.Price.IsZero())
		assert.Equal(t, "Tray", r.SizeLabel)
		assert.Equal(t, "Price on request", r.PriceLabel)
	})

	t.Run("unlabeled size uses its number", func(t *testing.T) {
		r, err := ResolvePricing(mustEntry(t, `{"id":"a","price":null,"sizes":[{"price":1},{"price":2}]}`), idx(1), i18n.English)
		require.NoError(t, err)
		assert.Equal(t, "2", r.SizeLabel)
	})

	t.Run("variant without selection", func(t *testing.T) {
		e := mustEntry(t, `{"id":"a","price":null,"sizes":[{"label":"S","price":1}]}`)
		for _, sel := range []*int{nil, idx(-1), idx(1)} {
			_, err := ResolvePricing(e, sel, i18n.English)
			assert.ErrorIs(t, err, ErrSizeSelectionRequired)
		}
	})

	t.Run("on request uses entry label first", func(t *testing.T) {
		e := mustEntry(t, `{"id":"a","price":null,"priceLabel":{"en":"Seasonal"}}`)
		r, err := ResolvePricing(e, nil, i18n.English)
		require.NoError(t, err)
		assert.Equal(t, "Seasonal", r.PriceLabel)
		assert.False(t, r.IncludedInTotal)

		r, err = ResolvePricing(e, nil, i18n.Arabic)
		require.NoError(t, err)
		assert.Equal(t, "السعر عند الطلب", r.PriceLabel)
	})

	t.Run("invalid price shape is on request", func(t *testing.T) {
		r, err := ResolvePricing(mustEntry(t, `{"id":"a","price":"3 BD"}`), nil, i18n.English)
		require.NoError(t, err)
		assert.False(t, r.IncludedInTotal)
		assert.True(t, r.Price.IsZero())
	})
}

func TestSizeOptions(t *testing.T) {
	t.Parallel()

	opts := SizeOptions(mustEntry(t, `{"id":"a","price":null,"sizes":[{"label":"S","price":3.5},{"label":"L"}]}`), 3)
	require.Len(t, opts, 2)
	assert.Equal(t, "3.500", *opts[0].Price)
	assert.Nil(t, opts[1].Price)

	assert.Nil(t, SizeOptions(mustEntry(t, `{"id":"a","price":1}`), 3))
}

func TestLineID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "qozi", LineID("qozi", nil))
	assert.Equal(t, "qozi-size-1", LineID("qozi", idx(1)))
}
