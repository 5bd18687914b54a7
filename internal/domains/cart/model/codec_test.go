package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLinesUsesBrowserLayout(t *testing.T) {
	t.Parallel()

	data, err := EncodeLines([]LineItem{{
		ID:              "qozi-size-1",
		Name:            "Qozi",
		Price:           decimal.RequireFromString("5.000"),
		IncludedInTotal: true,
		Quantity:        2,
		SizeIndex:       idx(1),
		SizeLabel:       "Large",
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": "qozi-size-1",
		"name": "Qozi",
		"price": 5,
		"includedInTotal": true,
		"quantity": 2,
		"sizeIndex": 1,
		"sizeLabel": "Large",
		"note": ""
	}]`, string(data))

	empty, err := EncodeLines(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDecodeLinesDefaults(t *testing.T) {
	t.Parallel()

	lines, err := DecodeLines([]byte(`[
		{"id":"a","quantity":2,"price":1.5},
		{"id":"b","quantity":1,"price":7,"includedInTotal":false,"name":5},
		{"id":"c","quantity":1,"price":null},
		{"id":"d","quantity":1,"price":2,"sizeIndex":"x"}
	]`), MaxQuantity)
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.True(t, lines[0].IncludedInTotal)
	assert.False(t, lines[1].IncludedInTotal)
	assert.True(t, lines[1].Price.IsZero(), "excluded lines carry price 0")
	assert.Empty(t, lines[1].Name)
	assert.False(t, lines[2].IncludedInTotal)
	assert.Nil(t, lines[3].SizeIndex)
}

func TestDecodeLinesRejects(t *testing.T) {
	t.Parallel()

	bad := []string{
		``,
		`null`,
		`{}`,
		`"[]"`,
		`[1]`,
		`[{"id":"","quantity":1}]`,
		`[{"id":"a"}]`,
		`[{"id":"a","quantity":1.5}]`,
		`[{"id":"a","quantity":-1}]`,
		`[{"id":"a","quantity":1,"price":"2"}]`,
		`[{"id":"a","quantity":1,"includedInTotal":"yes"}]`,
	}
	for _, payload := range bad {
		_, err := DecodeLines([]byte(payload), MaxQuantity)
		assert.ErrorIs(t, err, ErrCorruptCart, payload)
	}
}

func TestDecodeLinesClampsQuantity(t *testing.T) {
	t.Parallel()

	lines, err := DecodeLines([]byte(`[{"id":"a","quantity":1000,"price":1}]`), MaxQuantity)
	require.NoError(t, err)
	assert.Equal(t, MaxQuantity, lines[0].Quantity)
}

func TestDecodeLinesKeepsNegativePrice(t *testing.T) {
	t.Parallel()

	lines, err := DecodeLines([]byte(`[{"id":"promo","quantity":2,"price":-1.25}]`), MaxQuantity)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].IncludedInTotal)
	assert.Equal(t, "-2.5", lines[0].Subtotal().String())
}
