package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahramana-backend/internal/shared/i18n"
)

func decodeEntry(t *testing.T, doc string) Entry {
	t.Helper()
	var e Entry
	require.NoError(t, json.Unmarshal([]byte(doc), &e))
	return e
}

func TestEntryPricingClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		kind PricingKind
	}{
		{"numeric price", `{"id":"a","price":2.5}`, PricingFixed},
		{"zero price", `{"id":"a","price":0}`, PricingFixed},
		{"null price with sizes", `{"id":"a","price":null,"sizes":[{"label":"Half"}]}`, PricingVariant},
		{"absent price with sizes", `{"id":"a","sizes":[{"label":"Half","price":1}]}`, PricingVariant},
		{"null price no sizes", `{"id":"a","price":null}`, PricingOnRequest},
		{"null price empty sizes", `{"id":"a","price":null,"sizes":[]}`, PricingOnRequest},
		{"string price", `{"id":"a","price":"2.5"}`, PricingOnRequest},
		{"string price with sizes", `{"id":"a","price":"x","sizes":[{"label":"Half"}]}`, PricingOnRequest},
		{"bool price", `{"id":"a","price":true}`, PricingOnRequest},
		{"negative price", `{"id":"a","price":-1}`, PricingFixed},
		{"exponent price", `{"id":"a","price":2.5e0}`, PricingFixed},
		{"sizes not an array", `{"id":"a","price":null,"sizes":"big"}`, PricingOnRequest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.kind, decodeEntry(t, tc.doc).Pricing().Kind)
		})
	}
}

func TestEntryDecodesLenientFields(t *testing.T) {
	t.Parallel()

	e := decodeEntry(t, `{
		"id": 42,
		"category": "grills",
		"name": {"ar": "قوزي", "en": "Qozi", "fr": 7},
		"desc": ["not", "text"],
		"price": null,
		"priceLabel": {"en": "Ask us"},
		"sizes": [{"name": "Half", "price": 4.5}, {"title": "Full", "price": "9"}, 3],
		"image": "qozi.jpg"
	}`)

	assert.Equal(t, "42", e.ID)
	assert.Equal(t, "grills", e.Category)
	assert.Equal(t, "Qozi", e.Name.Resolve(i18n.English))
	assert.Equal(t, "قوزي", e.Name.Resolve(i18n.Arabic))
	assert.True(t, e.Description.IsZero())
	assert.Equal(t, PriceNull, e.PriceShape)

	require.Len(t, e.Sizes, 3)
	assert.Equal(t, "Half", e.Sizes[0].Label)
	require.NotNil(t, e.Sizes[0].Price)
	assert.True(t, decimal.RequireFromString("4.5").Equal(*e.Sizes[0].Price))
	assert.Equal(t, "Full", e.Sizes[1].Label)
	assert.Nil(t, e.Sizes[1].Price, "string size prices are ignored")
	assert.Equal(t, Size{}, e.Sizes[2])
}

func TestEntryMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := decodeEntry(t, `{"id":"k1","name":"Kebab","price":3.25,"image":"k.png"}`)
	data, err := json.Marshal(in)
	require.NoError(t, err)

	out := decodeEntry(t, string(data))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, PricingFixed, out.Pricing().Kind)
	assert.True(t, in.Price.Equal(out.Price))
	assert.Equal(t, "Kebab", out.Name.Resolve(i18n.Arabic))
}

func TestLocalizedTextResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Tikka", Text("Tikka").Resolve(i18n.Arabic))

	onlyAr := Translations("تكا", "")
	assert.Equal(t, "تكا", onlyAr.Resolve(i18n.English))

	onlyFr := LocalizedText{ByLang: map[string]string{"fr": "Poulet"}}
	assert.Equal(t, "Poulet", onlyFr.Resolve(i18n.English))

	_, ok := onlyAr.Lookup(i18n.English)
	assert.False(t, ok)
}

func TestEntryToResponse(t *testing.T) {
	t.Parallel()

	onRequest := decodeEntry(t, `{"id":"x","name":"Mandi","price":null}`)
	assert.Equal(t, "السعر عند الطلب", onRequest.ToResponse(i18n.Arabic, 3).PriceLabel)

	custom := decodeEntry(t, `{"id":"x","name":"Mandi","price":null,"priceLabel":{"en":"Market price"}}`)
	assert.Equal(t, "Market price", custom.ToResponse(i18n.English, 3).PriceLabel)
	assert.Equal(t, "السعر عند الطلب", custom.ToResponse(i18n.Arabic, 3).PriceLabel)

	variant := decodeEntry(t, `{"id":"v","name":"Rice","sizes":[{"price":1},{"label":"Large","price":2}]}`)
	resp := variant.ToResponse(i18n.English, 3)
	require.Len(t, resp.Sizes, 2)
	assert.Equal(t, "1", resp.Sizes[0].Label)
	assert.Equal(t, "1.000", *resp.Sizes[0].Price)
	assert.Equal(t, "Large", resp.Sizes[1].Label)
}
