package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// PriceShape records what the catalog document had in the price field
type PriceShape int

const (
	PriceAbsent PriceShape = iota
	PriceNull
	PriceNumber
	PriceInvalid // string, bool, object...
)

// Size is one size variant of an entry. Price is nil when the size has no
// numeric price.
type Size struct {
	Label string           `json:"label"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// Entry is one dish of the catalog. It is read-only input for the cart.
type Entry struct {
	ID          string
	Category    string
	Name        LocalizedText
	Description LocalizedText
	PriceShape  PriceShape
	Price       decimal.Decimal // meaningful only when PriceShape == PriceNumber
	PriceLabel  LocalizedText
	Sizes       []Size
	Image       string
}

type entryJSON struct {
	ID         json.RawMessage `json:"id"`
	Category   json.RawMessage `json:"category,omitempty"`
	Name       LocalizedText   `json:"name"`
	Desc       LocalizedText   `json:"desc"`
	Price      json.RawMessage `json:"price"`
	PriceLabel LocalizedText   `json:"priceLabel"`
	Sizes      json.RawMessage `json:"sizes,omitempty"`
	Image      json.RawMessage `json:"image,omitempty"`
}

// UnmarshalJSON is lenient: only a non-object payload is an error. Odd field
// shapes degrade to zero values so a single bad dish cannot break the menu.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Entry{
		ID:          scalarString(raw.ID),
		Category:    scalarString(raw.Category),
		Name:        raw.Name,
		Description: raw.Desc,
		PriceLabel:  raw.PriceLabel,
		Image:       scalarString(raw.Image),
	}
	e.Price, e.PriceShape = parsePrice(raw.Price)
	e.Sizes = parseSizes(raw.Sizes)
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"id":   e.ID,
		"name": e.Name,
	}
	if e.Category != "" {
		out["category"] = e.Category
	}
	if !e.Description.IsZero() {
		out["desc"] = e.Description
	}
	if e.PriceShape == PriceNumber {
		out["price"] = json.Number(e.Price.String())
	} else {
		out["price"] = nil
	}
	if !e.PriceLabel.IsZero() {
		out["priceLabel"] = e.PriceLabel
	}
	if len(e.Sizes) > 0 {
		out["sizes"] = e.Sizes
	}
	if e.Image != "" {
		out["image"] = e.Image
	}
	return json.Marshal(out)
}

// Pricing classifies the entry:
//  1. numeric price -> Fixed
//  2. null/absent price with at least one size -> Variant
//  3. anything else -> OnRequest
func (e Entry) Pricing() Pricing {
	switch e.PriceShape {
	case PriceNumber:
		return Fixed(e.Price)
	case PriceNull, PriceAbsent:
		if len(e.Sizes) > 0 {
			return Variant(e.Sizes)
		}
	}
	return OnRequest()
}

// Validate checks the fields the catalog loader relies on
func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID,
			validation.Required.Error("id is required"),
			validation.Length(1, 128),
		),
		validation.Field(&e.Image, validation.Length(0, 512)),
	)
}

func parsePrice(raw json.RawMessage) (decimal.Decimal, PriceShape) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero, PriceAbsent
	}
	if bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, PriceNull
	}
	c := raw[0]
	if c != '-' && (c < '0' || c > '9') {
		return decimal.Zero, PriceInvalid
	}
	// any finite number is a price, negative ones included
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, PriceInvalid
	}
	return d, PriceNumber
}

func parseSizes(raw json.RawMessage) []Size {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	sizes := make([]Size, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			// keep the index stable: a broken size is still a size slot
			sizes = append(sizes, Size{})
			continue
		}
		s := Size{}
		for _, key := range []string{"label", "name", "title"} {
			if v := scalarString(fields[key]); v != "" {
				s.Label = v
				break
			}
		}
		if p, shape := parsePrice(fields["price"]); shape == PriceNumber {
			price := p
			s.Price = &price
		}
		sizes = append(sizes, s)
	}
	return sizes
}

// scalarString accepts JSON strings and numbers
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch {
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		if _, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return string(raw)
		}
	}
	return ""
}
