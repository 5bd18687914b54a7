package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// lineRecord is the persisted shape of a line. Keys match the browser
// storage layout so client snapshots can be restored as-is.
type lineRecord struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Price           json.Number `json:"price"`
	PriceLabel      string      `json:"priceLabel,omitempty"`
	IncludedInTotal bool        `json:"includedInTotal"`
	Quantity        int         `json:"quantity"`
	Image           string      `json:"image,omitempty"`
	SizeIndex       *int        `json:"sizeIndex,omitempty"`
	SizeLabel       string      `json:"sizeLabel,omitempty"`
	Note            string      `json:"note"`
}

// EncodeLines serializes the lines as a JSON array
func EncodeLines(lines []LineItem) ([]byte, error) {
	records := make([]lineRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, lineRecord{
			ID:              l.ID,
			Name:            l.Name,
			Price:           json.Number(l.Price.String()),
			PriceLabel:      l.PriceLabel,
			IncludedInTotal: l.IncludedInTotal,
			Quantity:        l.Quantity,
			Image:           l.Image,
			SizeIndex:       l.SizeIndex,
			SizeLabel:       l.SizeLabel,
			Note:            l.Note,
		})
	}
	return json.Marshal(records)
}

// DecodeLines parses a persisted cart. Any violation rejects the whole
// payload with ErrCorruptCart:
//   - not a JSON array, or an element that is not an object
//   - id missing, empty or not a string; duplicate ids
//   - quantity missing, not an integer or < 1
//   - price present but not a number
//
// Quantities above maxQuantity are clamped. A missing includedInTotal
// counts as true; an excluded line always carries price 0.
func DecodeLines(data []byte, maxQuantity int) ([]LineItem, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, ErrCorruptCart
	}

	var items []map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}

	lines := make([]LineItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrCorruptCart, i)
		}
		line, err := decodeLine(item, maxQuantity)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrCorruptCart, i, err)
		}
		if seen[line.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrCorruptCart, line.ID)
		}
		seen[line.ID] = true
		lines = append(lines, line)
	}
	return lines, nil
}

func decodeLine(item map[string]json.RawMessage, maxQuantity int) (LineItem, error) {
	var line LineItem

	if err := json.Unmarshal(item["id"], &line.ID); err != nil || line.ID == "" {
		return line, fmt.Errorf("id must be a non-empty string")
	}

	var qty json.Number
	if err := unmarshalNumber(item["quantity"], &qty); err != nil {
		return line, fmt.Errorf("quantity must be a number")
	}
	n, err := qty.Int64()
	if err != nil || n < 1 {
		return line, fmt.Errorf("quantity must be a positive integer")
	}
	if maxQuantity > 0 && n > int64(maxQuantity) {
		n = int64(maxQuantity)
	}
	line.Quantity = int(n)

	line.IncludedInTotal = true
	if raw, ok := item["includedInTotal"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &line.IncludedInTotal); err != nil {
			return line, fmt.Errorf("includedInTotal must be a boolean")
		}
	}

	line.Price = decimal.Zero
	if raw, ok := item["price"]; ok && !isNull(raw) {
		var p json.Number
		if err := unmarshalNumber(raw, &p); err != nil {
			return line, fmt.Errorf("price must be a number")
		}
		d, err := decimal.NewFromString(p.String())
		if err != nil {
			return line, fmt.Errorf("price must be a number")
		}
		line.Price = d
	} else {
		line.IncludedInTotal = false
	}
	if !line.IncludedInTotal {
		line.Price = decimal.Zero
	}

	if raw, ok := item["sizeIndex"]; ok && !isNull(raw) {
		var idx json.Number
		if unmarshalNumber(raw, &idx) == nil {
			if v, err := idx.Int64(); err == nil && v >= 0 {
				i := int(v)
				line.SizeIndex = &i
			}
		}
	}

	// Display fields are optional; wrong types decode to empty strings
	line.Name = optionalString(item["name"])
	line.PriceLabel = optionalString(item["priceLabel"])
	line.Image = optionalString(item["image"])
	line.SizeLabel = optionalString(item["sizeLabel"])
	line.Note = optionalString(item["note"])

	return line, nil
}

func unmarshalNumber(raw json.RawMessage, n *json.Number) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return fmt.Errorf("not a number")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	num, ok := v.(json.Number)
	if !ok {
		return fmt.Errorf("not a number")
	}
	*n = num
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func optionalString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
