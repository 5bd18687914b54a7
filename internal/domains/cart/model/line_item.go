package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is one row of the cart. Name, price and size fields are fixed at
// add time; only Quantity and Note change afterwards.
type LineItem struct {
	ID              string
	Name            string
	Price           decimal.Decimal
	PriceLabel      string
	IncludedInTotal bool
	Quantity        int
	Image           string
	SizeIndex       *int
	SizeLabel       string
	Note            string
}

// LineID builds the composite identity used for merging: the entry id, or
// "{entryID}-size-{index}" when a size was chosen
func LineID(entryID string, sizeIndex *int) string {
	if sizeIndex == nil {
		return entryID
	}
	return fmt.Sprintf(sizeIDFormat, entryID, *sizeIndex)
}

// Subtotal is price * quantity for included lines and zero otherwise
func (l LineItem) Subtotal() decimal.Decimal {
	if !l.IncludedInTotal {
		return decimal.Zero
	}
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Valid reports whether the line can be shown and counted
func (l LineItem) Valid() bool {
	return l.ID != "" && l.Quantity > 0
}

func (l LineItem) clone() LineItem {
	if l.SizeIndex != nil {
		idx := *l.SizeIndex
		l.SizeIndex = &idx
	}
	return l
}

// CloneLines returns a deep copy of lines
func CloneLines(lines []LineItem) []LineItem {
	out := make([]LineItem, len(lines))
	for i, l := range lines {
		out[i] = l.clone()
	}
	return out
}
