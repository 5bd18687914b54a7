package model

import "github.com/shopspring/decimal"

// Totals is derived from the lines on every read
type Totals struct {
	Quantity int
	Price    decimal.Decimal
}

// ComputeTotals sums quantities over all lines and price*quantity over the
// lines included in the total. An empty cart yields zero for both.
func ComputeTotals(lines []LineItem) Totals {
	t := Totals{Price: decimal.Zero}
	for _, l := range lines {
		t.Quantity += l.Quantity
		t.Price = t.Price.Add(l.Subtotal())
	}
	return t
}
