package utils

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseStringToUUID returns uuid.Nil for empty or malformed input
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// FormatMoney renders an amount with a fixed number of decimals
func FormatMoney(d decimal.Decimal, decimals int) string {
	return d.StringFixed(int32(decimals))
}
