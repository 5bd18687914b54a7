package model

import (
	"time"

	"kahramana-backend/internal/shared/i18n"
)

// ComposeContext is everything the order message needs besides the lines
type ComposeContext struct {
	Language         i18n.Language
	Currency         string
	Decimals         *int // nil renders with DefaultDecimals
	Branch           *Branch
	CustomerLocation string
}

// Places returns n as a ComposeContext.Decimals value
func Places(n int) *int { return &n }

// Message is a composed order with the reference number it carries
type Message struct {
	Text        string
	OrderNumber string
}

// Defaults applied by the composer when the context leaves them empty
const (
	DefaultCurrency = "BHD"
	DefaultDecimals = 3
	DefaultPrefix   = "ORD"
)

// CheckoutResult is what the checkout endpoint returns
type CheckoutResult struct {
	OrderNumber string    `json:"order_number"`
	Message     string    `json:"message"`
	WhatsAppURL string    `json:"whatsapp_url"`
	Total       string    `json:"total"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"item_count"`
	BranchID    string    `json:"branch_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// InquiryResult is the price inquiry link for a price-on-request dish
type InquiryResult struct {
	EntryID     string `json:"entry_id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
