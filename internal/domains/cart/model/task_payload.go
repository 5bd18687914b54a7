package model

import "time"

// ClearCartPayload empties a session cart some time after checkout
type ClearCartPayload struct {
	SessionID string `json:"session_id"`
}

// TrackCheckoutPayload records a WhatsApp handoff for analytics
type TrackCheckoutPayload struct {
	OrderNumber   string    `json:"order_number"`
	SessionID     string    `json:"session_id"`
	BranchID      string    `json:"branch_id,omitempty"`
	Language      string    `json:"language"`
	Currency      string    `json:"currency"`
	Total         string    `json:"total"`
	ItemCount     int       `json:"item_count"`
	LineCount     int       `json:"line_count"`
	UnpricedLines int       `json:"unpriced_lines"`
	ClientIP      string    `json:"client_ip,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
