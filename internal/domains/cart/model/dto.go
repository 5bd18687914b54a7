package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ===================================
// REQUEST DTOs
// ===================================

// AddItemRequest adds one unit of a catalog entry. SizeIndex is required
// for entries priced by size.
type AddItemRequest struct {
	EntryID   string `json:"entry_id"`
	SizeIndex *int   `json:"size_index,omitempty"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EntryID, validation.Required, validation.Length(1, 128)),
		validation.Field(&r.SizeIndex, validation.Min(0)),
	)
}

// UpdateQuantityRequest sets a line quantity; 0 or less removes the line
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (r UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.NotNil),
	)
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}

func (r UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Note, validation.RuneLength(0, 500)),
	)
}

// ===================================
// RESPONSE DTOs
// ===================================

type LineResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	PriceLabel      string `json:"price_label,omitempty"`
	IncludedInTotal bool   `json:"included_in_total"`
	Quantity        int    `json:"quantity"`
	Subtotal        string `json:"subtotal"`
	Image           string `json:"image,omitempty"`
	SizeIndex       *int   `json:"size_index,omitempty"`
	SizeLabel       string `json:"size_label,omitempty"`
	Note            string `json:"note"`
}

type CartResponse struct {
	Items         []LineResponse `json:"items"`
	TotalQuantity int            `json:"total_quantity"`
	TotalPrice    string         `json:"total_price"`
	Currency      string         `json:"currency"`
}

// MutationResponse is returned by every cart mutation
type MutationResponse struct {
	Outcome Outcome       `json:"outcome"`
	LineID  string        `json:"line_id,omitempty"`
	Cart    *CartResponse `json:"cart,omitempty"`
}

// SizeSelectionResponse is the detail payload of a 422 asking the client
// to pick a size and retry
type SizeSelectionResponse struct {
	EntryID string       `json:"entry_id"`
	Name    string       `json:"name"`
	Sizes   []SizeOption `json:"sizes"`
}

// ToCartResponse renders lines with a fixed number of decimals
func ToCartResponse(lines []LineItem, currency string, decimals int32) *CartResponse {
	totals := ComputeTotals(lines)
	resp := &CartResponse{
		Items:         make([]LineResponse, 0, len(lines)),
		TotalQuantity: totals.Quantity,
		TotalPrice:    totals.Price.StringFixed(decimals),
		Currency:      currency,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, LineResponse{
			ID:              l.ID,
			Name:            l.Name,
			Price:           l.Price.StringFixed(decimals),
			PriceLabel:      l.PriceLabel,
			IncludedInTotal: l.IncludedInTotal,
			Quantity:        l.Quantity,
			Subtotal:        l.Subtotal().StringFixed(decimals),
			Image:           l.Image,
			SizeIndex:       l.SizeIndex,
			SizeLabel:       l.SizeLabel,
			Note:            l.Note,
		})
	}
	return resp
}
