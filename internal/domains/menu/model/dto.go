package model

import (
	"strconv"

	"kahramana-backend/internal/shared/i18n"
)

// ImportResult summarises a spreadsheet import
type ImportResult struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors,omitempty"`
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// EntryResponse is the localized view of an entry returned by the API
type EntryResponse struct {
	ID          string         `json:"id"`
	Category    string         `json:"category,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Pricing     string         `json:"pricing"`
	Price       *string        `json:"price,omitempty"`
	PriceLabel  string         `json:"price_label,omitempty"`
	Sizes       []SizeResponse `json:"sizes,omitempty"`
	Image       string         `json:"image,omitempty"`
}

type SizeResponse struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Price *string `json:"price,omitempty"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MenuResponse struct {
	Currency   string             `json:"currency"`
	Categories []CategoryResponse `json:"categories"`
	Dishes     []EntryResponse    `json:"dishes"`
}

// SizeLabel is the label of size i, or its 1-based number when unlabeled
func SizeLabel(s Size, i int) string {
	if s.Label != "" {
		return s.Label
	}
	return strconv.Itoa(i + 1)
}

// ToResponse renders the entry for lang. decimals controls price formatting.
func (e Entry) ToResponse(lang i18n.Language, decimals int32) EntryResponse {
	p := e.Pricing()
	resp := EntryResponse{
		ID:          e.ID,
		Category:    e.Category,
		Name:        e.Name.Resolve(lang),
		Description: e.Description.Resolve(lang),
		Pricing:     p.Kind.String(),
		Image:       e.Image,
	}

	switch p.Kind {
	case PricingFixed:
		v := p.Price.StringFixed(decimals)
		resp.Price = &v
	case PricingVariant:
		resp.Sizes = make([]SizeResponse, len(p.Sizes))
		for i, s := range p.Sizes {
			sr := SizeResponse{Index: i, Label: SizeLabel(s, i)}
			if s.Price != nil {
				v := s.Price.StringFixed(decimals)
				sr.Price = &v
			}
			resp.Sizes[i] = sr
		}
	default:
		if v, ok := e.PriceLabel.Lookup(lang); ok {
			resp.PriceLabel = v
		} else {
			resp.PriceLabel = lang.T(i18n.KeyPriceOnRequest)
		}
	}
	return resp
}

func (m *Menu) ToResponse(lang i18n.Language, categoryID string, decimals int32) MenuResponse {
	resp := MenuResponse{
		Currency:   m.Currency,
		Categories: make([]CategoryResponse, 0, len(m.Categories)),
		Dishes:     make([]EntryResponse, 0),
	}
	for _, c := range m.Categories {
		resp.Categories = append(resp.Categories, CategoryResponse{ID: c.ID, Name: c.Name.Resolve(lang)})
	}
	for _, e := range m.ByCategory(categoryID) {
		resp.Dishes = append(resp.Dishes, e.ToResponse(lang, decimals))
	}
	return resp
}
