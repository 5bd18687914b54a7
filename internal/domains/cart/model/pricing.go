package model

import (
	"github.com/shopspring/decimal"

	menu "kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/shared/i18n"
)

// ResolvedPrice is the pricing metadata copied onto a new line
type ResolvedPrice struct {
	Price           decimal.Decimal
	PriceLabel      string
	IncludedInTotal bool
	SizeIndex       *int
	SizeLabel       string
}

// ResolvePricing applies the catalog pricing policy:
//
//	Fixed     -> priced line at the entry price
//	Variant   -> the selected size's price, or unpriced with its label;
//	             ErrSizeSelectionRequired without a valid selection
//	OnRequest -> unpriced line with the price-on-request label
func ResolvePricing(entry menu.Entry, sizeIndex *int, lang i18n.Language) (ResolvedPrice, error) {
	p := entry.Pricing()

	switch p.Kind {
	case menu.PricingFixed:
		return ResolvedPrice{Price: p.Price, IncludedInTotal: true}, nil

	case menu.PricingVariant:
		if sizeIndex == nil || *sizeIndex < 0 || *sizeIndex >= len(p.Sizes) {
			return ResolvedPrice{}, ErrSizeSelectionRequired
		}
		idx := *sizeIndex
		size := p.Sizes[idx]
		resolved := ResolvedPrice{
			SizeIndex: &idx,
			SizeLabel: menu.SizeLabel(size, idx),
		}
		if size.Price != nil {
			resolved.Price = *size.Price
			resolved.IncludedInTotal = true
			return resolved, nil
		}
		resolved.Price = decimal.Zero
		resolved.PriceLabel = onRequestLabel(entry, lang)
		return resolved, nil
	}

	return ResolvedPrice{
		Price:      decimal.Zero,
		PriceLabel: onRequestLabel(entry, lang),
	}, nil
}

func onRequestLabel(entry menu.Entry, lang i18n.Language) string {
	if v, ok := entry.PriceLabel.Lookup(lang); ok {
		return v
	}
	return lang.T(i18n.KeyPriceOnRequest)
}

// SizeOption describes one choice offered when a size must be selected
type SizeOption struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Price *string `json:"price,omitempty"`
}

// SizeOptions lists the sizes of a variant entry, nil for other kinds
func SizeOptions(entry menu.Entry, decimals int32) []SizeOption {
	p := entry.Pricing()
	if p.Kind != menu.PricingVariant {
		return nil
	}
	opts := make([]SizeOption, len(p.Sizes))
	for i, s := range p.Sizes {
		opts[i] = SizeOption{Index: i, Label: menu.SizeLabel(s, i)}
		if s.Price != nil {
			v := s.Price.StringFixed(decimals)
			opts[i].Price = &v
		}
	}
	return opts
}
