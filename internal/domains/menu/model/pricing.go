package model

import "github.com/shopspring/decimal"

// PricingKind tags the three catalog pricing shapes
type PricingKind int

const (
	// PricingOnRequest: price is null with no sizes, or the price field has
	// an unexpected shape.
	PricingOnRequest PricingKind = iota
	// PricingFixed: price is a number
	PricingFixed
	// PricingVariant: price is null and the entry offers at least one size
	PricingVariant
)

func (k PricingKind) String() string {
	switch k {
	case PricingFixed:
		return "fixed"
	case PricingVariant:
		return "variant"
	default:
		return "on_request"
	}
}

// Pricing is the classified price of a catalog entry. Only the fields for
// Kind are meaningful: Price for Fixed, Sizes for Variant.
type Pricing struct {
	Kind  PricingKind
	Price decimal.Decimal
	Sizes []Size
}

func Fixed(price decimal.Decimal) Pricing {
	return Pricing{Kind: PricingFixed, Price: price}
}

func Variant(sizes []Size) Pricing {
	return Pricing{Kind: PricingVariant, Sizes: sizes}
}

func OnRequest() Pricing {
	return Pricing{Kind: PricingOnRequest}
}
