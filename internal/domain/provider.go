package domain

import "github.com/storefront/price-formatter/pkg/decimal"

// PriceInfo is the pricing engine's result for a single product.
type PriceInfo interface {
	FinalPrice() (FinalPrice, error)
	RegularPrice() (PriceAmount, error)
	// Adjustments lists the adjustments applicable to the product in display order.
	Adjustments() []Adjustment
}

// FinalPrice exposes the post-adjustment price range.
type FinalPrice interface {
	MinimalPrice() PriceAmount
	MaximalPrice() PriceAmount
}

// PriceAmount is a computed amount along with its per-adjustment breakdown.
type PriceAmount interface {
	Value() decimal.Money
	HasAdjustment(code string) bool
	AdjustmentAmount(code string) decimal.Money
}

// Adjustment describes a named price modifier such as tax or a discount.
type Adjustment interface {
	Code() string
	IncludedInDisplayPrice() bool
}

// CurrencyProvider resolves the active store's currency code.
type CurrencyProvider interface {
	CurrencyCode() (string, error)
}

// PriceInfoFactory produces pricing data for a product.
type PriceInfoFactory interface {
	PriceInfo(p Product) (PriceInfo, error)
}
