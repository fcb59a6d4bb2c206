package domain

import (
	"fmt"
	"strings"

	"github.com/storefront/price-formatter/pkg/decimal"
)

// Inclusion records whether an adjustment is already folded into the displayed price.
type Inclusion int

const (
	AdjustmentIncluded Inclusion = iota + 1
	AdjustmentExcluded
)

// InclusionFor maps the display-price predicate onto the enum.
func InclusionFor(includedInDisplayPrice bool) Inclusion {
	if includedInDisplayPrice {
		return AdjustmentIncluded
	}
	return AdjustmentExcluded
}

func (i Inclusion) String() string {
	switch i {
	case AdjustmentIncluded:
		return "INCLUDED"
	case AdjustmentExcluded:
		return "EXCLUDED"
	default:
		return fmt.Sprintf("Inclusion(%d)", int(i))
	}
}

// MarshalText implements encoding.TextMarshaler; JSON and YAML both go through it.
func (i Inclusion) MarshalText() ([]byte, error) {
	switch i {
	case AdjustmentIncluded, AdjustmentExcluded:
		return []byte(i.String()), nil
	default:
		return nil, fmt.Errorf("invalid adjustment inclusion %d", int(i))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Inclusion) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "INCLUDED":
		*i = AdjustmentIncluded
	case "EXCLUDED":
		*i = AdjustmentExcluded
	default:
		return fmt.Errorf("unknown adjustment inclusion %q", string(text))
	}
	return nil
}

// Amount is a currency-qualified monetary value.
type Amount struct {
	Value    decimal.Money `json:"value" yaml:"value"`
	Currency string        `json:"currency" yaml:"currency"`
}

// AdjustmentEntry is one adjustment's contribution to a price slot.
type AdjustmentEntry struct {
	Code        string    `json:"code" yaml:"code"`
	Amount      Amount    `json:"amount" yaml:"amount"`
	Description Inclusion `json:"description" yaml:"description"`
}

// PriceSlot is an amount plus the adjustments contributing to it.
type PriceSlot struct {
	Amount      Amount            `json:"amount" yaml:"amount"`
	Adjustments []AdjustmentEntry `json:"adjustments" yaml:"adjustments"`
}

// FormattedPrice is the schema-shaped price block attached to a product record.
type FormattedPrice struct {
	MinimalPrice PriceSlot `json:"minimalPrice" yaml:"minimalPrice"`
	RegularPrice PriceSlot `json:"regularPrice" yaml:"regularPrice"`
	MaximalPrice PriceSlot `json:"maximalPrice" yaml:"maximalPrice"`
}

// Slots returns the three slots in output order, keyed by their schema names.
func (fp FormattedPrice) Slots() []NamedSlot {
	return []NamedSlot{
		{Name: "minimalPrice", Slot: fp.MinimalPrice},
		{Name: "regularPrice", Slot: fp.RegularPrice},
		{Name: "maximalPrice", Slot: fp.MaximalPrice},
	}
}

// NamedSlot pairs a slot with its schema field name.
type NamedSlot struct {
	Name string
	Slot PriceSlot
}

// Product identifies a catalog product.
type Product struct {
	SKU  string
	Name string
}

// ProductData is the product record the formatter augments with a price block.
type ProductData struct {
	SKU   string          `json:"sku" yaml:"sku"`
	Name  string          `json:"name,omitempty" yaml:"name,omitempty"`
	Price *FormattedPrice `json:"price,omitempty" yaml:"price,omitempty"`
}

// PriceReport is the formatted price data for a batch of products.
type PriceReport struct {
	Store    string        `json:"store" yaml:"store"`
	Currency string        `json:"currency" yaml:"currency"`
	Products []ProductData `json:"products" yaml:"products"`
}
