package domain

import "github.com/shopspring/decimal"

// Catalog is the top-level price catalog loaded from YAML
type Catalog struct {
	Store       StoreConfig        `yaml:"store" json:"store"`
	Adjustments []AdjustmentConfig `yaml:"adjustments" json:"adjustments"`
	Products    []ProductConfig    `yaml:"products" json:"products"`
}

// StoreConfig describes the store context prices are formatted for
type StoreConfig struct {
	Code     string `yaml:"code" json:"code"`
	Currency string `yaml:"currency" json:"currency"`
}

// AdjustmentConfig defines an adjustment available to catalog products
type AdjustmentConfig struct {
	Code                   string `yaml:"code" json:"code"`
	IncludedInDisplayPrice bool   `yaml:"included_in_display_price" json:"included_in_display_price"`
}

// ProductConfig holds the precomputed pricing of a single product
type ProductConfig struct {
	SKU          string            `yaml:"sku" json:"sku"`
	Name         string            `yaml:"name" json:"name"`
	RegularPrice *AmountConfig     `yaml:"regular_price" json:"regular_price"`
	FinalPrice   *FinalPriceConfig `yaml:"final_price" json:"final_price"`
	// Adjustments restricts the product to a subset of catalog adjustment codes.
	// Empty means every catalog adjustment applies.
	Adjustments []string `yaml:"adjustments,omitempty" json:"adjustments,omitempty"`
}

// FinalPriceConfig holds the final price range
type FinalPriceConfig struct {
	Minimal *AmountConfig `yaml:"minimal" json:"minimal"`
	Maximal *AmountConfig `yaml:"maximal" json:"maximal"`
}

// AmountConfig is a price value plus the per-adjustment contributions folded into it
type AmountConfig struct {
	Value       decimal.Decimal            `yaml:"value" json:"value"`
	Adjustments map[string]decimal.Decimal `yaml:"adjustments,omitempty" json:"adjustments,omitempty"`
}

// Product returns the catalog product reference for the entry
func (pc ProductConfig) Product() Product {
	return Product{SKU: pc.SKU, Name: pc.Name}
}

// AllProducts returns the product references in catalog order
func (c *Catalog) AllProducts() []Product {
	products := make([]Product, 0, len(c.Products))
	for _, pc := range c.Products {
		products = append(products, pc.Product())
	}
	return products
}
