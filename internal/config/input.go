package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/storefront/price-formatter/internal/domain"
)

// InputParser handles parsing of price catalog files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a catalog from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates catalog bytes
func (ip *InputParser) Parse(data []byte) (*domain.Catalog, error) {
	var catalog domain.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&catalog); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &catalog, nil
}

// ValidateConfiguration validates the loaded catalog
func (ip *InputParser) ValidateConfiguration(catalog *domain.Catalog) error {
	if err := ip.validateStore(&catalog.Store); err != nil {
		return fmt.Errorf("store validation failed: %w", err)
	}

	defined := make(map[string]bool, len(catalog.Adjustments))
	for i, adj := range catalog.Adjustments {
		code := strings.TrimSpace(adj.Code)
		if code == "" {
			return fmt.Errorf("adjustment %d: code is required", i)
		}
		// codes are matched verbatim against product references and contributions
		if code != adj.Code {
			return fmt.Errorf("adjustment %q: code has leading or trailing whitespace", adj.Code)
		}
		if defined[code] {
			return fmt.Errorf("adjustment %s is defined more than once", code)
		}
		defined[code] = true
	}

	if len(catalog.Products) == 0 {
		return fmt.Errorf("no products provided")
	}

	seen := make(map[string]bool, len(catalog.Products))
	for i, product := range catalog.Products {
		if strings.TrimSpace(product.SKU) == "" {
			return fmt.Errorf("product %d: sku is required", i)
		}
		if seen[product.SKU] {
			return fmt.Errorf("product %s is listed more than once", product.SKU)
		}
		seen[product.SKU] = true

		if err := ip.validateProduct(&product, defined); err != nil {
			return fmt.Errorf("product %s validation failed: %w", product.SKU, err)
		}
	}

	return nil
}

func (ip *InputParser) validateStore(store *domain.StoreConfig) error {
	code := strings.TrimSpace(store.Currency)
	if code == "" {
		return fmt.Errorf("currency is required")
	}
	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Errorf("currency %q is not an ISO 4217 code", store.Currency)
	}
	return nil
}

func (ip *InputParser) validateProduct(product *domain.ProductConfig, defined map[string]bool) error {
	for _, code := range product.Adjustments {
		if !defined[code] {
			return fmt.Errorf("adjustment %s is not defined", code)
		}
	}

	if product.RegularPrice == nil {
		return fmt.Errorf("regular price is required")
	}
	if err := ip.validateAmount("regular_price", product.RegularPrice, defined); err != nil {
		return err
	}

	if product.FinalPrice == nil || product.FinalPrice.Minimal == nil || product.FinalPrice.Maximal == nil {
		return fmt.Errorf("final price requires minimal and maximal amounts")
	}
	if err := ip.validateAmount("final_price.minimal", product.FinalPrice.Minimal, defined); err != nil {
		return err
	}
	if err := ip.validateAmount("final_price.maximal", product.FinalPrice.Maximal, defined); err != nil {
		return err
	}
	if product.FinalPrice.Minimal.Value.GreaterThan(product.FinalPrice.Maximal.Value) {
		return fmt.Errorf("final price minimal cannot be greater than maximal")
	}
	return nil
}

// validateAmount checks the amount itself; adjustment contributions may be
// negative (discounts) but must reference defined adjustments.
func (ip *InputParser) validateAmount(field string, amount *domain.AmountConfig, defined map[string]bool) error {
	if amount.Value.LessThan(decimal.Zero) {
		return fmt.Errorf("%s cannot be negative", field)
	}
	for code := range amount.Adjustments {
		if !defined[code] {
			return fmt.Errorf("%s: adjustment %s is not defined", field, code)
		}
	}
	return nil
}
