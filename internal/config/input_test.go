package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
store:
  code: default
  currency: USD
adjustments:
  - code: tax
    included_in_display_price: true
products:
  - sku: 24-MB01
    name: Joust Duffle Bag
    regular_price:
      value: 100
      adjustments:
        tax: 10
    final_price:
      minimal:
        value: 80
        adjustments:
          tax: 10
      maximal:
        value: "120.00"
        adjustments:
          tax: 0
`

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	catalog, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "default", catalog.Store.Code)
	assert.Equal(t, "USD", catalog.Store.Currency)
	require.Len(t, catalog.Adjustments, 1)
	assert.True(t, catalog.Adjustments[0].IncludedInDisplayPrice)
	require.Len(t, catalog.Products, 1)

	product := catalog.Products[0]
	assert.Equal(t, "100", product.RegularPrice.Value.String())
	assert.Equal(t, "10", product.RegularPrice.Adjustments["tax"].String())
	assert.Equal(t, "120", product.FinalPrice.Maximal.Value.String())
	assert.True(t, product.FinalPrice.Maximal.Adjustments["tax"].IsZero())
}

func TestLoadFromFile_Fixture(t *testing.T) {
	catalog, err := NewInputParser().LoadFromFile("../../test/testdata/example_catalog.yaml")
	require.NoError(t, err)
	assert.Len(t, catalog.Products, 3)
	assert.Equal(t, []string{"tax"}, catalog.Products[2].Adjustments)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	catalog, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, catalog)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("store: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	testCases := []struct {
		desc    string
		mutate  func(string) string
		wantErr string
	}{
		{
			desc:    "missing currency",
			mutate:  func(s string) string { return replace(s, "  currency: USD\n", "") },
			wantErr: "currency is required",
		},
		{
			desc:    "unknown currency",
			mutate:  func(s string) string { return replace(s, "currency: USD", "currency: DOLLARS") },
			wantErr: "not an ISO 4217 code",
		},
		{
			desc:    "undefined adjustment on amount",
			mutate:  func(s string) string { return replace(s, "        tax: 10\n    final_price", "        fpt: 10\n    final_price") },
			wantErr: "adjustment fpt is not defined",
		},
		{
			desc:    "negative price",
			mutate:  func(s string) string { return replace(s, "value: 80", "value: -80") },
			wantErr: "final_price.minimal cannot be negative",
		},
		{
			desc:    "minimal above maximal",
			mutate:  func(s string) string { return replace(s, "value: 80", "value: 180") },
			wantErr: "minimal cannot be greater than maximal",
		},
		{
			desc:    "missing sku",
			mutate:  func(s string) string { return replace(s, "sku: 24-MB01", "sku: \"\"") },
			wantErr: "sku is required",
		},
		{
			desc:    "duplicate adjustment",
			mutate:  func(s string) string { return replace(s, "products:", "  - code: tax\nproducts:") },
			wantErr: "adjustment tax is defined more than once",
		},
		{
			desc: "missing regular price",
			mutate: func(s string) string {
				return replace(s, "    regular_price:\n      value: 100\n      adjustments:\n        tax: 10\n", "")
			},
			wantErr: "regular price is required",
		},
		{
			desc:    "adjustment code padded with whitespace",
			mutate:  func(s string) string { return replace(s, "  - code: tax\n", "  - code: \" tax\"\n") },
			wantErr: "code has leading or trailing whitespace",
		},
		{
			desc:    "product subset references unknown adjustment",
			mutate:  func(s string) string { return replace(s, "    name: Joust Duffle Bag\n", "    name: Joust Duffle Bag\n    adjustments: [weee]\n") },
			wantErr: "adjustment weee is not defined",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tc.mutate(validCatalog)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateConfiguration_DuplicateProduct(t *testing.T) {
	catalog, err := NewInputParser().Parse([]byte(validCatalog))
	require.NoError(t, err)

	catalog.Products = append(catalog.Products, catalog.Products[0])
	err = NewInputParser().ValidateConfiguration(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listed more than once")

	catalog.Products = nil
	err = NewInputParser().ValidateConfiguration(catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no products provided")
}

func replace(s, old, new string) string {
	out := strings.Replace(s, old, new, 1)
	if out == s {
		panic("replace: pattern not found: " + old)
	}
	return out
}
