package pricing

import (
	"strings"

	"github.com/storefront/price-formatter/internal/domain"
)

// StaticStore is a fixed store context.
type StaticStore struct {
	Code     string
	Currency string
}

// NewStaticStore builds the store context from catalog configuration.
func NewStaticStore(cfg domain.StoreConfig) StaticStore {
	return StaticStore{Code: cfg.Code, Currency: cfg.Currency}
}

// CurrencyCode implements domain.CurrencyProvider.
func (s StaticStore) CurrencyCode() (string, error) {
	code := strings.ToUpper(strings.TrimSpace(s.Currency))
	if code == "" {
		return "", domain.ErrNoActiveStore
	}
	return code, nil
}

func (s StaticStore) StoreCode() string { return s.Code }
