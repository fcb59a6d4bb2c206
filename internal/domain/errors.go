package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPriceUnavailable is returned by pricing providers that have no price for a product.
	ErrPriceUnavailable = errors.New("price unavailable")
	// ErrNoActiveStore is returned by currency providers without a resolvable store.
	ErrNoActiveStore = errors.New("no active store")
)

// MissingPriceDataError reports that the pricing provider could not supply a required amount.
type MissingPriceDataError struct {
	SKU   string
	Price string
	Err   error
}

func (e *MissingPriceDataError) Error() string {
	msg := "missing " + e.Price
	if e.SKU != "" {
		msg = fmt.Sprintf("product %s: %s", e.SKU, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MissingPriceDataError) Unwrap() error { return e.Err }

// CurrencyResolutionError reports that no currency could be determined for the active store.
type CurrencyResolutionError struct {
	Store string
	Err   error
}

func (e *CurrencyResolutionError) Error() string {
	msg := "failed to resolve store currency"
	if e.Store != "" {
		msg = fmt.Sprintf("failed to resolve currency for store %s", e.Store)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CurrencyResolutionError) Unwrap() error { return e.Err }
