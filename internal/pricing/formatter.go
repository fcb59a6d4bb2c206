package pricing

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/currency"

	"github.com/storefront/price-formatter/internal/domain"
)

// PriceFormatter shapes a product's pricing data into the minimal/regular/maximal
// price block exposed by the catalog API. It holds no mutable state and is safe
// for concurrent use.
type PriceFormatter struct {
	Store       domain.CurrencyProvider
	PriceInfo   domain.PriceInfoFactory
	Concurrency int // workers used by FormatAll; <= 0 means GOMAXPROCS
	Logger      Logger
}

// NewPriceFormatter creates a formatter bound to a store context and a pricing provider.
// The factory may be nil when callers only use Format with precomputed PriceInfo.
func NewPriceFormatter(store domain.CurrencyProvider, factory domain.PriceInfoFactory) *PriceFormatter {
	return &PriceFormatter{
		Store:     store,
		PriceInfo: factory,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the formatter. If nil is provided, a no-op logger is used.
func (pf *PriceFormatter) SetLogger(l Logger) {
	pf.Logger = orNop(l)
}

// Format attaches the price block built from info to data. On error the record
// is returned unmodified.
func (pf *PriceFormatter) Format(info domain.PriceInfo, data domain.ProductData) (domain.ProductData, error) {
	amounts, err := priceAmounts(info, data.SKU)
	if err != nil {
		return data, err
	}
	currencyCode, err := pf.currencyCode()
	if err != nil {
		return data, err
	}
	return pf.attach(info, amounts, data, currencyCode), nil
}

// FormatProduct looks up the product's pricing through the configured factory and formats it.
// Empty SKU/Name fields on data are filled from the product reference.
func (pf *PriceFormatter) FormatProduct(p domain.Product, data domain.ProductData) (domain.ProductData, error) {
	info, amounts, base, err := pf.lookup(p, data)
	if err != nil {
		return data, err
	}
	currencyCode, err := pf.currencyCode()
	if err != nil {
		return data, err
	}
	return pf.attach(info, amounts, base, currencyCode), nil
}

// FormatAll formats every product and returns the results in input order.
// The currency is resolved once and shared by the report and every product.
// The first failure cancels the remaining work.
func (pf *PriceFormatter) FormatAll(ctx context.Context, products []domain.Product) (*domain.PriceReport, error) {
	currencyCode, err := pf.currencyCode()
	if err != nil {
		return nil, err
	}

	results := make([]domain.ProductData, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pf.workers())
	for i, p := range products {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info, amounts, base, err := pf.lookup(p, domain.ProductData{})
			if err != nil {
				return err
			}
			results[i] = pf.attach(info, amounts, base, currencyCode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		pf.logger().Errorf("price formatting aborted: %v", err)
		return nil, err
	}

	pf.logger().Infof("formatted %d products for store %q", len(results), pf.storeCode())
	return &domain.PriceReport{
		Store:    pf.storeCode(),
		Currency: currencyCode,
		Products: results,
	}, nil
}

// slotAmounts holds the three amounts a price block is built from.
type slotAmounts struct {
	minimal, regular, maximal domain.PriceAmount
}

// lookup fetches the product's pricing and fills SKU/Name on a copy of data.
func (pf *PriceFormatter) lookup(p domain.Product, data domain.ProductData) (domain.PriceInfo, slotAmounts, domain.ProductData, error) {
	if pf.PriceInfo == nil {
		return nil, slotAmounts{}, data, &domain.MissingPriceDataError{SKU: p.SKU, Price: "price_info", Err: errors.New("no pricing provider configured")}
	}
	info, err := pf.PriceInfo.PriceInfo(p)
	if err != nil {
		return nil, slotAmounts{}, data, &domain.MissingPriceDataError{SKU: p.SKU, Price: "price_info", Err: err}
	}
	amounts, err := priceAmounts(info, p.SKU)
	if err != nil {
		return nil, slotAmounts{}, data, err
	}

	if data.SKU == "" {
		data.SKU = p.SKU
	}
	if data.Name == "" {
		data.Name = p.Name
	}
	return info, amounts, data, nil
}

// priceAmounts pulls minimal/maximal from the final price and the regular amount.
// Nil results, including typed nils, count as missing price data.
func priceAmounts(info domain.PriceInfo, sku string) (slotAmounts, error) {
	if isNil(info) {
		return slotAmounts{}, &domain.MissingPriceDataError{SKU: sku, Price: "price_info", Err: domain.ErrPriceUnavailable}
	}

	finalPrice, err := info.FinalPrice()
	if err == nil && isNil(finalPrice) {
		err = domain.ErrPriceUnavailable
	}
	if err != nil {
		return slotAmounts{}, &domain.MissingPriceDataError{SKU: sku, Price: "final_price", Err: err}
	}
	var amounts slotAmounts
	if amounts.minimal = finalPrice.MinimalPrice(); isNil(amounts.minimal) {
		return slotAmounts{}, &domain.MissingPriceDataError{SKU: sku, Price: "minimal_price", Err: domain.ErrPriceUnavailable}
	}
	if amounts.maximal = finalPrice.MaximalPrice(); isNil(amounts.maximal) {
		return slotAmounts{}, &domain.MissingPriceDataError{SKU: sku, Price: "maximal_price", Err: domain.ErrPriceUnavailable}
	}

	amounts.regular, err = info.RegularPrice()
	if err == nil && isNil(amounts.regular) {
		err = domain.ErrPriceUnavailable
	}
	if err != nil {
		return slotAmounts{}, &domain.MissingPriceDataError{SKU: sku, Price: "regular_price", Err: err}
	}
	return amounts, nil
}

func (pf *PriceFormatter) attach(info domain.PriceInfo, amounts slotAmounts, data domain.ProductData, currencyCode string) domain.ProductData {
	adjustments := info.Adjustments()
	data.Price = &domain.FormattedPrice{
		MinimalPrice: buildSlot(adjustments, amounts.minimal, currencyCode),
		RegularPrice: buildSlot(adjustments, amounts.regular, currencyCode),
		MaximalPrice: buildSlot(adjustments, amounts.maximal, currencyCode),
	}
	pf.logger().Debugf("formatted price for %s in %s (%d adjustments defined)", data.SKU, currencyCode, len(adjustments))
	return data
}

// buildSlot keeps only adjustments the amount carries with a non-zero contribution.
// Nil descriptors are skipped.
func buildSlot(adjustments []domain.Adjustment, amount domain.PriceAmount, currencyCode string) domain.PriceSlot {
	slot := domain.PriceSlot{
		Amount:      domain.Amount{Value: amount.Value(), Currency: currencyCode},
		Adjustments: []domain.AdjustmentEntry{},
	}
	for _, adj := range adjustments {
		if isNil(adj) {
			continue
		}
		code := adj.Code()
		if !amount.HasAdjustment(code) {
			continue
		}
		contribution := amount.AdjustmentAmount(code)
		if contribution.IsZero() {
			continue
		}
		slot.Adjustments = append(slot.Adjustments, domain.AdjustmentEntry{
			Code:        code,
			Amount:      domain.Amount{Value: contribution, Currency: currencyCode},
			Description: domain.InclusionFor(adj.IncludedInDisplayPrice()),
		})
	}
	return slot
}

// isNil reports a nil interface or an interface wrapping a nil pointer, map, slice or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// currencyCode resolves the store currency once and normalises it to the ISO-4217 form.
func (pf *PriceFormatter) currencyCode() (string, error) {
	if pf.Store == nil {
		return "", &domain.CurrencyResolutionError{Err: domain.ErrNoActiveStore}
	}
	code, err := pf.Store.CurrencyCode()
	if err != nil {
		return "", &domain.CurrencyResolutionError{Store: pf.storeCode(), Err: err}
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", &domain.CurrencyResolutionError{Store: pf.storeCode(), Err: errors.New("empty currency code")}
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", &domain.CurrencyResolutionError{Store: pf.storeCode(), Err: fmt.Errorf("invalid currency code %q: %w", code, err)}
	}
	return unit.String(), nil
}

func (pf *PriceFormatter) storeCode() string {
	if s, ok := pf.Store.(interface{ StoreCode() string }); ok {
		return s.StoreCode()
	}
	return ""
}

func (pf *PriceFormatter) logger() Logger { return orNop(pf.Logger) }

func (pf *PriceFormatter) workers() int {
	if pf.Concurrency > 0 {
		return pf.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}
