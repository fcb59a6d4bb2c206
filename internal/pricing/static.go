package pricing

import (
	"fmt"

	"github.com/storefront/price-formatter/internal/domain"
	"github.com/storefront/price-formatter/pkg/decimal"
)

// StaticAdjustment is a fixed adjustment descriptor.
type StaticAdjustment struct {
	AdjustmentCode string
	Included       bool
}

func (a StaticAdjustment) Code() string                { return a.AdjustmentCode }
func (a StaticAdjustment) IncludedInDisplayPrice() bool { return a.Included }

// StaticAmount is a precomputed amount. An adjustment is carried by the amount
// when it has an entry in Contributions, even if that entry is zero.
type StaticAmount struct {
	Amount        decimal.Money
	Contributions map[string]decimal.Money
}

func (a StaticAmount) Value() decimal.Money { return a.Amount }

func (a StaticAmount) HasAdjustment(code string) bool {
	_, ok := a.Contributions[code]
	return ok
}

func (a StaticAmount) AdjustmentAmount(code string) decimal.Money {
	if v, ok := a.Contributions[code]; ok {
		return v
	}
	return decimal.Zero()
}

// StaticFinalPrice holds a precomputed final price range.
type StaticFinalPrice struct {
	Minimal domain.PriceAmount
	Maximal domain.PriceAmount
}

func (f StaticFinalPrice) MinimalPrice() domain.PriceAmount { return f.Minimal }
func (f StaticFinalPrice) MaximalPrice() domain.PriceAmount { return f.Maximal }

// StaticPriceInfo is an in-memory PriceInfo. A nil Regular or Final reports
// domain.ErrPriceUnavailable.
type StaticPriceInfo struct {
	Regular       domain.PriceAmount
	Final         *StaticFinalPrice
	AdjustmentSet []domain.Adjustment
}

func (p *StaticPriceInfo) FinalPrice() (domain.FinalPrice, error) {
	if p.Final == nil {
		return nil, domain.ErrPriceUnavailable
	}
	return p.Final, nil
}

func (p *StaticPriceInfo) RegularPrice() (domain.PriceAmount, error) {
	if p.Regular == nil {
		return nil, domain.ErrPriceUnavailable
	}
	return p.Regular, nil
}

func (p *StaticPriceInfo) Adjustments() []domain.Adjustment { return p.AdjustmentSet }

// CatalogPriceInfoFactory serves precomputed pricing from a loaded catalog.
type CatalogPriceInfoFactory struct {
	infos map[string]*StaticPriceInfo
}

// NewCatalogPriceInfoFactory indexes the catalog's products by SKU.
func NewCatalogPriceInfoFactory(c *domain.Catalog) *CatalogPriceInfoFactory {
	defined := make(map[string]domain.Adjustment, len(c.Adjustments))
	ordered := make([]domain.Adjustment, 0, len(c.Adjustments))
	for _, ac := range c.Adjustments {
		adj := StaticAdjustment{AdjustmentCode: ac.Code, Included: ac.IncludedInDisplayPrice}
		defined[ac.Code] = adj
		ordered = append(ordered, adj)
	}

	f := &CatalogPriceInfoFactory{infos: make(map[string]*StaticPriceInfo, len(c.Products))}
	for _, pc := range c.Products {
		info := &StaticPriceInfo{
			Regular:       amountFromConfig(pc.RegularPrice),
			AdjustmentSet: ordered,
		}
		if pc.FinalPrice != nil {
			info.Final = &StaticFinalPrice{
				Minimal: amountFromConfig(pc.FinalPrice.Minimal),
				Maximal: amountFromConfig(pc.FinalPrice.Maximal),
			}
		}
		if len(pc.Adjustments) > 0 {
			subset := make([]domain.Adjustment, 0, len(pc.Adjustments))
			for _, code := range pc.Adjustments {
				if adj, ok := defined[code]; ok {
					subset = append(subset, adj)
				}
			}
			info.AdjustmentSet = subset
		}
		f.infos[pc.SKU] = info
	}
	return f
}

// PriceInfo implements domain.PriceInfoFactory.
func (f *CatalogPriceInfoFactory) PriceInfo(p domain.Product) (domain.PriceInfo, error) {
	info, ok := f.infos[p.SKU]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sku %q", domain.ErrPriceUnavailable, p.SKU)
	}
	return info, nil
}

func amountFromConfig(ac *domain.AmountConfig) domain.PriceAmount {
	if ac == nil {
		return nil
	}
	contributions := make(map[string]decimal.Money, len(ac.Adjustments))
	for code, v := range ac.Adjustments {
		contributions[code] = decimal.NewMoneyFromDecimal(v)
	}
	return StaticAmount{Amount: decimal.NewMoneyFromDecimal(ac.Value), Contributions: contributions}
}
