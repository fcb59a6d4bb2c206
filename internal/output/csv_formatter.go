package output

import (
	"bytes"
	"encoding/csv"

	"github.com/storefront/price-formatter/internal/domain"
)

// CSVFormatter flattens the report to one row per product, price slot and adjustment.
// Slots without adjustments still get a row with empty adjustment columns.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"SKU", "Name", "Slot", "Amount", "Currency", "AdjustmentCode", "AdjustmentAmount", "Description"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, product := range report.Products {
		if product.Price == nil {
			continue
		}
		for _, named := range product.Price.Slots() {
			base := []string{
				product.SKU,
				product.Name,
				named.Name,
				named.Slot.Amount.Value.String(),
				named.Slot.Amount.Currency,
			}
			if len(named.Slot.Adjustments) == 0 {
				if err := w.Write(append(base, "", "", "")); err != nil {
					return nil, err
				}
				continue
			}
			for _, adj := range named.Slot.Adjustments {
				row := append(append([]string(nil), base...), adj.Code, adj.Amount.Value.String(), adj.Description.String())
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
