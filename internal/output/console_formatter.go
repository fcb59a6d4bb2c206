package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/storefront/price-formatter/internal/domain"
)

// ConsoleFormatter renders a human-readable price table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PRODUCT PRICES")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Store: %s  Currency: %s\n", displayStore(report.Store), report.Currency)

	for _, product := range report.Products {
		fmt.Fprintln(&buf)
		if product.Name != "" {
			fmt.Fprintf(&buf, "%s (%s)\n", product.Name, product.SKU)
		} else {
			fmt.Fprintln(&buf, product.SKU)
		}
		if product.Price == nil {
			fmt.Fprintln(&buf, "  no price data")
			continue
		}
		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		for _, named := range product.Price.Slots() {
			fmt.Fprintf(tw, "  %s\t%s\t\n", named.Name, FormatAmount(named.Slot.Amount))
			for _, adj := range named.Slot.Adjustments {
				fmt.Fprintf(tw, "    %s\t%s\t%s\n", adj.Code, FormatAmount(adj.Amount), FormatInclusion(adj.Description))
			}
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func displayStore(code string) string {
	if code == "" {
		return "-"
	}
	return code
}
