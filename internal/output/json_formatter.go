package output

import (
	"encoding/json"

	"github.com/storefront/price-formatter/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON in the API price shape.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
