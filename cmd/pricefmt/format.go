package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storefront/price-formatter/internal/config"
	"github.com/storefront/price-formatter/internal/domain"
	"github.com/storefront/price-formatter/internal/output"
	"github.com/storefront/price-formatter/internal/pricing"
)

type formatOptions struct {
	catalog string
	format  string
	output  string
	skus    []string
}

func newFormatCmd(root *rootOptions) *cobra.Command {
	opts := &formatOptions{}
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format product prices from a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(opts.catalog)
			if err != nil {
				return err
			}

			formatName := opts.format
			if formatName == "" {
				formatName = config.EnvOr("PRICEFMT_FORMAT", "json")
			}
			f := output.GetFormatterByName(formatName)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %s)", formatName, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			pf := pricing.NewPriceFormatter(pricing.NewStaticStore(catalog.Store), pricing.NewCatalogPriceInfoFactory(catalog))
			pf.SetLogger(root.log().Sugar())

			report, err := pf.FormatAll(cmd.Context(), selectProducts(catalog, opts.skus))
			if err != nil {
				return err
			}

			if opts.output != "" {
				if err := output.WriteFormattedFile(opts.output, f, report); err != nil {
					return err
				}
				root.log().Sugar().Infof("wrote %s report to %s", f.Name(), opts.output)
				return nil
			}
			return output.WriteFormatted(cmd.OutOrStdout(), f, report)
		},
	}

	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "catalog YAML file (default $PRICEFMT_CATALOG)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (default $PRICEFMT_FORMAT or json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringSliceVar(&opts.skus, "sku", nil, "only format these SKUs (repeatable)")
	return cmd
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			root.log().Sugar().Debugf("validated catalog for store %q", catalog.Store.Code)
			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d products, %d adjustments, currency %s\n",
				len(catalog.Products), len(catalog.Adjustments), strings.ToUpper(catalog.Store.Currency))
			return nil
		},
	}
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "catalog YAML file (default $PRICEFMT_CATALOG)")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

func loadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		path = config.EnvOr("PRICEFMT_CATALOG", "")
	}
	if path == "" {
		return nil, fmt.Errorf("no catalog given: use --catalog or set PRICEFMT_CATALOG")
	}
	return config.NewInputParser().LoadFromFile(path)
}

// selectProducts keeps catalog order; SKUs not in the catalog are passed through
// so the formatter reports them as missing price data.
func selectProducts(catalog *domain.Catalog, skus []string) []domain.Product {
	all := catalog.AllProducts()
	if len(skus) == 0 {
		return all
	}
	wanted := make(map[string]bool, len(skus))
	for _, sku := range skus {
		wanted[strings.TrimSpace(sku)] = true
	}
	selected := make([]domain.Product, 0, len(wanted))
	for _, p := range all {
		if wanted[p.SKU] {
			selected = append(selected, p)
			delete(wanted, p.SKU)
		}
	}
	for _, sku := range skus {
		sku = strings.TrimSpace(sku)
		if wanted[sku] {
			selected = append(selected, domain.Product{SKU: sku})
			delete(wanted, sku)
		}
	}
	return selected
}
