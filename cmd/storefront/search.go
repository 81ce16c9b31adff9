// cmd/storefront/search.go
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"storefront/internal/dealers"
	"storefront/internal/products"
	"storefront/internal/search"
	"storefront/internal/view"
)

var (
	dealerService   string
	productCategory string
)

var dealersCmd = &cobra.Command{
	Use:   "dealers",
	Short: "Dealer locator",
}

var dealersSearchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search dealers by name, city, postal code or address",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newDealerService()
		if err != nil {
			return err
		}
		q := search.Query{Text: strings.Join(args, " "), Filter: dealerService}.Trimmed()
		results := svc.Search(cmd.Context(), q)
		return view.Text{}.Render(cmd.OutOrStdout(), dealers.Present(results, q))
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Product catalog",
}

var productsSearchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search products by name, description, highlight or category",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newProductService()
		if err != nil {
			return err
		}
		q := search.Query{Text: strings.Join(args, " "), Filter: productCategory}.Trimmed()
		results := svc.Search(cmd.Context(), q)
		return view.Text{}.Render(cmd.OutOrStdout(), products.Present(svc, results, q))
	},
}

func init() {
	dealersSearchCmd.Flags().StringVarP(&dealerService, "service", "s", "", "Only dealers offering this service (sales, after-sales, parts)")
	productsSearchCmd.Flags().StringVarP(&productCategory, "category", "t", "", "Only products in this category")

	dealersCmd.AddCommand(dealersSearchCmd)
	productsCmd.AddCommand(productsSearchCmd)
}
