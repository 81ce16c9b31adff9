// cmd/storefront/app.go
package main

import (
	"storefront/internal/books"
	"storefront/internal/clients"
	"storefront/internal/dealers"
	"storefront/internal/products"
)

func newBooksAdmin() *books.Admin {
	client := clients.NewBooksClient(cfg.Books.APIURL,
		clients.WithTimeout(cfg.Books.Timeout),
		clients.WithRateLimit(cfg.Books.RateLimit, cfg.Books.Burst),
		clients.WithLogger(logger),
	)
	return books.NewAdmin(client, logger)
}

func newDealerService() (dealers.Service, error) {
	list, err := dealers.Embedded()
	if err != nil {
		return nil, err
	}
	return dealers.NewService(list, logger), nil
}

func newProductService() (products.Service, error) {
	catalog, err := products.Embedded()
	if err != nil {
		return nil, err
	}
	return products.NewService(catalog, logger), nil
}
