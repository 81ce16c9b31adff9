// internal/products/handler.go
package products

import (
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/search"
	"storefront/internal/view"
)

type Handler struct {
	service Service
	pages   view.PageRenderer
	logger  *zap.Logger
}

func NewHandler(service Service, pages view.PageRenderer, logger *zap.Logger) *Handler {
	return &Handler{service: service, pages: pages, logger: logger}
}

// HandleSearch renders the catalog for the q and category parameters.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := search.Query{
		Text:   r.URL.Query().Get("q"),
		Filter: r.URL.Query().Get("category"),
	}.Trimmed()

	results := h.service.Search(r.Context(), q)
	page := view.Page{
		Title:  "Products",
		Active: "products",
		Content: view.SearchPage{
			Heading:     "Browse the catalog",
			Action:      "/products",
			Query:       q.Text,
			Placeholder: "Name, feature or category",
			FilterName:  "category",
			AllLabel:    "All categories",
			Options:     Options(h.service.Categories(), q.Filter),
			Results:     Present(h.service, results, q),
		},
	}
	if err := view.WritePage(w, h.pages, http.StatusOK, "search", page); err != nil {
		h.logger.Error("render products page", zap.Error(err))
	}
}
