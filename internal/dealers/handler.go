// internal/dealers/handler.go
package dealers

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

// HandleSearch renders the dealer locator for the q and service parameters.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := search.Query{
		Text:   r.URL.Query().Get("q"),
		Filter: r.URL.Query().Get("service"),
	}.Trimmed()

	results := h.service.Search(r.Context(), q)
	page := view.Page{
		Title:  "Dealers",
		Active: "dealers",
		Content: view.SearchPage{
			Heading:     "Find a dealer",
			Action:      "/dealers",
			Query:       q.Text,
			Placeholder: "City, postal code, name or address",
			FilterName:  "service",
			AllLabel:    "All services",
			Options:     Options(h.service.Offerings(), q.Filter),
			Results:     Present(results, q),
		},
	}
	if err := view.WritePage(w, h.pages, http.StatusOK, "search", page); err != nil {
		h.logger.Error("render dealers page", zap.Error(err))
	}
}
