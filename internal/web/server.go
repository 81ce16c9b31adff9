// internal/web/server.go
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/books"
	"storefront/internal/dealers"
	"storefront/internal/products"
	"storefront/internal/view"
)

// Links are the modules listed on the index page.
var Links = []view.Link{
	{Href: "/admin/books", Label: "Books admin", Description: "Create, inspect, update and delete books."},
	{Href: "/dealers", Label: "Dealer locator", Description: "Find a dealer by city, postal code or service."},
	{Href: "/products", Label: "Product catalog", Description: "Browse products by keyword or category."},
}

// AdminAuth is the account guarding the books admin. An empty PasswordHash
// leaves the admin open.
type AdminAuth struct {
	Username     string
	PasswordHash string
}

// Server wires the module handlers onto one router.
type Server struct {
	books    *books.Handler
	dealers  *dealers.Handler
	products *products.Handler
	pages    view.PageRenderer
	admin    AdminAuth
	logger   *zap.Logger
}

func NewServer(
	booksHandler *books.Handler,
	dealersHandler *dealers.Handler,
	productsHandler *products.Handler,
	pages view.PageRenderer,
	admin AdminAuth,
	logger *zap.Logger,
) *Server {
	return &Server{
		books:    booksHandler,
		dealers:  dealersHandler,
		products: productsHandler,
		pages:    pages,
		admin:    admin,
		logger:   logger,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)

	r.Route("/admin/books", func(r chi.Router) {
		r.Use(auth.BasicAuth("books admin", s.admin.Username, s.admin.PasswordHash, s.logger))
		r.Get("/", s.books.HandleIndex)
		r.Post("/lookup", s.books.HandleLookup)
		r.Post("/add", s.books.HandleAdd)
		r.Post("/update", s.books.HandleUpdate)
		r.Post("/delete", s.books.HandleDelete)
	})

	r.Get("/dealers", s.dealers.HandleSearch)
	r.Get("/products", s.products.HandleSearch)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := view.Page{Title: "Home", Active: "home", Content: Links}
	if err := view.WritePage(w, s.pages, http.StatusOK, "index", page); err != nil {
		s.logger.Error("render index page", zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("remote", r.RemoteAddr),
		)
	})
}
