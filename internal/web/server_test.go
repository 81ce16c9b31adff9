package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/books"
	"storefront/internal/clients"
	"storefront/internal/dealers"
	"storefront/internal/products"
	"storefront/internal/view"
)

// fakeBooksAPI is an in-memory stand-in for the remote books service.
type fakeBooksAPI struct {
	mu      sync.Mutex
	order   []string
	books   map[string]map[string]any
	nextID  int
	methods []string
}

func newFakeBooksAPI() *fakeBooksAPI {
	api := &fakeBooksAPI{books: map[string]map[string]any{}, nextID: 1}
	api.add(map[string]any{"title": "Pride and Prejudice", "author": "Jane Austen", "year": 1813, "read": true})
	api.add(map[string]any{"title": "The Great Gatsby", "author": "F. Scott Fitzgerald", "isRead": false})
	return api
}

func (api *fakeBooksAPI) add(b map[string]any) map[string]any {
	b["id"] = api.nextID
	id := strconv.Itoa(api.nextID)
	api.nextID++
	api.books[id] = b
	api.order = append(api.order, id)
	return b
}

func (api *fakeBooksAPI) calls() []string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]string(nil), api.methods...)
}

func (api *fakeBooksAPI) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
	notFound := func(w http.ResponseWriter, id string) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Book " + id + " not found"})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		out := make([]map[string]any, 0, len(api.order))
		for _, id := range api.order {
			out = append(out, api.books[id])
		}
		writeJSON(w, http.StatusOK, out)
	})
	mux.HandleFunc("POST /books", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
			return
		}
		writeJSON(w, http.StatusCreated, api.add(in))
	})
	mux.HandleFunc("GET /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		b, ok := api.books[id]
		if !ok {
			notFound(w, id)
			return
		}
		writeJSON(w, http.StatusOK, b)
	})
	mux.HandleFunc("PATCH /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		b, ok := api.books[id]
		if !ok {
			notFound(w, id)
			return
		}
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		for k, v := range in {
			b[k] = v
		}
		writeJSON(w, http.StatusOK, b)
	})
	mux.HandleFunc("DELETE /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if _, ok := api.books[id]; !ok {
			notFound(w, id)
			return
		}
		delete(api.books, id)
		for i, v := range api.order {
			if v == id {
				api.order = append(api.order[:i], api.order[i+1:]...)
				break
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		api.methods = append(api.methods, r.Method+" "+r.URL.Path)
		mux.ServeHTTP(w, r)
	})
}

type testEnv struct {
	api    *fakeBooksAPI
	apiSrv *httptest.Server
	app    *httptest.Server
}

func newTestEnv(t *testing.T, admin AdminAuth) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	api := newFakeBooksAPI()
	apiSrv := httptest.NewServer(api.handler())
	t.Cleanup(apiSrv.Close)

	pages, err := view.NewHTML()
	require.NoError(t, err)

	dealerList, err := dealers.Embedded()
	require.NoError(t, err)
	catalog, err := products.Embedded()
	require.NoError(t, err)

	client := clients.NewBooksClient(apiSrv.URL, clients.WithLogger(logger))
	srv := NewServer(
		books.NewHandler(books.NewAdmin(client, logger), pages, logger),
		dealers.NewHandler(dealers.NewService(dealerList, logger), pages, logger),
		products.NewHandler(products.NewService(catalog, logger), pages, logger),
		pages,
		admin,
		logger,
	)
	app := httptest.NewServer(srv.Handler())
	t.Cleanup(app.Close)

	return &testEnv{api: api, apiSrv: apiSrv, app: app}
}

func (e *testEnv) get(t *testing.T, path string) *goquery.Document {
	t.Helper()
	resp, err := http.Get(e.app.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func (e *testEnv) post(t *testing.T, path string, form url.Values) *goquery.Document {
	t.Helper()
	resp, err := http.PostForm(e.app.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func statusOf(doc *goquery.Document) (string, string) {
	sel := doc.Find("#global-status")
	kind, _ := sel.Attr("data-type")
	return strings.TrimSpace(sel.Text()), kind
}

func titles(doc *goquery.Document) []string {
	var out []string
	doc.Find("#books-table tbody td.book-title").Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}

func TestIndexAndHealth(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})

	doc := env.get(t, "/")
	assert.Equal(t, 3, doc.Find(".modules li").Length())
	assert.Equal(t, "/admin/books", doc.Find(".modules li a").First().AttrOr("href", ""))
	assert.Equal(t, "60", doc.Find("#site-header").AttrOr("data-compact-threshold", ""))

	resp, err := http.Get(env.app.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBooksAdminFlow(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})

	doc := env.get(t, "/admin/books")
	msg, kind := statusOf(doc)
	assert.Equal(t, "Loaded 2 books.", msg)
	assert.Equal(t, "success", kind)
	assert.Equal(t, []string{"Pride and Prejudice", "The Great Gatsby"}, titles(doc))
	assert.Equal(t, "true", doc.Find("td.book-read").First().AttrOr("data-read", ""))
	assert.Equal(t, "—", doc.Find("td.book-year").Last().Text())

	doc = env.post(t, "/admin/books/add", url.Values{"title": {"Emma"}, "author": {"Jane Austen"}, "year": {"1815"}})
	msg, kind = statusOf(doc)
	assert.Equal(t, "Book created successfully!", msg)
	assert.Equal(t, "success", kind)
	assert.Equal(t, []string{"Pride and Prejudice", "The Great Gatsby", "Emma"}, titles(doc))

	doc = env.post(t, "/admin/books/lookup", url.Values{"id": {"3"}})
	msg, _ = statusOf(doc)
	assert.Equal(t, "Loaded book 3.", msg)
	var looked map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.Find("#lookup-result").Text()), &looked))
	assert.Equal(t, "Emma", looked["title"])
	assert.Equal(t, float64(1815), looked["year"])
	assert.Equal(t, float64(3), looked["id"], "id keeps the type the server sent")

	doc = env.post(t, "/admin/books/lookup", url.Values{"id": {"1"}})
	lookup := doc.Find("#lookup-result").Text()
	assert.Contains(t, lookup, `"read": true`)
	assert.NotContains(t, lookup, "isRead")

	doc = env.post(t, "/admin/books/update", url.Values{"id": {"3"}, "isRead": {"on"}})
	msg, _ = statusOf(doc)
	assert.Equal(t, "Book 3 updated successfully.", msg)
	assert.Equal(t, "Yes", doc.Find("td.book-read").Last().Text())
}

func TestBooksAdminUpdateRequiresAField(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})

	doc := env.post(t, "/admin/books/update", url.Values{"id": {"1"}})
	msg, kind := statusOf(doc)
	assert.Equal(t, "Provide at least one field to update.", msg)
	assert.Equal(t, "error", kind)
	assert.NotContains(t, env.api.calls(), "PATCH /books/1")
}

func TestBooksAdminDeleteConfirmation(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})

	doc := env.post(t, "/admin/books/delete", url.Values{"id": {"2"}})
	panel := doc.Find("#confirm-delete")
	require.Equal(t, 1, panel.Length())
	assert.Contains(t, panel.Text(), "Are you sure you want to delete book 2?")
	assert.Equal(t, "2", panel.Find(`input[name="id"]`).AttrOr("value", ""))

	before := len(env.api.calls())
	doc = env.post(t, "/admin/books/delete", url.Values{"id": {"2"}, "confirm": {"no"}})
	msg, _ := statusOf(doc)
	assert.Equal(t, "Loaded 2 books.", msg)
	assert.Zero(t, doc.Find("#confirm-delete").Length())
	assert.Equal(t, []string{"GET /books"}, env.api.calls()[before:])

	doc = env.post(t, "/admin/books/delete", url.Values{"id": {"2"}, "confirm": {"yes"}})
	msg, kind := statusOf(doc)
	assert.Equal(t, "Book 2 deleted successfully.", msg)
	assert.Equal(t, "success", kind)
	assert.Equal(t, []string{"Pride and Prejudice"}, titles(doc))
}

func TestBooksAdminAPIErrors(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})

	doc := env.post(t, "/admin/books/lookup", url.Values{"id": {"99"}})
	msg, kind := statusOf(doc)
	assert.Equal(t, "Failed to fetch book: Book 99 not found", msg)
	assert.Equal(t, "error", kind)
	assert.Equal(t, "Error: Book 99 not found", doc.Find("#lookup-result").Text())

	doc = env.post(t, "/admin/books/delete", url.Values{"id": {"99"}, "confirm": {"yes"}})
	msg, _ = statusOf(doc)
	assert.Equal(t, "Failed to delete book: Book 99 not found", msg)
}

func TestBooksAdminAPIDown(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})
	env.apiSrv.Close()

	doc := env.get(t, "/admin/books")
	msg, kind := statusOf(doc)
	assert.True(t, strings.HasPrefix(msg, "Failed to load books: "), msg)
	assert.Equal(t, "error", kind)
	assert.Equal(t, []string{"No books found"}, titles(doc))
	assert.Empty(t, doc.Find("td.book-read").AttrOr("data-read", ""))
}

func TestDealerLocator(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})

	doc := env.get(t, "/dealers")
	assert.Equal(t, "Showing 3 dealers from our network.", doc.Find(".summary").Text())
	assert.Equal(t, 3, doc.Find(".card").Length())
	assert.True(t, doc.Find("nav a.active").Is(`[href="/dealers"]`))

	doc = env.get(t, "/dealers?q=+sfax+&service=parts")
	assert.Equal(t, `1 dealer matching "sfax" offering Parts.`, doc.Find(".summary").Text())
	assert.Equal(t, "sfax-sud", doc.Find(".card").AttrOr("data-id", ""))
	assert.Equal(t, "sfax", doc.Find(`input[name="q"]`).AttrOr("value", ""))
	assert.Equal(t, "parts", doc.Find(`select[name="service"] option[selected]`).AttrOr("value", ""))

	doc = env.get(t, "/dealers?q=atlantis")
	assert.Zero(t, doc.Find(".card").Length())
	assert.Equal(t, dealers.EmptyMessage, doc.Find(".empty-state").Text())
}

func TestProductCatalog(t *testing.T) {
	env := newTestEnv(t, AdminAuth{})

	doc := env.get(t, "/products")
	assert.Equal(t, "Showing 6 products from the catalog.", doc.Find(".summary").Text())
	assert.Equal(t, 6, doc.Find(".card").Length())

	doc = env.get(t, "/products?category=tech")
	assert.Equal(t, "2 products in Tech.", doc.Find(".summary").Text())
	assert.Equal(t, "149.90 TND", doc.Find(".card .card-meta").First().Text())

	doc = env.get(t, "/products?category=garden")
	assert.Equal(t, products.EmptyMessage, doc.Find(".empty-state").Text())
}

func TestAdminBasicAuth(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	env := newTestEnv(t, AdminAuth{Username: "admin", PasswordHash: hash})

	resp, err := http.Get(env.app.URL + "/admin/books")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, env.api.calls())

	req, err := http.NewRequest(http.MethodGet, env.app.URL+"/admin/books", nil)
	require.NoError(t, err)
	req.SetBasicAuth("admin", "s3cret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env.get(t, "/dealers")
}
