package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/auth"
)

type recordedCalls struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordedCalls) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordedCalls) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func newBooksAPI(t *testing.T) (*httptest.Server, *recordedCalls) {
	t.Helper()
	rec := &recordedCalls{}
	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "title": "Pride and Prejudice", "author": "Jane Austen", "year": 1813, "isRead": true},
			{"id": 2, "title": "The Great Gatsby", "author": "F. Scott Fitzgerald"},
		})
	})
	mux.HandleFunc("POST /books", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 3})
	})
	mux.HandleFunc("GET /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Book " + r.PathValue("id") + " not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "title": "Pride and Prejudice"})
	})
	mux.HandleFunc("DELETE /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.Method + " " + r.URL.Path)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	bookTitle, bookAuthor, bookYear, bookRead = "", "", "", ""
	bookReadOn, assumeYes = false, false
	dealerService, productCategory = "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBooksList(t *testing.T) {
	api, _ := newBooksAPI(t)

	out, err := execute(t, "books", "list", "--books-url", api.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Pride and Prejudice")
	assert.Contains(t, out, "F. Scott Fitzgerald")
	assert.Contains(t, out, "Loaded 2 books.")
	assert.Regexp(t, `1\s+Pride and Prejudice\s+Jane Austen\s+1813\s+Yes`, out)
}

func TestBooksGet(t *testing.T) {
	api, _ := newBooksAPI(t)

	out, err := execute(t, "books", "get", "1", "--books-url", api.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Pride and Prejudice"`)

	_, err = execute(t, "books", "get", "99", "--books-url", api.URL)
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch book: Book 99 not found", err.Error())
}

func TestBooksAdd(t *testing.T) {
	api, calls := newBooksAPI(t)

	out, err := execute(t, "books", "add", "--title", "Emma", "--author", "Jane Austen", "--books-url", api.URL)
	require.NoError(t, err)
	assert.Equal(t, "Book created successfully!\n", out)
	assert.Equal(t, []string{"POST /books"}, calls.list())

	_, err = execute(t, "books", "add", "--title", "Emma", "--books-url", api.URL)
	require.Error(t, err)
	assert.Equal(t, "Failed to add book: title and author are required", err.Error())
	assert.Len(t, calls.list(), 1)
}

func TestBooksUpdateWithoutFields(t *testing.T) {
	api, calls := newBooksAPI(t)

	_, err := execute(t, "books", "update", "1", "--books-url", api.URL)
	require.Error(t, err)
	assert.Equal(t, "Provide at least one field to update.", err.Error())
	assert.Empty(t, calls.list())
}

func TestBooksDelete(t *testing.T) {
	api, calls := newBooksAPI(t)

	out, err := execute(t, "books", "delete", "2", "--yes", "--books-url", api.URL)
	require.NoError(t, err)
	assert.Equal(t, "Book 2 deleted successfully.\n", out)
	assert.Equal(t, []string{"DELETE /books/2"}, calls.list())
}

func TestDealersSearch(t *testing.T) {
	out, err := execute(t, "dealers", "search", "sfax", "--service", "parts")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `1 dealer matching "sfax" offering Parts.`), out)
	assert.Contains(t, out, "* Sud Auto Services (Sfax)")

	out, err = execute(t, "dealers", "search", "atlantis")
	require.NoError(t, err)
	assert.Contains(t, out, "No dealers match your search.")
}

func TestProductsSearch(t *testing.T) {
	out, err := execute(t, "products", "search", "--category", "tech")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2 products in Tech."), out)
	assert.Contains(t, out, "149.90 TND")
}

func TestHashPassword(t *testing.T) {
	out, err := execute(t, "hash-password", "s3cret")
	require.NoError(t, err)

	ok, err := auth.VerifyPassword("s3cret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, ok)
}
