// internal/books/handler.go
package books

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/view"
)

type Handler struct {
	admin  *Admin
	pages  view.PageRenderer
	logger *zap.Logger
}

func NewHandler(admin *Admin, pages view.PageRenderer, logger *zap.Logger) *Handler {
	return &Handler{admin: admin, pages: pages, logger: logger}
}

// HandleIndex lists the books.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, PageData{})
}

func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	lookup, st := h.admin.Lookup(r.Context(), r.PostForm.Get("id"))
	h.render(w, r, PageData{Status: st, Lookup: lookup})
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	st := h.admin.Add(r.Context(), AddFormFrom(r.PostForm))
	h.render(w, r, PageData{Status: st})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	st := h.admin.Update(r.Context(), UpdateFormFrom(r.PostForm))
	h.render(w, r, PageData{Status: st})
}

// HandleDelete asks for confirmation first; the request to the API is only
// sent once the confirmation form answers yes.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	id := strings.TrimSpace(r.PostForm.Get("id"))
	answer := r.PostForm.Get("confirm")

	if id != "" && answer == "" {
		h.render(w, r, PageData{Confirm: &ConfirmPrompt{ID: id, Prompt: DeletePrompt(id)}})
		return
	}

	// A declined answer sends no DELETE and yields a zero status. The GET
	// /books that follows only rebuilds the page being served.
	st := h.admin.Delete(r.Context(), id, Answered(answer == "yes"))
	h.render(w, r, PageData{Status: st})
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// render re-lists the books and writes the page. The status of the action, if
// any, takes precedence over the list status.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, data PageData) {
	books, listStatus := h.admin.Load(r.Context())
	data.Rows = Rows(books)
	data.Status = data.Status.Or(listStatus)

	page := view.Page{Title: "Books admin", Active: "books", Content: data}
	if err := view.WritePage(w, h.pages, http.StatusOK, "books", page); err != nil {
		h.logger.Error("render books page", zap.Error(err))
	}
}
