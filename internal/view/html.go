// internal/view/html.go
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/go-faster/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultCompactThreshold is the scroll offset, in pixels, past which the
// header switches to its compact state.
const DefaultCompactThreshold = 60

var pageNames = []string{"index", "search", "books"}

// HTML renders results and full pages with html/template.
type HTML struct {
	base             *template.Template
	pages            map[string]*template.Template
	compactThreshold int
}

// HTMLOption configures the HTML renderer.
type HTMLOption func(*HTML)

// WithCompactThreshold sets the header compaction threshold used by the layout.
func WithCompactThreshold(px int) HTMLOption {
	return func(h *HTML) {
		if px > 0 {
			h.compactThreshold = px
		}
	}
}

// NewHTML parses the embedded templates.
func NewHTML(opts ...HTMLOption) (*HTML, error) {
	h := &HTML{
		pages:            make(map[string]*template.Template, len(pageNames)),
		compactThreshold: DefaultCompactThreshold,
	}
	for _, opt := range opts {
		opt(h)
	}

	base, err := template.New("base").ParseFS(templateFS, "templates/layout.html", "templates/results.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse base templates")
	}

	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "clone base for %s", name)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, errors.Wrapf(err, "parse page %s", name)
		}
		h.pages[name] = t
	}
	h.base = base
	return h, nil
}

// Render writes the results fragment.
func (h *HTML) Render(w io.Writer, r Results) error {
	return h.base.ExecuteTemplate(w, "results", r)
}

// RenderPage writes a complete document for the named page.
func (h *HTML) RenderPage(w io.Writer, name string, page Page) error {
	t, ok := h.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}
	if page.CompactThreshold <= 0 {
		page.CompactThreshold = h.compactThreshold
	}
	return t.ExecuteTemplate(w, "layout", page)
}

// WritePage renders into a buffer first so a template error never leaves a
// half-written response.
func WritePage(w http.ResponseWriter, pr PageRenderer, code int, name string, page Page) error {
	var buf bytes.Buffer
	if err := pr.RenderPage(&buf, name, page); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, err := buf.WriteTo(w)
	return err
}
