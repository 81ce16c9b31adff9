// internal/view/view.go
package view

import (
	"io"
)

// Card is one rendered item.
type Card struct {
	ID       string
	Title    string
	Subtitle string
	Lines    []string
	Tags     []string
	Meta     string
}

// Results is the view tree for a search: either an empty-state message or a
// summary line followed by one card per item.
type Results struct {
	Summary string
	Empty   string
	Cards   []Card
}

// IsEmpty reports whether the empty-state message should be shown.
func (r Results) IsEmpty() bool {
	return len(r.Cards) == 0
}

// Renderer turns a view tree into output. Every call writes the complete tree.
type Renderer interface {
	Render(w io.Writer, r Results) error
}

// Option is a choice in a filter select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// SearchPage is the content of the dealer and product pages.
type SearchPage struct {
	Heading     string
	Action      string
	Query       string
	Placeholder string
	FilterName  string
	AllLabel    string
	Options     []Option
	Results     Results
}

// Page wraps page content with the shared layout.
type Page struct {
	Title            string
	Active           string
	CompactThreshold int
	Content          any
}

// PageRenderer renders a named page inside the layout.
type PageRenderer interface {
	RenderPage(w io.Writer, name string, page Page) error
}

// Link is an entry on the index page.
type Link struct {
	Href        string
	Label       string
	Description string
}
