// internal/books/forms.go
package books

import (
	"net/url"
	"strconv"
	"strings"
)

// AddForm holds the raw values of the add-book form.
type AddForm struct {
	Title  string
	Author string
	Year   string
	IsRead bool
}

// UpdateForm holds the raw values of the update-book form. IsRead is empty to
// leave the read state unchanged.
type UpdateForm struct {
	ID     string
	Title  string
	Author string
	Year   string
	IsRead string
}

func AddFormFrom(v url.Values) AddForm {
	return AddForm{
		Title:  v.Get("title"),
		Author: v.Get("author"),
		Year:   v.Get("year"),
		IsRead: v.Get("isRead") == "on",
	}
}

func UpdateFormFrom(v url.Values) UpdateForm {
	return UpdateForm{
		ID:     strings.TrimSpace(v.Get("id")),
		Title:  v.Get("title"),
		Author: v.Get("author"),
		Year:   v.Get("year"),
		IsRead: v.Get("isRead"),
	}
}

// Payload validates the form and builds the create request.
func (f AddForm) Payload() (CreateBook, error) {
	in := CreateBook{
		Title:  strings.TrimSpace(f.Title),
		Author: strings.TrimSpace(f.Author),
		IsRead: f.IsRead,
	}
	if in.Title == "" || in.Author == "" {
		return CreateBook{}, &ValidationError{Field: "title", Message: "title and author are required"}
	}
	year, err := parseYear(f.Year)
	if err != nil {
		return CreateBook{}, err
	}
	in.Year = year
	return in, nil
}

// Payload builds the partial update from the non-blank fields.
func (f UpdateForm) Payload() (UpdateBook, error) {
	var in UpdateBook
	if title := strings.TrimSpace(f.Title); title != "" {
		in.Title = &title
	}
	if author := strings.TrimSpace(f.Author); author != "" {
		in.Author = &author
	}
	year, err := parseYear(f.Year)
	if err != nil {
		return UpdateBook{}, err
	}
	in.Year = year

	switch strings.ToLower(strings.TrimSpace(f.IsRead)) {
	case "":
	case "on", "true", "yes", "1":
		read := true
		in.IsRead = &read
	case "off", "false", "no", "0":
		read := false
		in.IsRead = &read
	default:
		return UpdateBook{}, &ValidationError{Field: "isRead", Message: "read state must be yes or no"}
	}
	return in, nil
}

func parseYear(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ValidationError{Field: "year", Message: "year must be a whole number"}
	}
	return &year, nil
}
