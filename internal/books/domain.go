// internal/books/domain.go
package books

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// ErrEmptyUpdate is returned, before any request is made, when an update
// carries no field.
var ErrEmptyUpdate = errors.New("provide at least one field to update")

// ValidationError reports form input that was rejected locally.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err was raised by local validation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.Is(err, ErrEmptyUpdate) || errors.As(err, &v)
}

// Book is a transient copy of a book owned by the remote service.
type Book struct {
	ID     string
	Title  string
	Author string
	Year   *int
	IsRead bool
}

type bookJSON struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   *int   `json:"year,omitempty"`
	IsRead bool   `json:"isRead"`
}

// MarshalJSON writes the canonical shape, always using isRead.
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookJSON(b))
}

// UnmarshalJSON accepts ids, titles, authors and years as numbers or strings. The read state is
// taken from the first of isRead, read and completed that is present and not
// null, and is evaluated for truthiness.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		Title     json.RawMessage `json:"title"`
		Author    json.RawMessage `json:"author"`
		Year      json.RawMessage `json:"year"`
		IsRead    json.RawMessage `json:"isRead"`
		Read      json.RawMessage `json:"read"`
		Completed json.RawMessage `json:"completed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Book{
		ID:     scalarText(raw.ID),
		Title:  scalarText(raw.Title),
		Author: scalarText(raw.Author),
		Year:   yearValue(raw.Year),
	}
	for _, candidate := range []json.RawMessage{raw.IsRead, raw.Read, raw.Completed} {
		if v, ok := truthy(candidate); ok {
			b.IsRead = v
			break
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// scalarText renders a JSON string or number as text.
func scalarText(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return strings.TrimSpace(string(raw))
}

func yearValue(raw json.RawMessage) *int {
	text := scalarText(raw)
	if text == "" {
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) {
		return nil
	}
	year := int(f)
	return &year
}

// truthy evaluates a JSON value the way a loose boolean check would. The
// second result is false when the value is absent or null.
func truthy(raw json.RawMessage) (bool, bool) {
	if isNull(raw) {
		return false, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case float64:
		return t != 0, true
	case string:
		return t != "", true
	default:
		return true, true
	}
}

// CreateBook is the payload for POST /books.
type CreateBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   *int   `json:"year,omitempty"`
	IsRead bool   `json:"isRead"`
}

// UpdateBook is the payload for PATCH /books/{id}; nil fields are left out.
type UpdateBook struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Year   *int    `json:"year,omitempty"`
	IsRead *bool   `json:"isRead,omitempty"`
}

// IsEmpty reports whether u would change nothing.
func (u UpdateBook) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.Year == nil && u.IsRead == nil
}
