// internal/books/page.go
package books

import (
	"strconv"

	"storefront/internal/status"
)

const placeholder = "—"

// Row is one line of the books table.
type Row struct {
	ID          string
	Title       string
	Author      string
	Year        string
	Read        string
	IsRead      bool
	Placeholder bool
}

// ConfirmPrompt asks the user to approve deleting a book.
type ConfirmPrompt struct {
	ID     string
	Prompt string
}

// PageData is the content of the books admin page.
type PageData struct {
	Status  status.Status
	Rows    []Row
	Lookup  string
	Confirm *ConfirmPrompt
}

// Rows builds the table rows for books. An empty list yields a single
// "No books found" row.
func Rows(books []Book) []Row {
	if len(books) == 0 {
		return []Row{{
			ID:          placeholder,
			Title:       "No books found",
			Author:      placeholder,
			Year:        placeholder,
			Read:        placeholder,
			Placeholder: true,
		}}
	}

	rows := make([]Row, 0, len(books))
	for _, b := range books {
		row := Row{
			ID:     orPlaceholder(b.ID),
			Title:  orPlaceholder(b.Title),
			Author: orPlaceholder(b.Author),
			Year:   placeholder,
			Read:   "No",
			IsRead: b.IsRead,
		}
		if b.Year != nil {
			row.Year = strconv.Itoa(*b.Year)
		}
		if b.IsRead {
			row.Read = "Yes"
		}
		rows = append(rows, row)
	}
	return rows
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
