// internal/books/admin.go
package books

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"storefront/internal/status"
)

// MessageError is implemented by errors that carry a message meant for users,
// such as the one returned by the books API.
type MessageError interface {
	error
	UserMessage() string
}

// Admin runs the books admin actions and turns their outcome into a status.
// It never returns errors: every failure ends as an error status.
type Admin struct {
	service Service
	logger  *zap.Logger
}

// NewAdmin creates a books admin controller.
func NewAdmin(service Service, logger *zap.Logger) *Admin {
	return &Admin{service: service, logger: logger}
}

// Load lists every book. On failure the list is empty.
func (a *Admin) Load(ctx context.Context) ([]Book, status.Status) {
	books, err := a.service.List(ctx)
	if err != nil {
		a.logger.Error("Failed to load books", zap.Error(err))
		return nil, status.Error("Failed to load books: %s", message(err))
	}
	suffix := "s"
	if len(books) == 1 {
		suffix = ""
	}
	return books, status.Success("Loaded %d book%s.", len(books), suffix)
}

// Lookup fetches one book and returns the server's JSON, indented. A blank id
// does nothing.
func (a *Admin) Lookup(ctx context.Context, id string) (string, status.Status) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", status.Status{}
	}

	_, raw, err := a.service.Get(ctx, id)
	if err != nil {
		a.logger.Error("Failed to fetch book", zap.String("id", id), zap.Error(err))
		msg := message(err)
		return "Error: " + msg, status.Error("Failed to fetch book: %s", msg)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		a.logger.Error("Failed to format book", zap.String("id", id), zap.Error(err))
		return "Error: " + err.Error(), status.Error("Failed to fetch book: %s", err.Error())
	}
	return strings.TrimSpace(out.String()), status.Success("Loaded book %s.", id)
}

// Add creates a book from the add form.
func (a *Admin) Add(ctx context.Context, form AddForm) status.Status {
	in, err := form.Payload()
	if err == nil {
		_, err = a.service.Create(ctx, in)
	}
	if err != nil {
		a.logger.Error("Failed to add book", zap.Error(err))
		return status.Error("Failed to add book: %s", message(err))
	}
	return status.Success("Book created successfully!")
}

// Update applies the non-blank fields of the update form. A blank id does
// nothing; an update with no field is rejected without contacting the API.
func (a *Admin) Update(ctx context.Context, form UpdateForm) status.Status {
	if form.ID == "" {
		return status.Status{}
	}

	in, err := form.Payload()
	if err == nil {
		_, err = a.service.Update(ctx, form.ID, in)
	}
	switch {
	case err == nil:
		return status.Success("Book %s updated successfully.", form.ID)
	case errors.Is(err, ErrEmptyUpdate):
		return status.Error("Provide at least one field to update.")
	default:
		a.logger.Error("Failed to update book", zap.String("id", form.ID), zap.Error(err))
		return status.Error("Failed to update book: %s", message(err))
	}
}

// Delete removes a book once confirm approves. A blank id or a declined
// confirmation sends nothing and leaves the status unchanged.
func (a *Admin) Delete(ctx context.Context, id string, confirm Confirmer) status.Status {
	id = strings.TrimSpace(id)
	if id == "" {
		return status.Status{}
	}

	ok, err := confirm.Confirm(ctx, DeletePrompt(id))
	if err != nil {
		a.logger.Error("Failed to confirm delete", zap.String("id", id), zap.Error(err))
		return status.Error("Failed to delete book: %s", message(err))
	}
	if !ok {
		a.logger.Debug("Delete declined", zap.String("id", id))
		return status.Status{}
	}

	if err := a.service.Delete(ctx, id); err != nil {
		a.logger.Error("Failed to delete book", zap.String("id", id), zap.Error(err))
		return status.Error("Failed to delete book: %s", message(err))
	}
	return status.Success("Book %s deleted successfully.", id)
}

func message(err error) string {
	var me MessageError
	if errors.As(err, &me) {
		return status.PlainText(me.UserMessage())
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
