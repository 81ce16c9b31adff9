// internal/books/confirm.go
package books

import (
	"context"
	"fmt"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Answered is a Confirmer whose answer is already known, such as a submitted
// confirmation form or a --yes flag.
type Answered bool

func (a Answered) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

// DeletePrompt is the question asked before deleting a book.
func DeletePrompt(id string) string {
	return fmt.Sprintf("Are you sure you want to delete book %s?", id)
}
