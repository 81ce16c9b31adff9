// internal/books/service.go
package books

import (
	"context"
	"encoding/json"
)

// Service defines the operations of the remote books resource.
type Service interface {
	List(ctx context.Context) ([]Book, error)
	// Get also returns the response body as the server sent it.
	Get(ctx context.Context, id string) (*Book, json.RawMessage, error)
	Create(ctx context.Context, in CreateBook) (*Book, error)
	Update(ctx context.Context, id string, in UpdateBook) (*Book, error)
	Delete(ctx context.Context, id string) error
}
