package catalog

import (
	"context"
	"errors"
)

// ErrNotFound indicates the product does not exist in any source.
var ErrNotFound = errors.New("product not found")

// Repo defines persistence operations for database-backed products.
type Repo interface {
	// ListActive returns all active, visible products.
	ListActive(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, productID string) (Product, error)
	Create(ctx context.Context, row Row) error
	Delete(ctx context.Context, productID string) error
}
