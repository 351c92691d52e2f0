// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"time"

	"github.com/gocommerce/catalog/internal/domain"
)

// Filter narrows a product listing. Nil fields do not filter.
type Filter struct {
	// Category matches exactly.
	Category *string
	// IsActive matches exactly, false included.
	IsActive *bool
	// Search is a case-insensitive substring of the name or the description.
	Search *string
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., document, relational).
// Every method is atomic at single record granularity; name uniqueness among active products is enforced by the store.
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier, active or not.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*domain.Record, error)

	// FindActiveByName retrieves the active product with exactly this name, ignoring excludeID when it is not empty.
	// Returns ErrProductNotFound if there is none.
	FindActiveByName(ctx context.Context, name, excludeID string) (*domain.Record, error)

	// Find returns the products matching the filter, newest first.
	// Returns an empty slice if no products match.
	Find(ctx context.Context, filter Filter) ([]domain.Record, error)

	// Insert adds a new product.
	// Returns ErrDuplicateName if an active product already uses the name.
	Insert(ctx context.Context, record domain.Record) error

	// Update replaces the mutable fields of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID, ErrDuplicateName on a name clash.
	Update(ctx context.Context, record domain.Record) error

	// Deactivate flips an active product to inactive and stores updatedAt.
	// Returns ErrAlreadyInactive if no active product exists with the given ID.
	Deactivate(ctx context.Context, id string, updatedAt time.Time) error

	// DeleteAll physically removes every product and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
