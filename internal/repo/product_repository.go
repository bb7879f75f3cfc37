package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ErrNotFound is returned when the requested entity is not stored.
var ErrNotFound = errors.New("entity not found")

// Repository defines the storage operations the controllers depend on.
// Any storage engine exposing these five operations satisfies it.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	// GetByID returns ErrNotFound when no entity has the given id.
	GetByID(ctx context.Context, id int) (T, error)
	// Create stores the entity and returns it with its assigned id.
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, entity T) error
}

// ProductRepository is the repository over the Product entity.
type ProductRepository = Repository[models.Product]
