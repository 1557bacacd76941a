package animals

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("animal not found")

// Repository es el store de registros: orden de inserción, solo append.
type Repository interface {
	Append(ctx context.Context, a Animal) error
	All(ctx context.Context) ([]Animal, error)
	GetByID(ctx context.Context, id string) (Animal, error)
	Len(ctx context.Context) (int, error)
}
