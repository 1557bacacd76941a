package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animals-safety/internal/domain/animals"
)

var ErrIDRequired = errors.New("animal id required")

// animalRepo mantiene los registros en orden de inserción.
// El mutex existe porque el server HTTP agrega desde varias goroutines.
type animalRepo struct {
	mu    sync.RWMutex
	items []animals.Animal
	byID  map[string]int // id -> posición en items
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]int),
	}
}

func (r *animalRepo) Append(ctx context.Context, a animals.Animal) error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Sin dedup: el id lo genera el validador y es único.
	r.byID[a.ID] = len(r.items)
	r.items = append(r.items, a)
	return nil
}

func (r *animalRepo) All(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return r.items[i], nil
}

func (r *animalRepo) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
