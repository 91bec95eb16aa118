package memory

import (
	"context"
	"sync"

	"shelter-pet-tracker/internal/domain/animals"
)

// animalRepo guarda la última colección escrita, sin tocar disco.
// Sirve para dev y para levantar el router en tests.
type animalRepo struct {
	mu    sync.RWMutex
	saved []animals.Animal
	wrote bool
}

func NewAnimalRepo(seed ...animals.Animal) animals.Persister {
	r := &animalRepo{}
	if len(seed) > 0 {
		r.saved = append([]animals.Animal(nil), seed...)
		r.wrote = true
	}
	return r
}

func (r *animalRepo) LoadAll(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.wrote {
		return nil, animals.ErrNoData
	}
	out := make([]animals.Animal, len(r.saved))
	copy(out, r.saved)
	return out, nil
}

func (r *animalRepo) SaveAll(ctx context.Context, items []animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saved = append([]animals.Animal(nil), items...)
	r.wrote = true
	return nil
}
