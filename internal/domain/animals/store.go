package animals

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"shelter-pet-tracker/internal/platform/logger"
)

// Store es dueño exclusivo de la colección en memoria y de su sincronización
// con el Persister. Las mutaciones no persisten solas: el Service llama a Save.
type Store struct {
	mu      sync.RWMutex
	items   []Animal
	backend Persister
	log     logger.Logger

	loadWarning error
}

func NewStore(backend Persister, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{
		backend: backend,
		log:     log,
	}
}

// Load reemplaza la colección con lo persistido.
// Archivo ausente o corrupto = empezar vacío; nunca devuelve error.
// La corrupción queda registrada en LoadWarning y en el log.
func (s *Store) Load(ctx context.Context) []Animal {
	items, err := s.backend.LoadAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadWarning = nil
	switch {
	case err == nil:
	case errors.Is(err, ErrNoData):
		items = nil
	default:
		s.loadWarning = err
		s.log.Warn("could not load animals, starting empty", map[string]any{"error": err.Error()})
		items = nil
	}

	s.items = append([]Animal(nil), items...)
	return s.snapshotLocked()
}

// LoadWarning devuelve el error que hizo descartar los datos en el último Load, o nil.
func (s *Store) LoadWarning() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadWarning
}

// Save reescribe la colección completa en el backend.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	items := s.snapshotLocked()
	s.mu.RUnlock()

	if err := s.backend.SaveAll(ctx, items); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// All devuelve una copia en orden de inserción.
func (s *Store) All() []Animal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Append(a Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, a)
}

// IndexOf busca por ID; -1 si no existe.
func (s *Store) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfLocked(id)
}

func (s *Store) At(i int) (Animal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.items) {
		return Animal{}, false
	}
	return s.items[i], true
}

// RemoveAt saca el elemento i y lo devuelve, preservando el orden del resto.
func (s *Store) RemoveAt(i int) (Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return Animal{}, ErrNotFound
	}
	removed := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return removed, nil
}

// UpdateAt reemplaza el elemento i y devuelve el valor anterior.
func (s *Store) UpdateAt(i int, a Animal) (Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return Animal{}, ErrNotFound
	}
	prev := s.items[i]
	s.items[i] = a
	return prev, nil
}

// Insert pone a en la posición i (se usa para deshacer un RemoveAt).
func (s *Store) Insert(i int, a Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 {
		i = 0
	}
	if i >= len(s.items) {
		s.items = append(s.items, a)
		return
	}
	s.items = append(s.items[:i], append([]Animal{a}, s.items[i:]...)...)
}

// truncate descarta todo a partir de n (deshace un Append).
func (s *Store) truncate(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= 0 && n < len(s.items) {
		s.items = s.items[:n]
	}
}

func (s *Store) indexOfLocked(id string) int {
	for i, a := range s.items {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []Animal {
	out := make([]Animal, len(s.items))
	copy(out, s.items)
	return out
}
