package animals

import (
	"context"
	"errors"
)

// ErrNoData lo devuelve un Persister cuando todavía no hay nada guardado
// (p.ej. el archivo no existe). El Store lo trata como colección vacía sin warning.
var ErrNoData = errors.New("no persisted data")

// Persister guarda y recupera la colección completa.
// No hay escrituras parciales: SaveAll siempre reescribe todo.
type Persister interface {
	LoadAll(ctx context.Context) ([]Animal, error)
	SaveAll(ctx context.Context, items []Animal) error
}
