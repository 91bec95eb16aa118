package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"shelter-pet-tracker/internal/domain/animals"

	"github.com/google/uuid"
)

// DefaultPath es el archivo relativo que usaba el programa de escritorio.
const DefaultPath = "animals.json"

// Store persiste la colección como un único arreglo JSON indentado.
type Store struct {
	path string
}

// legacyNamespace agrupa los ids derivados de registros guardados sin id.
var legacyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("shelter-pet-tracker/animals"))

var _ animals.Persister = (*Store)(nil)

func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// LoadAll lee el archivo completo. Si no existe devuelve animals.ErrNoData.
// Registros sin id (archivos previos) reciben uno derivado de su posición y
// contenido: el mismo archivo produce siempre los mismos ids hasta que se reescribe.
func (s *Store) LoadAll(ctx context.Context) ([]animals.Animal, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, animals.ErrNoData
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	out := make([]animals.Animal, 0, len(raws))
	for i, raw := range raws {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("decode %s: record %d: %w", s.path, i, err)
		}
		a := r.toAnimal()
		if a.ID == "" {
			a.ID = legacyID(i, raw)
		}
		out = append(out, a)
	}
	return out, nil
}

func legacyID(pos int, raw json.RawMessage) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\x00", pos)
	if err := json.Compact(&buf, raw); err != nil {
		buf.Write(raw)
	}
	return uuid.NewSHA1(legacyNamespace, buf.Bytes()).String()
}

// SaveAll escribe a un archivo temporal en el mismo directorio y lo renombra
// sobre el destino; un fallo a mitad de escritura deja intacto el archivo anterior.
func (s *Store) SaveAll(ctx context.Context, items []animals.Animal) error {
	recs := make([]record, 0, len(items))
	for _, a := range items {
		recs = append(recs, fromAnimal(a))
	}

	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode animals: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	committed = true
	return nil
}
