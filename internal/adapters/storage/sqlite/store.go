package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shelter-pet-tracker/internal/domain/animals"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// DefaultPath es el archivo usado cuando storage.backend=sqlite y no se indica ruta.
const DefaultPath = "animals.db"

// Store guarda la colección en una tabla SQLite local.
// Cada SaveAll reemplaza la tabla completa dentro de una transacción,
// igual que el archivo JSON se reescribe entero.
type Store struct {
	db   *sql.DB
	path string

	mu          sync.Mutex
	schemaReady bool
}

var _ animals.Persister = (*Store)(nil)

// Open prepara el handle sin tocar el archivo; la tabla se crea en el primer
// LoadAll o SaveAll. Un archivo corrupto aparece como error de LoadAll.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// un solo proceso y un solo actor: una conexión alcanza
	db.SetMaxOpenConns(1)
	return &Store{db: db, path: path}, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.schemaReady {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS animals (
		position     INTEGER PRIMARY KEY,
		id           TEXT NOT NULL UNIQUE,
		type         TEXT NOT NULL,
		name         TEXT NOT NULL,
		gender       TEXT NOT NULL,
		breed        TEXT NOT NULL,
		weight       TEXT NOT NULL,
		dob          TEXT NOT NULL,
		microchip    TEXT NOT NULL,
		health_notes TEXT NOT NULL,
		description  TEXT NOT NULL,
		image_path   TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create animals table in %s: %w", s.path, err)
	}
	s.schemaReady = true
	return nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error { return s.db.Close() }

// LoadAll devuelve las filas en orden de posición. Tabla vacía = animals.ErrNoData.
func (s *Store) LoadAll(ctx context.Context) ([]animals.Animal, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, name, gender, breed, weight, dob,
		       microchip, health_notes, description, image_path
		FROM animals
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select animals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var (
			a    animals.Animal
			kind string
			sex  string
		)
		if err := rows.Scan(
			&a.ID,
			&kind,
			&a.Name,
			&sex,
			&a.Breed,
			&a.Weight,
			&a.DOB,
			&a.Microchip,
			&a.HealthNotes,
			&a.Description,
			&a.ImagePath,
		); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		a.Kind = animals.ParseKind(kind)
		a.Gender = animals.Gender(sex)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate animals: %w", err)
	}
	if len(out) == 0 {
		return nil, animals.ErrNoData
	}
	return out, nil
}

func (s *Store) SaveAll(ctx context.Context, items []animals.Animal) (retErr error) {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM animals`); err != nil {
		return fmt.Errorf("clear animals: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO animals (
			position, id, type, name, gender, breed, weight, dob,
			microchip, health_notes, description, image_path
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, a := range items {
		if _, err := stmt.ExecContext(ctx,
			i,
			a.ID,
			a.Kind.String(),
			a.Name,
			string(a.Gender),
			a.Breed,
			a.Weight,
			a.DOB,
			a.Microchip,
			a.HealthNotes,
			a.Description,
			a.ImagePath,
		); err != nil {
			return fmt.Errorf("insert animal %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
