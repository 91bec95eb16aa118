package animals

import (
	"context"
	"errors"
	"strings"
	"sync"

	"shelter-pet-tracker/internal/platform/logger"
	"shelter-pet-tracker/internal/ports/metrics"

	"github.com/google/uuid"
)

const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeStorage  = "storage_error"
)

type Service struct {
	// writeMu serializa mutación + guardado + rollback.
	writeMu sync.Mutex

	store *Store
	log   logger.Logger
	rec   metrics.Recorder
	newID func() string
}

type Options struct {
	Logger   logger.Logger
	Recorder metrics.Recorder
	NewID    func() string
}

func NewService(store *Store, opts Options) *Service {
	s := &Service{
		store: store,
		log:   opts.Logger,
		rec:   opts.Recorder,
		newID: opts.NewID,
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	if s.rec == nil {
		s.rec = metrics.Nop{}
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.rec.SetRecordCount(store.Len())
	return s
}

// Draft es el formulario de ingreso tal como lo llena el usuario,
// incluida la imagen elegida antes de guardar.
type Draft struct {
	Kind        string
	Name        string
	Gender      string
	Breed       string
	Weight      string
	DOB         string
	Microchip   string
	HealthNotes string
	Description string
	ImagePath   string
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
type UpdateInput struct {
	Kind        *string
	Name        *string
	Gender      *string
	Breed       *string
	Weight      *string
	DOB         *string
	Microchip   *string
	HealthNotes *string
	Description *string
	ImagePath   *string
}

func (s *Service) Create(ctx context.Context, in Draft) (Animal, error) {
	d := normalize(in)
	if err := Validate(d); err != nil {
		s.observe("create", err)
		return Animal{}, err
	}

	a := fromDraft(s.newID(), d)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	n := s.store.Len()
	s.store.Append(a)
	if err := s.store.Save(ctx); err != nil {
		s.store.truncate(n)
		s.log.Error("create animal: save failed", map[string]any{"id": a.ID, "error": err.Error()})
		s.observe("create", err)
		return Animal{}, err
	}

	s.log.Info("animal created", map[string]any{"id": a.ID, "name": a.Name, "kind": a.Kind.String()})
	s.observe("create", nil)
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	idx := s.store.IndexOf(strings.TrimSpace(id))
	current, ok := s.store.At(idx)
	if !ok {
		s.observe("update", ErrNotFound)
		return Animal{}, ErrNotFound
	}

	d := toDraft(current)
	applyUpdate(&d, in)
	d = normalize(d)
	if err := Validate(d); err != nil {
		s.observe("update", err)
		return Animal{}, err
	}

	updated := fromDraft(current.ID, d)
	prev, err := s.store.UpdateAt(idx, updated)
	if err != nil {
		s.observe("update", err)
		return Animal{}, err
	}
	if err := s.store.Save(ctx); err != nil {
		_, _ = s.store.UpdateAt(idx, prev)
		s.log.Error("update animal: save failed", map[string]any{"id": current.ID, "error": err.Error()})
		s.observe("update", err)
		return Animal{}, err
	}

	s.log.Info("animal updated", map[string]any{"id": updated.ID, "name": updated.Name})
	s.observe("update", nil)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	idx := s.store.IndexOf(strings.TrimSpace(id))
	removed, err := s.store.RemoveAt(idx)
	if err != nil {
		s.observe("delete", err)
		return err
	}
	if err := s.store.Save(ctx); err != nil {
		s.store.Insert(idx, removed)
		s.log.Error("delete animal: save failed", map[string]any{"id": removed.ID, "error": err.Error()})
		s.observe("delete", err)
		return err
	}

	s.log.Info("animal deleted", map[string]any{"id": removed.ID, "name": removed.Name})
	s.observe("delete", nil)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := s.store.At(s.store.IndexOf(strings.TrimSpace(id)))
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

// Resolve acepta un ID o un nombre. El nombre solo sirve si identifica
// a un único animal (sin distinguir mayúsculas).
func (s *Service) Resolve(ctx context.Context, key string) (Animal, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Animal{}, ErrNotFound
	}
	if a, err := s.GetByID(ctx, key); err == nil {
		return a, nil
	}

	var (
		found Animal
		count int
	)
	for _, a := range s.store.All() {
		if strings.EqualFold(a.Name, key) {
			found = a
			count++
		}
	}
	switch count {
	case 0:
		return Animal{}, ErrNotFound
	case 1:
		return found, nil
	default:
		return Animal{}, ErrAmbiguous
	}
}

func (s *Service) ListAll(ctx context.Context) []Animal {
	return s.store.All()
}

func (s *Service) Search(ctx context.Context, c Criteria) []Animal {
	return Search(s.store.All(), c)
}

func (s *Service) observe(op string, err error) {
	outcome := OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidInput):
		outcome = OutcomeInvalid
	case errors.Is(err, ErrNotFound):
		outcome = OutcomeNotFound
	default:
		outcome = OutcomeStorage
	}
	s.rec.ObserveOperation(op, outcome)
	s.rec.SetRecordCount(s.store.Len())
}

func fromDraft(id string, d Draft) Animal {
	return Animal{
		ID:          id,
		Kind:        ParseKind(d.Kind),
		Name:        d.Name,
		Gender:      Gender(d.Gender),
		Breed:       d.Breed,
		Weight:      d.Weight,
		DOB:         d.DOB,
		Microchip:   d.Microchip,
		HealthNotes: d.HealthNotes,
		Description: d.Description,
		ImagePath:   d.ImagePath,
	}
}

func toDraft(a Animal) Draft {
	return Draft{
		Kind:        a.Kind.String(),
		Name:        a.Name,
		Gender:      string(a.Gender),
		Breed:       a.Breed,
		Weight:      a.Weight,
		DOB:         a.DOB,
		Microchip:   a.Microchip,
		HealthNotes: a.HealthNotes,
		Description: a.Description,
		ImagePath:   a.ImagePath,
	}
}

func applyUpdate(d *Draft, in UpdateInput) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&d.Kind, in.Kind)
	set(&d.Name, in.Name)
	set(&d.Gender, in.Gender)
	set(&d.Breed, in.Breed)
	set(&d.Weight, in.Weight)
	set(&d.DOB, in.DOB)
	set(&d.Microchip, in.Microchip)
	set(&d.HealthNotes, in.HealthNotes)
	set(&d.Description, in.Description)
	set(&d.ImagePath, in.ImagePath)
}
