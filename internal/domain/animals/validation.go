package animals

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
	ErrAmbiguous    = errors.New("ambiguous animal key")
	ErrStorage      = errors.New("storage error")
)

// DateLayout es el formato esperado para la fecha de nacimiento.
const DateLayout = "2006-01-02"

// ValidationError identifica el campo que falló y por qué.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// normalize aplica trim/upper/lower como lo hace el formulario de ingreso.
func normalize(d Draft) Draft {
	return Draft{
		Kind:        strings.ToLower(strings.TrimSpace(d.Kind)),
		Name:        strings.TrimSpace(d.Name),
		Gender:      strings.ToUpper(strings.TrimSpace(d.Gender)),
		Breed:       strings.TrimSpace(d.Breed),
		Weight:      strings.TrimSpace(d.Weight),
		DOB:         strings.TrimSpace(d.DOB),
		Microchip:   strings.TrimSpace(d.Microchip),
		HealthNotes: strings.TrimSpace(d.HealthNotes),
		Description: strings.TrimSpace(d.Description),
		ImagePath:   strings.TrimSpace(d.ImagePath),
	}
}

// Validate revisa un Draft ya normalizado. Devuelve el primer campo inválido.
func Validate(d Draft) error {
	if d.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if d.Gender != string(GenderMale) && d.Gender != string(GenderFemale) {
		return &ValidationError{Field: "gender", Reason: "must be M or F"}
	}
	if d.Kind == "" {
		return &ValidationError{Field: "kind", Reason: "is required"}
	}
	if d.Breed == "" {
		return &ValidationError{Field: "breed", Reason: "is required"}
	}
	if d.DOB != "" {
		if _, err := time.Parse(DateLayout, d.DOB); err != nil {
			return &ValidationError{Field: "dob", Reason: "must be in YYYY-MM-DD format"}
		}
	}
	if d.ImagePath != "" {
		if _, ok := imageExtensions[strings.ToLower(filepath.Ext(d.ImagePath))]; !ok {
			return &ValidationError{Field: "image_path", Reason: "must be a .jpg, .jpeg, .png or .gif file"}
		}
	}
	return nil
}
