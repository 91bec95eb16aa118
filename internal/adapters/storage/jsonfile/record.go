package jsonfile

import (
	"bytes"
	"encoding/json"
	"strings"

	"shelter-pet-tracker/internal/domain/animals"
)

// record es la forma de cada elemento del arreglo en animals.json.
type record struct {
	ID          string     `json:"id,omitempty"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Gender      string     `json:"gender"`
	Breed       string     `json:"breed"`
	Weight      flexString `json:"weight"`
	DOB         string     `json:"dob"`
	Microchip   string     `json:"microchip"`
	HealthNotes string     `json:"health_notes"`
	Description string     `json:"description"`
	ImagePath   string     `json:"image_path"`
}

// flexString acepta "12.5" o 12.5 (archivos viejos guardaban el peso como número).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func fromAnimal(a animals.Animal) record {
	return record{
		ID:          a.ID,
		Type:        a.Kind.String(),
		Name:        a.Name,
		Gender:      string(a.Gender),
		Breed:       a.Breed,
		Weight:      flexString(a.Weight),
		DOB:         a.DOB,
		Microchip:   a.Microchip,
		HealthNotes: a.HealthNotes,
		Description: a.Description,
		ImagePath:   a.ImagePath,
	}
}

func (r record) toAnimal() animals.Animal {
	return animals.Animal{
		ID:          strings.TrimSpace(r.ID),
		Kind:        animals.ParseKind(r.Type),
		Name:        r.Name,
		Gender:      animals.Gender(r.Gender),
		Breed:       r.Breed,
		Weight:      string(r.Weight),
		DOB:         r.DOB,
		Microchip:   r.Microchip,
		HealthNotes: r.HealthNotes,
		Description: r.Description,
		ImagePath:   r.ImagePath,
	}
}
