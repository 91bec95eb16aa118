package animals

import "strings"

// Kind es la etiqueta de categoría del animal.
// No cambia comportamiento; solo se guarda y se muestra.
// @Enum animal, cat, dog, exotic
type Kind string

const (
	KindGeneric Kind = "animal"
	KindCat     Kind = "cat"
	KindDog     Kind = "dog"
	KindExotic  Kind = "exotic"
)

// ParseKind normaliza el texto del formulario (o del archivo) a un Kind.
// Cualquier valor no reconocido (incluido vacío) cae en KindGeneric.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCat:
		return KindCat
	case KindDog:
		return KindDog
	case KindExotic:
		return KindExotic
	default:
		return KindGeneric
	}
}

func (k Kind) String() string { return string(k) }

// Gender del animal: M o F.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Animal es el registro de ingreso de una mascota al refugio.
type Animal struct {
	ID   string
	Kind Kind

	Name   string
	Gender Gender
	Breed  string
	Weight string // texto libre (lb.)
	DOB    string // YYYY-MM-DD o vacío

	Microchip   string
	HealthNotes string
	Description string

	ImagePath string // solo referencia al archivo, no se administra la imagen
}
