package animals

import "strings"

// Criteria agrupa los filtros del panel de búsqueda.
// Cada campo vacío coincide con todo; los no vacíos se combinan con AND.
type Criteria struct {
	Name      string
	Gender    string
	Kind      string
	Breed     string
	Microchip string
}

func (c Criteria) normalized() Criteria {
	return Criteria{
		Name:      strings.ToLower(strings.TrimSpace(c.Name)),
		Gender:    strings.ToUpper(strings.TrimSpace(c.Gender)),
		Kind:      strings.ToLower(strings.TrimSpace(c.Kind)),
		Breed:     strings.ToLower(strings.TrimSpace(c.Breed)),
		Microchip: strings.TrimSpace(c.Microchip),
	}
}

// IsEmpty indica si ningún filtro fue indicado.
func (c Criteria) IsEmpty() bool {
	return c.normalized() == Criteria{}
}

// Matches evalúa todos los filtros sobre un animal.
func (c Criteria) Matches(a Animal) bool {
	return c.normalized().matches(a)
}

// c ya viene normalizado.
func (c Criteria) matches(a Animal) bool {
	if !strings.Contains(strings.ToLower(a.Name), c.Name) {
		return false
	}
	if c.Gender != "" && c.Gender != string(a.Gender) {
		return false
	}
	if !strings.Contains(strings.ToLower(string(a.Kind)), c.Kind) {
		return false
	}
	if !strings.Contains(strings.ToLower(a.Breed), c.Breed) {
		return false
	}
	// microchip es sensible a mayúsculas
	return strings.Contains(a.Microchip, c.Microchip)
}

// Search recorre la colección en orden y devuelve los que cumplen los filtros.
func Search(items []Animal, c Criteria) []Animal {
	c = c.normalized()

	out := make([]Animal, 0, len(items))
	for _, a := range items {
		if c.matches(a) {
			out = append(out, a)
		}
	}
	return out
}
