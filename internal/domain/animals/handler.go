package animals

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

// animalRequest es el formulario de ingreso. Mismas keys que animals.json.
type animalRequest struct {
	Type        string `json:"type" enums:"animal,cat,dog,exotic"`
	Name        string `json:"name"`
	Gender      string `json:"gender" enums:"M,F"`
	Breed       string `json:"breed"`
	Weight      string `json:"weight"`
	DOB         string `json:"dob"` // YYYY-MM-DD opcional
	Microchip   string `json:"microchip"`
	HealthNotes string `json:"health_notes"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
}

// updateAnimalRequest: campos ausentes o null no se tocan.
type updateAnimalRequest struct {
	Type        *string `json:"type"`
	Name        *string `json:"name"`
	Gender      *string `json:"gender"`
	Breed       *string `json:"breed"`
	Weight      *string `json:"weight"`
	DOB         *string `json:"dob"`
	Microchip   *string `json:"microchip"`
	HealthNotes *string `json:"health_notes"`
	Description *string `json:"description"`
	ImagePath   *string `json:"image_path"`
}

// animalResponse representa un registro de ingreso devuelto por la API.
type animalResponse struct {
	ID          string `json:"id"`
	Type        Kind   `json:"type"`
	Name        string `json:"name"`
	Gender      Gender `json:"gender"`
	Breed       string `json:"breed"`
	Weight      string `json:"weight"`
	DOB         string `json:"dob"`
	Microchip   string `json:"microchip"`
	HealthNotes string `json:"health_notes"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
}

// createAnimalHandler godoc
// @Summary Registrar ingreso de un animal
// @Description Valida el formulario (name, gender M/F, type, breed obligatorios; dob YYYY-MM-DD) y lo agrega al final de la colección.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Formulario de ingreso"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / <campo>: <motivo>"
// @Failure 500 {string} string "storage error"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req animalRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), Draft{
			Kind:        req.Type,
			Name:        req.Name,
			Gender:      req.Gender,
			Breed:       req.Breed,
			Weight:      req.Weight,
			DOB:         req.DOB,
			Microchip:   req.Microchip,
			HealthNotes: req.HealthNotes,
			Description: req.Description,
			ImagePath:   req.ImagePath,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar o buscar animales
// @Description Sin parámetros devuelve toda la colección. Con filtros aplica AND; name/type/breed sin distinguir mayúsculas, microchip sí.
// @Tags animals
// @Produce json
// @Param name query string false "Subcadena del nombre"
// @Param gender query string false "M o F"
// @Param type query string false "Subcadena del tipo"
// @Param breed query string false "Subcadena de la raza"
// @Param microchip query string false "Subcadena del microchip"
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := svc.Search(r.Context(), Criteria{
			Name:      q.Get("name"),
			Gender:    q.Get("gender"),
			Kind:      q.Get("type"),
			Breed:     q.Get("breed"),
			Microchip: q.Get("microchip"),
		})

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Ver ficha de un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar un animal
// @Description Solo se cambian los campos enviados; el resultado se vuelve a validar completo.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a cambiar"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / <campo>: <motivo>"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), UpdateInput{
			Kind:        req.Type,
			Name:        req.Name,
			Gender:      req.Gender,
			Breed:       req.Breed,
			Weight:      req.Weight,
			DOB:         req.DOB,
			Microchip:   req.Microchip,
			HealthNotes: req.HealthNotes,
			Description: req.Description,
			ImagePath:   req.ImagePath,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar un animal
// @Description La confirmación la pide la interfaz antes de llamar.
// @Tags animals
// @Param animalID path string true "ID del animal"
// @Success 204
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:          a.ID,
		Type:        a.Kind,
		Name:        a.Name,
		Gender:      a.Gender,
		Breed:       a.Breed,
		Weight:      a.Weight,
		DOB:         a.DOB,
		Microchip:   a.Microchip,
		HealthNotes: a.HealthNotes,
		Description: a.Description,
		ImagePath:   a.ImagePath,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "storage error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
