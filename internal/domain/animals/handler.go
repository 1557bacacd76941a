package animals

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"animals-safety/internal/messages"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/breeds", listBreedsHandler(svc))

	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

// formText acepta string o número JSON y conserva el texto crudo.
// El formulario manda texto libre; la validación la hace el servicio.
type formText string

func (f *formText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = formText(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = formText(n.String())
	return nil
}

type createAnimalRequest struct {
	Name   string   `json:"name"`
	Breed  string   `json:"breed"` // vacío => raza por defecto
	Age    formText `json:"age" swaggertype:"string"`
	Weight formText `json:"weight" swaggertype:"string"`
	Height formText `json:"height" swaggertype:"string"`
}

type animalResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Breed  Breed   `json:"breed"`
	Age    int     `json:"age"`
	Weight float32 `json:"weight"`
	Height float32 `json:"height"`
}

type breedResponse struct {
	Breed Breed  `json:"breed"`
	Label string `json:"label"`
	Cover string `json:"cover"`
}

type validationErrorResponse struct {
	Error   FailureKind `json:"error"`
	Message string      `json:"message"`
}

// createAnimalHandler crea un animal desde el formulario.
//
//	@Summary	Create an animal
//	@Tags		animals
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createAnimalRequest	true	"Raw form values"
//	@Success	201		{object}	animalResponse
//	@Failure	400		{string}	string
//	@Failure	422		{object}	validationErrorResponse
//	@Router		/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var breed Breed
		if strings.TrimSpace(req.Breed) != "" {
			b, ok := ParseBreed(req.Breed)
			if !ok {
				http.Error(w, "unknown breed", http.StatusBadRequest)
				return
			}
			breed = b
		}

		a, err := svc.TryCreate(r.Context(), CreateInput{
			Name:   req.Name,
			Breed:  breed,
			Age:    string(req.Age),
			Weight: string(req.Weight),
			Height: string(req.Height),
		})
		if err != nil {
			switch {
			case IsValidationError(err):
				writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
					Error:   KindOf(err),
					Message: svc.Message(r.Context(), err),
				})
			case errors.Is(err, ErrUnknownBreed):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		// Location es la señal de navegación hacia el detalle.
		w.Header().Set("Location", "/animals/"+a.ID)
		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler lista todos los animales en orden de creación.
//
//	@Summary	List animals
//	@Tags		animals
//	@Produce	json
//	@Success	200	{array}	animalResponse
//	@Router		/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler devuelve el detalle de un animal.
//
//	@Summary	Get an animal
//	@Tags		animals
//	@Produce	json
//	@Param		animalID	path		string	true	"Animal ID"
//	@Success	200			{object}	animalResponse
//	@Failure	404			{string}	string
//	@Router		/animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "animalID")
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// listBreedsHandler expone la lista fija de razas con su label traducido.
//
//	@Summary	List breeds
//	@Tags		breeds
//	@Produce	json
//	@Success	200	{array}	breedResponse
//	@Router		/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := svc.Catalog(r.Context())

		out := make([]breedResponse, 0, len(breedOrder))
		for _, b := range Breeds() {
			info := b.Info()
			out = append(out, breedResponse{
				Breed: b,
				Label: catalog.Lookup(messages.Key(info.Label)),
				Cover: info.Cover,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:     a.ID,
		Name:   a.Name,
		Breed:  a.Breed,
		Age:    a.Age,
		Weight: a.Weight,
		Height: a.Height,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
