package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, ownersSvc *owners.Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, ownersSvc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
	})
}

type createPetRequest struct {
	OwnerID   string `json:"owner_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=80"`
	Type      string `json:"type" validate:"required,max=40"`
	Breed     string `json:"breed" validate:"max=80"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Notes     string `json:"notes"`
}

type petResponse struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Breed *string `json:"breed"`
	Notes *string `json:"notes"`
	// birth_date se lee aparte para distinguir null de ausente.
	BirthDate json.RawMessage `json:"birth_date"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota para un dueño existente. birth_date opcional en formato YYYY-MM-DD.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "owner not found"
// @Router /pets [post]
func createPetHandler(svc *Service, ownersSvc *owners.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if msg := validation.Struct(req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		if _, err := ownersSvc.GetByID(r.Context(), req.OwnerID); err != nil {
			if errors.Is(err, owners.ErrNotFound) {
				http.Error(w, "owner not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, _ := time.Parse("2006-01-02", req.BirthDate) // ya validado
			bd = &t
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID:   req.OwnerID,
			Name:      req.Name,
			Type:      req.Type,
			Breed:     req.Breed,
			BirthDate: bd,
			Notes:     req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Param owner_id query string false "Filtrar por dueño"
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Pet
			err   error
		)
		if ownerID := strings.TrimSpace(r.URL.Query().Get("owner_id")); ownerID != "" {
			items, err = svc.ListByOwner(r.Context(), ownerID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description PATCH parcial. Para limpiar birth_date enviar null.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / birth_date inválido"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePetRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// RawMessage queda nil si el campo no vino y "null" si vino null.
		var bd PatchBirthDate
		if req.BirthDate != nil {
			bd.Present = true
			if string(req.BirthDate) != "null" {
				var s string
				if err := json.Unmarshal(req.BirthDate, &s); err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
				if err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				bd.Value = &t
			}
		}

		updated, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "petID"), UpdateProfileInput{
			Name:      req.Name,
			Type:      req.Type,
			Breed:     req.Breed,
			BirthDate: bd,
			Notes:     req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Type:      string(p.Type),
		Breed:     p.Breed,
		BirthDate: p.BirthDate,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en cada módulo; extraerlo cuando haya más.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
