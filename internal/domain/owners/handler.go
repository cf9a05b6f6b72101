package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-clinic/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes asume que el router ya aplicó middleware.RequireAuth.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
	})
}

type createOwnerRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Phone string `json:"phone" validate:"required,max=40"`
	Email string `json:"email" validate:"omitempty,email"`
}

type ownerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createOwnerHandler godoc
// @Summary Registrar dueño
// @Tags owners
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body createOwnerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 409 {string} string "email already registered"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if msg := validation.Struct(req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateEmail):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// listOwnersHandler godoc
// @Summary Buscar dueños
// @Description Filtra por nombre, teléfono o email (contiene, sin distinguir mayúsculas).
// @Tags owners
// @Produce json
// @Param q query string false "Texto a buscar"
// @Success 200 {array} ownerResponse
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "owner not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:        o.ID,
		Name:      o.Name,
		Phone:     o.Phone,
		Email:     o.Email,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
