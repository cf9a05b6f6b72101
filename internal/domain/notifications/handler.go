package notifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vet-clinic/internal/domain/appointments"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Patch("/{id}/read", markReadHandler(svc))
	})
}

type notificationResponse struct {
	ID            string                     `json:"id"`
	Type          string                     `json:"type"`
	AppointmentID string                     `json:"appointment_id"`
	OwnerID       string                     `json:"owner_id"`
	PetID         string                     `json:"pet_id"`
	Changes       []appointments.FieldChange `json:"changes"`
	Message       string                     `json:"message"`
	Read          bool                       `json:"read"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// listNotificationsHandler godoc
// @Summary Listar notificaciones
// @Description Más recientes primero.
// @Tags notifications
// @Produce json
// @Param owner_id query string false "Filtrar por dueño"
// @Param unread query bool false "Solo no leídas"
// @Param limit query int false "Máximo de items (default 50, máx 200)"
// @Success 200 {array} notificationResponse
// @Router /notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit, _ := strconv.Atoi(q.Get("limit"))
		unread, _ := strconv.ParseBool(q.Get("unread"))

		items, err := svc.List(r.Context(), ListFilter{
			OwnerID:    q.Get("owner_id"),
			UnreadOnly: unread,
			Limit:      limit,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, toNotificationResponse(n))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// markReadHandler godoc
// @Summary Marcar notificación como leída
// @Tags notifications
// @Produce json
// @Param id path string true "ID de la notificación"
// @Success 200 {object} notificationResponse
// @Failure 404 {string} string "notification not found"
// @Router /notifications/{id}/read [patch]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.MarkRead(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toNotificationResponse(n))
	}
}

func toNotificationResponse(n Notification) notificationResponse {
	changes := n.Changes
	if changes == nil {
		changes = []appointments.FieldChange{}
	}
	return notificationResponse{
		ID:            n.ID,
		Type:          n.Type,
		AppointmentID: n.AppointmentID,
		OwnerID:       n.OwnerID,
		PetID:         n.PetID,
		Changes:       changes,
		Message:       strings.TrimSpace(n.Message),
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
