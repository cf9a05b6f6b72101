package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// Mensajes que muestra el front tal cual.
const (
	msgDoubleBooking = "Double booking detected"
	msgNotFound      = "Appointment not found"
	msgPetNotFound   = "Pet not found"
	msgForbidden     = "Only admin or vet can delete appointments"

	msgPetOwnerMismatch = "pet does not belong to owner"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc, petsSvc))
		ar.Get("/", listAppointmentsHandler(svc))

		// Rutas fijas antes de /{id}
		ar.Get("/summary", summaryHandler(svc))
		ar.Get("/conflicts", checkConflictHandler(svc))

		ar.Get("/{id}", getAppointmentHandler(svc))
		ar.Patch("/{id}", updateAppointmentHandler(svc, petsSvc))
		ar.Put("/{id}", updateAppointmentHandler(svc, petsSvc))
		ar.Delete("/{id}", deleteAppointmentHandler(svc))

		ar.Patch("/{id}/cancel", cancelAppointmentHandler(svc))
		ar.Patch("/{id}/complete", completeAppointmentHandler(svc))
		ar.Patch("/{id}/status", transitionStatusHandler(svc))
	})

	r.Get("/history", historyHandler(svc))
}

type createAppointmentRequest struct {
	PetID   string `json:"pet_id" validate:"required,uuid"`
	OwnerID string `json:"owner_id" validate:"required,uuid"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
	Reason  string `json:"reason" validate:"max=500"`
}

type updateAppointmentRequest struct {
	PetID   *string `json:"pet_id" validate:"omitempty,uuid"`
	OwnerID *string `json:"owner_id" validate:"omitempty,uuid"`
	Date    *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time    *string `json:"time" validate:"omitempty,datetime=15:04"`
	Reason  *string `json:"reason" validate:"omitempty,max=500"`
	Status  *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

type petRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type ownerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type appointmentResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	OwnerID   string    `json:"owner_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	Status    Status    `json:"status"`
	Pet       *petRef   `json:"pet,omitempty"`
	Owner     *ownerRef `json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type daySummaryResponse struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Scheduled int    `json:"scheduled"`
	Completed int    `json:"completed"`
	Cancelled int    `json:"cancelled"`
}

type historyResponse struct {
	Items   []appointmentResponse `json:"items"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
	Total   int                   `json:"total"`
	HasMore bool                  `json:"has_more"`
}

type conflictResponse struct {
	Conflict bool `json:"conflict"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// createAppointmentHandler godoc
// @Summary Agendar cita
// @Description Crea una cita en estado scheduled. Rechaza con 409 si la mascota ya tiene una cita scheduled en la misma fecha y hora.
// @Tags appointments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body createAppointmentRequest true "date YYYY-MM-DD, time HH:MM"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Pet not found"
// @Failure 409 {object} errorResponse "Double booking detected"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if msg := validation.Struct(req); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		p, err := petsSvc.GetByID(r.Context(), req.PetID)
		if err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				writeError(w, http.StatusNotFound, msgPetNotFound)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if p.OwnerID != req.OwnerID {
			writeError(w, http.StatusBadRequest, msgPetOwnerMismatch)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:   req.PetID,
			OwnerID: req.OwnerID,
			Date:    req.Date,
			Time:    req.Time,
			Reason:  req.Reason,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Ordenadas por fecha y hora ascendente, con pet y owner resueltos.
// @Tags appointments
// @Produce json
// @Param owner_id query string false "Filtrar por dueño"
// @Param pet_id query string false "Filtrar por mascota"
// @Param status query string false "scheduled|completed|cancelled"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} appointmentResponse
// @Failure 400 {object} errorResponse
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := ListFilter{
			OwnerID: strings.TrimSpace(q.Get("owner_id")),
			PetID:   strings.TrimSpace(q.Get("pet_id")),
		}
		if v := q.Get("status"); v != "" {
			st, err := ParseStatus(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "status must be scheduled, completed or cancelled")
				return
			}
			filter.Status = st
		}
		if v := q.Get("date"); v != "" {
			d, err := NormalizeDate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			filter.Date = d
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAppointmentHandler godoc
// @Summary Obtener cita
// @Description Devuelve la cita con pet y owner resueltos.
// @Tags appointments
// @Produce json
// @Param id path string true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} errorResponse "Appointment not found"
// @Router /appointments/{id} [get]
func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// updateAppointmentHandler godoc
// @Summary Modificar cita
// @Description Update parcial (PATCH y PUT se comportan igual: solo se tocan los campos enviados). Si el resultado queda scheduled se verifica doble reserva. Solo se notifica si algún campo cambió.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "ID de la cita"
// @Param payload body updateAppointmentRequest true "Campos a modificar"
// @Success 200 {object} appointmentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Appointment not found"
// @Failure 409 {object} errorResponse "Double booking detected"
// @Failure 422 {object} errorResponse
// @Router /appointments/{id} [patch]
func updateAppointmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAppointmentRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if msg := validation.Struct(req); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		// Si cambia la mascota o el dueño, la mascota resultante debe ser del dueño resultante.
		if req.PetID != nil || req.OwnerID != nil {
			cur, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			petID, ownerID := cur.PetID, cur.OwnerID
			if req.PetID != nil {
				petID = *req.PetID
			}
			if req.OwnerID != nil {
				ownerID = *req.OwnerID
			}

			p, err := petsSvc.GetByID(r.Context(), petID)
			if err != nil {
				if errors.Is(err, pets.ErrNotFound) {
					writeError(w, http.StatusNotFound, msgPetNotFound)
					return
				}
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if p.OwnerID != ownerID {
				writeError(w, http.StatusBadRequest, msgPetOwnerMismatch)
				return
			}
		}

		patch := Patch{
			PetID:   req.PetID,
			OwnerID: req.OwnerID,
			Date:    req.Date,
			Time:    req.Time,
			Reason:  req.Reason,
		}
		if req.Status != nil {
			st := Status(*req.Status)
			patch.Status = &st
		}

		a, err := svc.ApplyFieldUpdate(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// cancelAppointmentHandler godoc
// @Summary Cancelar cita
// @Tags appointments
// @Produce json
// @Param id path string true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} errorResponse "Appointment not found"
// @Failure 422 {object} errorResponse "Cannot cancel a completed appointment"
// @Router /appointments/{id}/cancel [patch]
func cancelAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Cancel(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// completeAppointmentHandler godoc
// @Summary Completar cita
// @Tags appointments
// @Produce json
// @Param id path string true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} errorResponse "Appointment not found"
// @Failure 422 {object} errorResponse "Cannot complete a cancelled appointment"
// @Router /appointments/{id}/complete [patch]
func completeAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Complete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// transitionStatusHandler godoc
// @Summary Cambiar estado
// @Description Aplica la política de transiciones. Volver a scheduled verifica doble reserva. Mismo estado: no hace nada.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "ID de la cita"
// @Param payload body transitionRequest true "scheduled|completed|cancelled"
// @Success 200 {object} appointmentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Appointment not found"
// @Failure 409 {object} errorResponse "Double booking detected"
// @Failure 422 {object} errorResponse
// @Router /appointments/{id}/status [patch]
func transitionStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req transitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if msg := validation.Struct(req); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		a, err := svc.TransitionStatus(r.Context(), chi.URLParam(r, "id"), Status(req.Status))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// deleteAppointmentHandler godoc
// @Summary Borrar cita
// @Description Solo admin o vet. No genera notificación.
// @Tags appointments
// @Param id path string true "ID de la cita"
// @Success 204
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse "Appointment not found"
// @Router /appointments/{id} [delete]
func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !claims.Staff() {
			writeError(w, http.StatusForbidden, msgForbidden)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// summaryHandler godoc
// @Summary Resumen diario
// @Description Conteo por día y estado para cada día del rango (inclusive). Sin rango: hoy y los 6 días siguientes.
// @Tags appointments
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} daySummaryResponse
// @Failure 400 {object} errorResponse
// @Router /appointments/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := svc.Summary(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]daySummaryResponse, 0, len(days))
		for _, d := range days {
			out = append(out, daySummaryResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// checkConflictHandler godoc
// @Summary Verificar disponibilidad
// @Description Indica si otra cita scheduled ocupa el turno. exclude_id es la cita que se está editando.
// @Tags appointments
// @Produce json
// @Param pet_id query string true "ID de la mascota"
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "HH:MM"
// @Param exclude_id query string false "Cita a ignorar"
// @Success 200 {object} conflictResponse
// @Failure 400 {object} errorResponse
// @Router /appointments/conflicts [get]
func checkConflictHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		date, err := NormalizeDate(q.Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		tm, err := NormalizeTime(q.Get("time"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "time must be HH:MM")
			return
		}

		taken, err := svc.CheckConflict(r.Context(), SlotQuery{
			PetID:     q.Get("pet_id"),
			Date:      date,
			Time:      tm,
			ExcludeID: q.Get("exclude_id"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, conflictResponse{Conflict: taken})
	}
}

// historyHandler godoc
// @Summary Historial de citas
// @Description Más recientes primero. q busca en nombre y teléfono del dueño y nombre de la mascota.
// @Tags appointments
// @Produce json
// @Param q query string false "Texto a buscar"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param status query string false "scheduled|completed|cancelled"
// @Param page query int false "Página (desde 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} historyResponse
// @Failure 400 {object} errorResponse
// @Router /history [get]
func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		res, err := svc.History(r.Context(), HistoryQuery{
			Q:      q.Get("q"),
			From:   q.Get("from"),
			To:     q.Get("to"),
			Status: Status(strings.ToLower(strings.TrimSpace(q.Get("status")))),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		items := make([]appointmentResponse, 0, len(res.Items))
		for _, a := range res.Items {
			items = append(items, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, historyResponse{
			Items:   items,
			Page:    res.Page,
			Limit:   res.Limit,
			Total:   res.Total,
			HasMore: res.HasMore,
		})
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	out := appointmentResponse{
		ID:        a.ID,
		PetID:     a.PetID,
		OwnerID:   a.OwnerID,
		Date:      a.Date,
		Time:      a.Time,
		Reason:    a.Reason,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Pet != nil {
		out.Pet = &petRef{ID: a.Pet.ID, Name: a.Pet.Name, Type: a.Pet.Type}
	}
	if a.Owner != nil {
		out.Owner = &ownerRef{ID: a.Owner.ID, Name: a.Owner.Name, Phone: a.Owner.Phone}
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrConflict):
		writeError(w, http.StatusConflict, msgDoubleBooking)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, ErrInvalidTransition):
		writeError(w, http.StatusUnprocessableEntity, transitionMessage(err))
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// transitionMessage: "invalid status transition: cannot complete ..." -> "Cannot complete ...".
func transitionMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), ErrInvalidTransition.Error()+": ")
	if msg == "" {
		return msg
	}
	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
