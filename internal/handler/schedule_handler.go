package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salon-booking-api/internal/middleware"
	"salon-booking-api/internal/model"
)

type registerSlotRequest struct {
	At string `json:"dataHora" validate:"required"`
}

func (h *Handler) RegisterSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "não autenticado")
		return
	}

	var req registerSlotRequest
	if !h.decode(w, r, &req) {
		return
	}
	at, err := parseInstant(req.At)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "dataHora inválida")
		return
	}

	sl := &model.Slot{ID: uuid.New().String(), ProviderID: id.ID, At: at}
	if err := h.store.RegisterSlot(r.Context(), sl); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, sl)
}

func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListSlotsByProvider(r.Context(), chi.URLParam(r, "cabeleireiroId"))
	if err != nil {
		h.fail(w, err)
		return
	}
	if list == nil {
		list = []model.Slot{}
	}
	h.respond(w, http.StatusOK, list)
}

// parseInstant reads an RFC 3339 timestamp and normalizes it to UTC, so the
// same instant written with different zone offsets compares and serializes
// identically.
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
