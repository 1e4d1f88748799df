package handler

import (
	"net/http"
	"time"

	"salon-booking-api/internal/booking"
	"salon-booking-api/internal/middleware"
	"salon-booking-api/internal/model"
)

type createBookingRequest struct {
	ProviderID string `json:"cabeleireiroId"`
	ServiceID  string `json:"servicoId"`
	At         string `json:"dataHora"`
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "não autenticado")
		return
	}

	var req createBookingRequest
	if !h.decode(w, r, &req) {
		return
	}

	// empty dataHora falls through as the zero time so the engine reports
	// missing fields ahead of format problems
	var at time.Time
	if req.At != "" {
		var err error
		at, err = parseInstant(req.At)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "dataHora inválida")
			return
		}
	}

	a, err := h.engine.Create(r.Context(), id.ID, booking.Request{
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		At:         at,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, a)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "não autenticado")
		return
	}

	list, err := h.engine.List(r.Context(), id.ID, id.Role)
	if err != nil {
		h.fail(w, err)
		return
	}
	if list == nil {
		list = []model.Appointment{}
	}
	h.respond(w, http.StatusOK, list)
}
