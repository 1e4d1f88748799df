package handler

import (
	"errors"
	"net/http"

	"salon-booking-api/internal/booking"
	"salon-booking-api/internal/store"
)

// statusFor maps service-layer error kinds to HTTP status codes at the
// boundary. Unknown errors collapse to 500 so internals never leak.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, store.ErrServiceInUse):
		return http.StatusConflict
	case errors.Is(err, booking.ErrInvalidService),
		errors.Is(err, booking.ErrMissingFields),
		errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrInvalidService),
		errors.Is(err, booking.ErrMissingFields):
		return err.Error()
	case errors.Is(err, store.ErrEmailExists):
		return "email já cadastrado"
	case errors.Is(err, store.ErrServiceInUse):
		return "serviço possui compromissos agendados"
	case errors.Is(err, store.ErrNotFound):
		return "não encontrado"
	default:
		return "erro interno"
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
	}
	h.respondError(w, code, messageFor(err))
}
