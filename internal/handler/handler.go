package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"salon-booking-api/internal/booking"
	"salon-booking-api/internal/store"
)

type Handler struct {
	store    store.Store
	engine   *booking.Engine
	secret   string
	log      *slog.Logger
	validate *validator.Validate
}

func New(st store.Store, secret string, log *slog.Logger) *Handler {
	return &Handler{
		store:    st,
		engine:   booking.New(st),
		secret:   secret,
		log:      log,
		validate: validator.New(),
	}
}

func (h *Handler) respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encode response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, code int, msg string) {
	h.respond(w, code, map[string]string{"error": msg})
}

// decode parses the JSON body into dst and runs struct validation. On failure
// it writes the 400 itself and reports false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "campos obrigatórios ausentes ou inválidos")
		return false
	}
	return true
}
