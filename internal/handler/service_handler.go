package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salon-booking-api/internal/model"
)

// price accepts a JSON number or a numeric string and normalizes to a number,
// so `"80.00"` and `80.0` store the same value.
type price float64

func (p *price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("preco deve ser numérico")
	}
	*p = price(v)
	return nil
}

type createServiceRequest struct {
	Name        string `json:"nome"      validate:"required"`
	Duration    int    `json:"duracao"   validate:"required,gt=0"`
	Price       *price `json:"preco"     validate:"required"`
	Category    string `json:"categoria" validate:"required"`
	Description string `json:"descricao"`
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListServices(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	if list == nil {
		list = []model.Service{}
	}
	h.respond(w, http.StatusOK, list)
}

func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	sv, err := h.store.ServiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, sv)
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	if *req.Price < 0 {
		h.respondError(w, http.StatusBadRequest, "preco não pode ser negativo")
		return
	}

	sv := &model.Service{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Duration:    req.Duration,
		Price:       float64(*req.Price),
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.store.CreateService(r.Context(), sv); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, sv)
}

type updateServiceRequest struct {
	Name        *string `json:"nome"`
	Duration    *int    `json:"duracao"`
	Price       *price  `json:"preco"`
	Category    *string `json:"categoria"`
	Description *string `json:"descricao"`
}

// partial update: only supplied fields change
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req updateServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	sv, err := h.store.ServiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}

	if req.Name != nil {
		sv.Name = *req.Name
	}
	if req.Duration != nil {
		sv.Duration = *req.Duration
	}
	if req.Price != nil {
		if *req.Price < 0 {
			h.respondError(w, http.StatusBadRequest, "preco não pode ser negativo")
			return
		}
		sv.Price = float64(*req.Price)
	}
	if req.Category != nil {
		sv.Category = *req.Category
	}
	if req.Description != nil {
		sv.Description = *req.Description
	}

	if err := h.store.UpdateService(r.Context(), sv); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, sv)
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}
