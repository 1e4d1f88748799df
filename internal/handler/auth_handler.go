package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"salon-booking-api/internal/auth"
	"salon-booking-api/internal/middleware"
	"salon-booking-api/internal/model"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type registerRequest struct {
	Name     string `json:"nome"  validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
	Role     string `json:"papel" validate:"required"`
}

func (h *Handler) Cadastrar(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !model.ValidRole(req.Role) {
		h.respondError(w, http.StatusBadRequest, "papel inválido")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}
	u := &model.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, u)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

type tokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		h.respondError(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	resp, err := h.issueTokens(r, u)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, resp)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !h.decode(w, r, &req) {
		return
	}

	rt, err := h.store.RefreshTokenByHash(r.Context(), auth.HashRefreshToken(req.RefreshToken))
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		h.respondError(w, http.StatusUnauthorized, "refresh token inválido")
		return
	}

	u, err := h.store.UserByID(r.Context(), rt.UserID)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "refresh token inválido")
		return
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		h.fail(w, err)
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(r.Context(), rt.ID, newID, u.ID, hash, time.Now().Add(refreshTokenTTL)); err != nil {
		h.fail(w, err)
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Role, u.Name, h.secret)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, tokenResponse{Token: tok, RefreshToken: raw})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "não autenticado")
		return
	}
	if err := h.store.RevokeAllRefreshTokens(r.Context(), id.ID); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}

func (h *Handler) issueTokens(r *http.Request, u *model.User) (*tokenResponse, error) {
	tok, err := auth.MakeToken(u.ID, u.Role, u.Name, h.secret)
	if err != nil {
		return nil, err
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	if _, err := h.store.CreateRefreshToken(r.Context(), u.ID, hash, time.Now().Add(refreshTokenTTL)); err != nil {
		return nil, err
	}
	return &tokenResponse{Token: tok, RefreshToken: raw}, nil
}
