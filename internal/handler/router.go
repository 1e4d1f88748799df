package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"salon-booking-api/internal/middleware"
	"salon-booking-api/internal/model"
)

// Routes builds the full API router. Recoverer keeps a panicking request
// from taking the process down.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	authn := middleware.Authenticate(h.secret)
	provider := middleware.RequireRole(model.RoleProvider)
	client := middleware.RequireRole(model.RoleClient)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		h.respond(w, http.StatusOK, map[string]string{
			"mensagem": "API do Salão de Beleza — bem vindo(a)!",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	rl := middleware.NewRateLimiter(5, 10)
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimit(rl))
		r.Post("/cadastrar", h.Cadastrar)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.With(authn).Post("/logout", h.Logout)
	})

	r.Route("/servicos", func(r chi.Router) {
		r.Get("/", h.ListServices)
		r.Get("/{id}", h.GetService)
		r.Group(func(r chi.Router) {
			r.Use(authn, provider)
			r.Post("/", h.CreateService)
			r.Put("/{id}", h.UpdateService)
			r.Delete("/{id}", h.DeleteService)
		})
	})

	r.Route("/cabeleireiros", func(r chi.Router) {
		r.With(authn, provider).Post("/horarios", h.RegisterSlot)
		r.Get("/horarios/{cabeleireiroId}", h.ListSlots)
	})

	r.Route("/compromissos", func(r chi.Router) {
		r.Use(authn)
		r.With(client).Post("/", h.CreateBooking)
		r.Get("/", h.ListBookings)
	})

	return r
}
