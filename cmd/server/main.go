package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"salon-booking-api/internal/auth"
	"salon-booking-api/internal/handler"
	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
	"salon-booking-api/internal/store/memory"
	"salon-booking-api/internal/store/postgres"
)

// insecureSecret is the fallback used when JWT_SECRET is unset. Tokens signed
// with it are forgeable; never run with it outside local development.
const insecureSecret = "troque_esta_chave_em_producao"

func main() {
	_ = godotenv.Load()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	port := env("PORT", "3000")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = insecureSecret
		log.Warn("JWT_SECRET not set, using insecure default")
	}

	var st store.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(context.Background(), dbURL)
		if err != nil {
			log.Error("db", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(context.Background()); err != nil {
			log.Error("db ping", "error", err)
			os.Exit(1)
		}
		log.Info("connected to postgres")

		// run migrations
		if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
			log.Info("migration file not found, skipping", "error", err)
		} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
			log.Warn("migration", "error", err)
		} else {
			log.Info("migration applied")
		}

		st = postgres.New(pool)
	} else {
		mem := memory.New()
		seed(mem, log)
		st = mem
		log.Info("using in-memory store; state is lost on restart")
	}

	h := handler.New(st, secret, log)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      h.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("http listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http", "error", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// seed loads the demo records the in-memory store starts with: one client,
// one provider and one service.
func seed(st store.Store, log *slog.Logger) {
	ctx := context.Background()
	users := []struct{ name, email, role string }{
		{"Joana Cliente", "joana@cliente.com", model.RoleClient},
		{"Carlos Cabeleireiro", "carlos@salon.com", model.RoleProvider},
	}
	for _, u := range users {
		hash, err := auth.HashPassword("senha123")
		if err != nil {
			log.Warn("seed", "error", err)
			return
		}
		if err := st.CreateUser(ctx, &model.User{
			ID:           uuid.New().String(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
			CreatedAt:    time.Now(),
		}); err != nil {
			log.Warn("seed user", "email", u.email, "error", err)
		}
	}
	if err := st.CreateService(ctx, &model.Service{
		ID:          uuid.New().String(),
		Name:        "Corte Feminino",
		Duration:    45,
		Price:       80.0,
		Category:    "cabelo",
		Description: "Corte e finalização",
	}); err != nil {
		log.Warn("seed service", "error", err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
