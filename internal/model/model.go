package model

import "time"

const (
	RoleClient   = "cliente"
	RoleProvider = "cabeleireiro"
)

// StatusBooked is the only appointment status; the API has no cancellation yet.
const StatusBooked = "agendado"

func ValidRole(papel string) bool {
	return papel == RoleClient || papel == RoleProvider
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"papel"`
	CreatedAt    time.Time `json:"-"`
}

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Duration    int     `json:"duracao"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria"`
	Description string  `json:"descricao"`
}

type Slot struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"cabeleireiroId"`
	At         time.Time `json:"dataHora"`
}

type Appointment struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clienteId"`
	ProviderID string    `json:"cabeleireiroId"`
	ServiceID  string    `json:"servicoId"`
	At         time.Time `json:"dataHora"`
	Status     string    `json:"status"`
}
