package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa um funcionário do escritório. Criado por seed/setup;
// os fluxos da API nunca o alteram. É o dono de Clients e Processes.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca em texto plano depois de persistir
	Role         string // admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identidade autenticada construída uma única vez pelo gateway de
// acesso e passada por valor a cada operação. O Email vai para o created_by
// do histórico; quando vazio, usa-se o literal "sistema".
type Actor struct {
	ID    string
	Email string
	Role  string
}

// HistoryAuthor devolve o identificador do autor para o histórico.
func (a Actor) HistoryAuthor() string {
	if a.Email == "" {
		return "sistema"
	}
	return a.Email
}
