package entity

import "time"

// Status válidos para Client.
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
	ClientBlocked  = "blocked"
)

// Tipos de pessoa.
const (
	ClientTypePF = "PF" // pessoa física
	ClientTypePJ = "PJ" // pessoa jurídica
)

// Client representa um cliente do escritório. Pertence a um User e possui
// zero ou mais Documents e Processes.
type Client struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Document     string // CPF ou CNPJ
	RG           string
	DocumentType string // RG, CNH, ...
	Type         string // PF, PJ
	Address      string
	City         string
	State        string
	PostalCode   string
	Status       string // active, inactive, blocked
	Notes        string
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
