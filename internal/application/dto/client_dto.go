package dto

import "time"

// CreateClientRequest entrada para criar cliente. Chega via multipart junto
// com arquivos opcionais de documentos.
type CreateClientRequest struct {
	Name         string `json:"name" form:"name" validate:"required,min=1,max=255"`
	Email        string `json:"email" form:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" form:"phone" validate:"omitempty,max=50"`
	Document     string `json:"document" form:"document" validate:"omitempty,max=50"`
	RG           string `json:"rg" form:"rg" validate:"omitempty,max=50"`
	DocumentType string `json:"documentType" form:"documentType" validate:"omitempty,max=50"`
	Type         string `json:"type" form:"type" validate:"omitempty,oneof=PF PJ"`
	Address      string `json:"address" form:"address"`
	City         string `json:"city" form:"city" validate:"omitempty,max=100"`
	State        string `json:"state" form:"state" validate:"omitempty,max=50"`
	PostalCode   string `json:"postalCode" form:"postalCode" validate:"omitempty,max=20"`
	Notes        string `json:"notes" form:"notes"`
}

// UpdateClientRequest entrada para atualizar cliente (PUT e PATCH usam o
// mesmo corpo completo, como no fluxo original).
type UpdateClientRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	Document     string `json:"document" validate:"omitempty,max=50"`
	RG           string `json:"rg" validate:"omitempty,max=50"`
	DocumentType string `json:"documentType" validate:"omitempty,max=50"`
	Type         string `json:"type" validate:"omitempty,oneof=PF PJ"`
	Address      string `json:"address"`
	City         string `json:"city" validate:"omitempty,max=100"`
	State        string `json:"state" validate:"omitempty,max=50"`
	PostalCode   string `json:"postalCode" validate:"omitempty,max=20"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive blocked"`
	Notes        string `json:"notes"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Document     string    `json:"document,omitempty"`
	RG           string    `json:"rg,omitempty"`
	DocumentType string    `json:"documentType,omitempty"`
	Type         string    `json:"type"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
