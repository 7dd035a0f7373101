package dto

import "time"

// CreateProcessRequest entrada para criar processo.
type CreateProcessRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	ClientID    string `json:"clientId" validate:"required,uuid"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// UpdateProcessRequest entrada para atualizar processo. Mudança de status é
// opcional e, quando presente, passa pelo motor de transição (observation
// obrigatória nesse caso).
type UpdateProcessRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	ClientID    string `json:"clientId" validate:"omitempty,uuid"`
	Status      string `json:"status"`
	Observation string `json:"observation"`
}

// UpdateStatusRequest entrada da transição de status dedicada.
type UpdateStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Observation string `json:"observation" validate:"required"`
}

// TrackRequest credenciais de acompanhamento externo (modo token).
type TrackRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProcessCredentials par token/senha devolvido uma única vez na criação.
type ProcessCredentials struct {
	LoginToken string `json:"loginToken"`
	Password   string `json:"password"`
}

// ProcessResponse saída de um processo em listagens.
type ProcessResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ClientID    string    `json:"clientId,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProcessResponse resposta da criação: processo + credenciais em texto
// plano, entregues exatamente uma vez.
type CreateProcessResponse struct {
	ProcessResponse
	Credentials ProcessCredentials `json:"credentials"`
}

// HistoryEntryResponse lançamento do histórico.
type HistoryEntryResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Observation string    `json:"observation,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DocumentResponse metadados de documento para listagem/track.
type DocumentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProcessDetailResponse processo com cliente, histórico e documentos do
// cliente (visão de sessão e modo token).
type ProcessDetailResponse struct {
	ProcessResponse
	ClientEmail string                 `json:"clientEmail,omitempty"`
	History     []HistoryEntryResponse `json:"history"`
	Documents   []DocumentResponse     `json:"documents"`
}

// PublicProcessResponse visão pública estreita: sem descrição, sem documentos
// e sem dados de credencial. Intencionalmente mais fraca que o modo token.
type PublicProcessResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Status      string                 `json:"status"`
	Priority    string                 `json:"priority"`
	ClientName  string                 `json:"clientName,omitempty"`
	ClientEmail string                 `json:"clientEmail,omitempty"`
	History     []HistoryEntryResponse `json:"history"`
}

// UploadResponse resposta do upload de documento de processo.
type UploadResponse struct {
	Success  bool             `json:"success"`
	Document DocumentResponse `json:"document"`
}
