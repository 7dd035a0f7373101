package entity

import "time"

// OwnerKind identifica o dono de um documento: cliente ou processo.
// Também nomeia o subdiretório onde os bytes ficam em disco.
type OwnerKind string

const (
	OwnerClient  OwnerKind = "clients"
	OwnerProcess OwnerKind = "processes"
)

// Tipos de documento.
const (
	DocTypePersonal   = "personal"
	DocTypeAdditional = "additional"
)

// Document metadados de um arquivo enviado. Os bytes ficam fora do banco,
// endereçados por (OwnerKind, OwnerID, Filename); upload posterior com o
// mesmo nome sobrescreve silenciosamente.
type Document struct {
	ID        string
	OwnerKind OwnerKind
	OwnerID   string
	Filename  string
	Type      string // personal, additional
	CreatedAt time.Time
	UpdatedAt time.Time
}
