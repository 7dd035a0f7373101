package entity

import "time"

// ProcessHistoryEntry lançamento imutável do histórico de um processo.
// Append-only: nunca alterado nem removido, exceto na deleção em cascata do
// processo. Seq é um BIGSERIAL monotônico usado como desempate determinístico
// quando dois lançamentos compartilham o mesmo created_at.
type ProcessHistoryEntry struct {
	Seq         int64
	ID          string
	ProcessID   string
	Status      string // texto livre, não restrito ao enum de Process
	Observation string
	Attachments []string
	CreatedBy   string // e-mail do autor ou "sistema"
	CreatedAt   time.Time
}
