package process

import "github.com/sgp-sistemas/sgp-api/internal/domain/entity"

// CredentialsMailer envia as credenciais de acompanhamento ao cliente.
// A entrega é best-effort: falha é logada e não desfaz a criação do processo.
type CredentialsMailer interface {
	SendProcessCredentials(to, name, token, password string) error
}

// ReportGenerator gera a ficha do processo em PDF.
type ReportGenerator interface {
	GenerateProcessReport(p *entity.Process, history []*entity.ProcessHistoryEntry) ([]byte, error)
}
