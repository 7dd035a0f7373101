package entity

import "time"

// Status produzidos pelo motor de transição. Qualquer status permitido pode
// suceder qualquer outro, inclusive retrocessos; a única regra é pertencer a
// esta lista.
const (
	StatusCadastroRealizado    = "CADASTRO_REALIZADO"
	StatusEmAnaliseDocumentos  = "EM_ANALISE_DOCUMENTOS"
	StatusDocumentosAprovados  = "DOCUMENTOS_APROVADOS"
	StatusDocumentosReprovados = "DOCUMENTOS_REPROVADOS"
)

// Status terminais que aparecem apenas em telas de exibição; o motor de
// transição nunca os produz.
const (
	StatusDecisaoFinalAprovada  = "DECISAO_FINAL_APROVADA"
	StatusDecisaoFinalReprovada = "DECISAO_FINAL_REPROVADA"
)

// Status usado em lançamentos de histórico ao anexar documentos; não é um
// status de processo e não passa pelo motor de transição.
const StatusDocumentoAnexado = "DOCUMENTO_ANEXADO"

// Prioridades válidas para Process.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

var allowedStatus = map[string]bool{
	StatusCadastroRealizado:    true,
	StatusEmAnaliseDocumentos:  true,
	StatusDocumentosAprovados:  true,
	StatusDocumentosReprovados: true,
}

// IsAllowedStatus informa se o status pertence à lista permitida do motor de
// transição. Validação centralizada: todo caminho de escrita passa por aqui.
func IsAllowedStatus(s string) bool {
	return allowedStatus[s]
}

// IsValidPriority informa se a prioridade é reconhecida.
func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// StatusLabel rótulo de exibição de um status, incluindo os terminais que o
// motor não produz.
func StatusLabel(s string) string {
	switch s {
	case StatusCadastroRealizado:
		return "Cadastro Realizado"
	case StatusEmAnaliseDocumentos:
		return "Em Análise de Documentos"
	case StatusDocumentosAprovados:
		return "Documentos Aprovados"
	case StatusDocumentosReprovados:
		return "Documentos Reprovados"
	case StatusDecisaoFinalAprovada:
		return "Decisão Final Aprovada"
	case StatusDecisaoFinalReprovada:
		return "Decisão Final Reprovada"
	case StatusDocumentoAnexado:
		return "Documento Anexado"
	default:
		return s
	}
}

// Process representa um processo acompanhável de um cliente.
type Process struct {
	ID           string
	Title        string
	Description  string
	Status       string
	Priority     string // LOW, MEDIUM, HIGH
	LoginToken   string // hex maiúsculo, único, lookup case-insensitive
	PasswordHash string // bcrypt da senha de acompanhamento
	UserID       string
	ClientID     string // opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Campos derivados do JOIN com clients nas listagens e detalhes.
	ClientName  string
	ClientEmail string
}
