package repository

import "github.com/sgp-sistemas/sgp-api/internal/domain/entity"

// HistoryRepository porta do livro-razão de histórico. Append-only: não há
// update nem delete de lançamento individual; a única remoção é a cascata
// disparada pela deleção do cliente/processo dono.
type HistoryRepository interface {
	Append(entry *entity.ProcessHistoryEntry) error
	// ListByProcess devolve os lançamentos em ordem decrescente de criação,
	// com o seq monotônico como desempate determinístico.
	ListByProcess(processID string) ([]*entity.ProcessHistoryEntry, error)
	// DeleteByClientProcesses remove o histórico de todos os processos do
	// cliente; primeiro passo da cascata de deleção.
	DeleteByClientProcesses(clientID string) error
}
