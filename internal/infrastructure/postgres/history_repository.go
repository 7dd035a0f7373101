package postgres

import (
	"context"
	"fmt"

	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementação de HistoryRepository (usável com pool ou tx).
// Append-only: não existe UPDATE nesta tabela.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Append insere um lançamento. O seq (BIGSERIAL) é atribuído pelo banco e
// serve de desempate monotônico na leitura.
func (r *HistoryRepo) Append(e *entity.ProcessHistoryEntry) error {
	query := `
		INSERT INTO process_history (entry_id, process_id, status, observation, attachments, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	attachments := e.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ProcessID, e.Status, e.Observation, attachments, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// ListByProcess devolve o histórico em ordem decrescente de criação; seq
// desempata lançamentos com o mesmo created_at de forma determinística.
func (r *HistoryRepo) ListByProcess(processID string) ([]*entity.ProcessHistoryEntry, error) {
	query := `
		SELECT seq, entry_id, process_id, status, COALESCE(observation, ''), attachments, created_by, created_at
		FROM process_history
		WHERE process_id = $1
		ORDER BY created_at DESC, seq DESC`
	rows, err := r.q.Query(context.Background(), query, processID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProcessHistoryEntry
	for rows.Next() {
		var e entity.ProcessHistoryEntry
		if err := rows.Scan(&e.Seq, &e.ID, &e.ProcessID, &e.Status, &e.Observation, &e.Attachments, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// DeleteByClientProcesses remove o histórico de todos os processos do cliente
// (primeiro passo da cascata de deleção).
func (r *HistoryRepo) DeleteByClientProcesses(clientID string) error {
	query := `
		DELETE FROM process_history
		WHERE process_id IN (SELECT id FROM processes WHERE client_id = $1)`
	_, err := r.q.Exec(context.Background(), query, clientID)
	if err != nil {
		return fmt.Errorf("delete history by client: %w", err)
	}
	return nil
}
