package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementação de DocumentRepository sobre as tabelas
// client_documents e process_documents, escolhidas pelo OwnerKind.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

func tableFor(kind entity.OwnerKind) (table, ownerCol string) {
	if kind == entity.OwnerProcess {
		return "process_documents", "process_id"
	}
	return "client_documents", "client_id"
}

// Create persiste o metadado de um documento na tabela do dono.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	table, ownerCol := tableFor(doc.OwnerKind)
	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, filename, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, table, ownerCol)
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.OwnerID, doc.Filename, doc.Type, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByOwner lista os documentos de um dono, mais recentes primeiro.
func (r *DocumentRepo) ListByOwner(kind entity.OwnerKind, ownerID string) ([]*entity.Document, error) {
	table, ownerCol := tableFor(kind)
	query := fmt.Sprintf(`
		SELECT id, %s, filename, type, created_at, updated_at
		FROM %s WHERE %s = $1 ORDER BY created_at DESC`, ownerCol, table, ownerCol)
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Filename, &d.Type, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.OwnerKind = kind
		list = append(list, &d)
	}
	return list, rows.Err()
}

// GetForProcess localiza um documento baixável a partir de um processo:
// primeiro entre os do próprio processo, depois entre os do cliente dono via
// JOIN. O chamador já validou a posse do processo.
func (r *DocumentRepo) GetForProcess(documentID, processID string) (*entity.Document, error) {
	query := `
		SELECT id, process_id, filename, type, created_at, updated_at
		FROM process_documents WHERE id = $1 AND process_id = $2`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, documentID, processID).Scan(
		&d.ID, &d.OwnerID, &d.Filename, &d.Type, &d.CreatedAt, &d.UpdatedAt,
	)
	if err == nil {
		d.OwnerKind = entity.OwnerProcess
		return &d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get process document: %w", err)
	}

	query = `
		SELECT cd.id, cd.client_id, cd.filename, cd.type, cd.created_at, cd.updated_at
		FROM client_documents cd
		INNER JOIN processes p ON p.client_id = cd.client_id
		WHERE cd.id = $1 AND p.id = $2`
	err = r.q.QueryRow(context.Background(), query, documentID, processID).Scan(
		&d.ID, &d.OwnerID, &d.Filename, &d.Type, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client document: %w", err)
	}
	d.OwnerKind = entity.OwnerClient
	return &d, nil
}

// DeleteByClient remove os metadados de documentos do cliente (cascata).
func (r *DocumentRepo) DeleteByClient(clientID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM client_documents WHERE client_id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("delete client documents: %w", err)
	}
	return nil
}

// DeleteByClientProcesses remove os metadados de documentos dos processos do
// cliente (cascata).
func (r *DocumentRepo) DeleteByClientProcesses(clientID string) error {
	query := `
		DELETE FROM process_documents
		WHERE process_id IN (SELECT id FROM processes WHERE client_id = $1)`
	_, err := r.q.Exec(context.Background(), query, clientID)
	if err != nil {
		return fmt.Errorf("delete process documents: %w", err)
	}
	return nil
}
