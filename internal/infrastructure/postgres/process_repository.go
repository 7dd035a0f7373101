package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

var _ repository.ProcessRepository = (*ProcessRepo)(nil)

// Colunas de processo com o JOIN a clients para nome/e-mail do cliente.
const processSelect = `
	SELECT p.id, p.title, p.description, p.status, p.priority, p.login_token,
		p.password, p.user_id, COALESCE(p.client_id::text, ''), p.created_at, p.updated_at,
		COALESCE(c.name, ''), COALESCE(c.email, '')
	FROM processes p
	LEFT JOIN clients c ON c.id = p.client_id`

// ProcessRepo implementação de ProcessRepository (usável com pool ou tx).
type ProcessRepo struct {
	q Querier
}

// NewProcessRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProcessRepository(q Querier) *ProcessRepo {
	return &ProcessRepo{q: q}
}

// Create persiste um novo processo.
func (r *ProcessRepo) Create(p *entity.Process) error {
	query := `
		INSERT INTO processes (id, title, description, status, priority, login_token,
			password, user_id, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::uuid, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Title, p.Description, p.Status, p.Priority, p.LoginToken,
		p.PasswordHash, p.UserID, p.ClientID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert process: %w", err)
	}
	return nil
}

// GetByIDAndUser obtém um processo filtrado pelo dono.
func (r *ProcessRepo) GetByIDAndUser(id, userID string) (*entity.Process, error) {
	return r.getOne(processSelect+` WHERE p.id = $1 AND p.user_id = $2`, id, userID)
}

// GetByID obtém um processo sem filtro de dono (visão pública estreita).
func (r *ProcessRepo) GetByID(id string) (*entity.Process, error) {
	return r.getOne(processSelect+` WHERE p.id = $1`, id)
}

// GetByToken obtém um processo pelo token de acompanhamento, case-insensitive.
func (r *ProcessRepo) GetByToken(token string) (*entity.Process, error) {
	return r.getOne(processSelect+` WHERE UPPER(p.login_token) = UPPER($1)`, token)
}

// ListByUser lista processos do dono com filtros parametrizados; Query casa
// por substring no título e no nome do cliente vinculado.
func (r *ProcessRepo) ListByUser(userID string, filter repository.ProcessFilter) ([]*entity.Process, error) {
	query := processSelect + ` WHERE p.user_id = $1`
	args := []any{userID}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (p.title ILIKE $%d OR c.name ILIKE $%d)", n, n)
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND p.priority = $%d", len(args))
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Process
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update atualiza os campos editáveis do processo (token e hash nunca mudam).
func (r *ProcessRepo) Update(p *entity.Process) error {
	query := `
		UPDATE processes SET title = $2, description = $3, status = $4, priority = $5,
			client_id = NULLIF($6, '')::uuid, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Title, p.Description, p.Status, p.Priority, p.ClientID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update process: %w", err)
	}
	return nil
}

// UpdateStatus escreve o novo status e atualiza updated_at.
func (r *ProcessRepo) UpdateStatus(id, status string) error {
	query := `UPDATE processes SET status = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update process status: %w", err)
	}
	return nil
}

// DeleteByClient remove todos os processos de um cliente (passo da cascata).
func (r *ProcessRepo) DeleteByClient(clientID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM processes WHERE client_id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("delete processes by client: %w", err)
	}
	return nil
}

func (r *ProcessRepo) getOne(query string, args ...any) (*entity.Process, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	p, err := scanProcess(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProcess(row rowScanner) (*entity.Process, error) {
	var p entity.Process
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Status, &p.Priority, &p.LoginToken,
		&p.PasswordHash, &p.UserID, &p.ClientID, &p.CreatedAt, &p.UpdatedAt,
		&p.ClientName, &p.ClientEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan process: %w", err)
	}
	return &p, nil
}
