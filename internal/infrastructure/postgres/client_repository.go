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

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, email, phone, document, rg, document_type, type,
	address, city, state, postal_code, status, notes, user_id, created_at, updated_at`

// Leitura com COALESCE nas colunas anuláveis: um NULL gravado por fora da
// aplicação não pode quebrar o Scan em string.
const clientSelect = `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(document, ''), COALESCE(rg, ''), COALESCE(document_type, ''), type,
	COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''),
	COALESCE(postal_code, ''), status, COALESCE(notes, ''), user_id, created_at, updated_at
	FROM clients`

// ClientRepo implementação de ClientRepository (usável com pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Document, client.RG,
		client.DocumentType, client.Type, client.Address, client.City, client.State,
		client.PostalCode, client.Status, client.Notes, client.UserID,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByIDAndUser obtém um cliente filtrado pelo dono. Registro de outro
// usuário devolve nil, indistinguível de inexistente.
func (r *ClientRepo) GetByIDAndUser(id, userID string) (*entity.Client, error) {
	query := clientSelect + ` WHERE id = $1 AND user_id = $2`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Document, &c.RG, &c.DocumentType, &c.Type,
		&c.Address, &c.City, &c.State, &c.PostalCode, &c.Status, &c.Notes, &c.UserID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByUser lista clientes do dono com filtros. Os filtros viram parâmetros
// posicionais; nunca concatenação de valores na query.
func (r *ClientRepo) ListByUser(userID string, filter repository.ClientFilter) ([]*entity.Client, error) {
	query := clientSelect + ` WHERE user_id = $1`
	args := []any{userID}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR document ILIKE $%d)", n, n, n)
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Document, &c.RG, &c.DocumentType, &c.Type,
			&c.Address, &c.City, &c.State, &c.PostalCode, &c.Status, &c.Notes, &c.UserID,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, email = $3, phone = $4, document = $5, rg = $6,
			document_type = $7, type = $8, address = $9, city = $10, state = $11,
			postal_code = $12, status = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Document, client.RG,
		client.DocumentType, client.Type, client.Address, client.City, client.State,
		client.PostalCode, client.Status, client.Notes, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete remove um cliente por ID. A posse já foi verificada pelo chamador;
// processos, histórico e documentos saem antes, na mesma transação.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
