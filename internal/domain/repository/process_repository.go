package repository

import "github.com/sgp-sistemas/sgp-api/internal/domain/entity"

// ProcessFilter filtros de listagem de processos. Query casa por substring em
// title e no nome do cliente; Status e Priority por igualdade exata.
type ProcessFilter struct {
	Query    string
	Status   string
	Priority string
}

// ProcessRepository define a porta de persistência para Process.
type ProcessRepository interface {
	Create(process *entity.Process) error
	// GetByIDAndUser devolve nil quando o processo não existe OU pertence a
	// outro usuário — escolha deliberada de ocultação de informação.
	GetByIDAndUser(id, userID string) (*entity.Process, error)
	// GetByID sem filtro de dono; usado apenas pela visão pública estreita.
	GetByID(id string) (*entity.Process, error)
	// GetByToken faz lookup case-insensitive do token de acompanhamento.
	GetByToken(token string) (*entity.Process, error)
	ListByUser(userID string, filter ProcessFilter) ([]*entity.Process, error)
	Update(process *entity.Process) error
	UpdateStatus(id, status string) error
	DeleteByClient(clientID string) error
}
