package repository

import "github.com/sgp-sistemas/sgp-api/internal/domain/entity"

// ClientFilter filtros de listagem de clientes. Query casa por substring em
// name/email/document; Type e Status casam por igualdade exata.
type ClientFilter struct {
	Query  string
	Type   string
	Status string
}

// ClientRepository define a porta de persistência para Client.
// Toda leitura e escrita é filtrada pelo dono: um registro de outro usuário é
// indistinguível de um registro inexistente.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByIDAndUser(id, userID string) (*entity.Client, error)
	ListByUser(userID string, filter ClientFilter) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
