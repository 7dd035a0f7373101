package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sgp-sistemas/sgp-api/internal/application/document"
	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes com visibilidade por dono e deleção em
// cascata transacional.
type ClientUseCase struct {
	txRunner   repository.TxRunner
	clientRepo repository.ClientRepository
	docRepo    repository.DocumentRepository
	files      document.FileStore
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(
	txRunner repository.TxRunner,
	clientRepo repository.ClientRepository,
	docRepo repository.DocumentRepository,
	files document.FileStore,
) *ClientUseCase {
	return &ClientUseCase{txRunner: txRunner, clientRepo: clientRepo, docRepo: docRepo, files: files}
}

// Create cria o cliente e registra os documentos enviados junto. Os bytes são
// gravados primeiro; cliente + metadados entram numa única transação.
func (uc *ClientUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateClientRequest, files []document.Upload) (*dto.ClientResponse, error) {
	for _, f := range files {
		if err := document.ValidateFilename(f.Filename); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	client := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Document:     in.Document,
		RG:           in.RG,
		DocumentType: defaultStr(in.DocumentType, "RG"),
		Type:         defaultStr(in.Type, entity.ClientTypePF),
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
		Status:       entity.ClientActive,
		Notes:        in.Notes,
		UserID:       actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, f := range files {
		if err := uc.files.Save(entity.OwnerClient, client.ID, f.Filename, f.Data); err != nil {
			return nil, err
		}
	}

	err := uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Clients.Create(client); err != nil {
			return err
		}
		for _, f := range files {
			docType := f.Type
			if docType == "" {
				docType = entity.DocTypePersonal
			}
			doc := &entity.Document{
				ID:        uuid.New().String(),
				OwnerKind: entity.OwnerClient,
				OwnerID:   client.ID,
				Filename:  f.Filename,
				Type:      docType,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := repos.Documents.Create(doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista os clientes do próprio usuário com filtros.
func (uc *ClientUseCase) List(actor entity.Actor, filter repository.ClientFilter) ([]dto.ClientResponse, error) {
	list, err := uc.clientRepo.ListByUser(actor.ID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Get devolve um cliente do próprio usuário; de outro dono é ErrNotFound.
func (uc *ClientUseCase) Get(actor entity.Actor, id string) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByIDAndUser(id, actor.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// Update atualiza um cliente do próprio usuário (PUT e PATCH compartilham o
// corpo completo, como no fluxo original).
func (uc *ClientUseCase) Update(actor entity.Actor, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByIDAndUser(id, actor.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.Document = in.Document
	c.RG = in.RG
	c.DocumentType = defaultStr(in.DocumentType, c.DocumentType)
	c.Type = defaultStr(in.Type, c.Type)
	c.Address = in.Address
	c.City = in.City
	c.State = in.State
	c.PostalCode = in.PostalCode
	c.Status = defaultStr(in.Status, c.Status)
	c.Notes = in.Notes
	c.UpdatedAt = time.Now()

	if err := uc.clientRepo.Update(c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Delete remove o cliente em cascata, numa única transação e na ordem:
// histórico dos processos, documentos dos processos, processos, documentos do
// cliente, cliente. Busca posterior por qualquer desses ids é ErrNotFound.
func (uc *ClientUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	c, err := uc.clientRepo.GetByIDAndUser(id, actor.ID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.History.DeleteByClientProcesses(c.ID); err != nil {
			return err
		}
		if err := repos.Documents.DeleteByClientProcesses(c.ID); err != nil {
			return err
		}
		if err := repos.Processes.DeleteByClient(c.ID); err != nil {
			return err
		}
		if err := repos.Documents.DeleteByClient(c.ID); err != nil {
			return err
		}
		return repos.Clients.Delete(c.ID)
	})
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Document:     c.Document,
		RG:           c.RG,
		DocumentType: c.DocumentType,
		Type:         c.Type,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
		Status:       c.Status,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
