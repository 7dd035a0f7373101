// Package tracking implementa os dois modos de acesso sem sessão: o modo
// token (credenciais de acompanhamento do processo) e a visão pública
// estreita, deliberadamente mais fraca.
package tracking

import (
	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	appprocess "github.com/sgp-sistemas/sgp-api/internal/application/process"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
	"github.com/sgp-sistemas/sgp-api/pkg/credentials"
)

// UseCase consultas de acompanhamento externo, somente leitura.
type UseCase struct {
	processRepo repository.ProcessRepository
	historyRepo repository.HistoryRepository
	docRepo     repository.DocumentRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	processRepo repository.ProcessRepository,
	historyRepo repository.HistoryRepository,
	docRepo repository.DocumentRepository,
) *UseCase {
	return &UseCase{processRepo: processRepo, historyRepo: historyRepo, docRepo: docRepo}
}

// Track modo token: lookup case-insensitive do token e comparação bcrypt da
// senha. Os modos de falha são distintos: token desconhecido → ErrNotFound;
// token conhecido com senha errada → ErrUnauthorized. Sucesso dá visibilidade
// de leitura sobre este único processo, seu histórico e os metadados de
// documentos do cliente dono — nunca escrita, nunca outros processos.
func (uc *UseCase) Track(in dto.TrackRequest) (*dto.ProcessDetailResponse, error) {
	p, err := uc.processRepo.GetByToken(in.Token)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !credentials.Verify(p.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}

	history, err := uc.historyRepo.ListByProcess(p.ID)
	if err != nil {
		return nil, err
	}
	var docs []*entity.Document
	if p.ClientID != "" {
		docs, err = uc.docRepo.ListByOwner(entity.OwnerClient, p.ClientID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ProcessDetailResponse{
		ProcessResponse: dto.ProcessResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Status:      p.Status,
			Priority:    p.Priority,
			ClientName:  p.ClientName,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		},
		ClientEmail: p.ClientEmail,
		History:     appprocess.ToHistoryResponses(history),
		Documents:   appprocess.ToDocumentResponses(docs),
	}, nil
}

// Public visão pública por id, sem credenciais: apenas título, status,
// prioridade, nome/e-mail do cliente e histórico. Sem descrição e sem
// documentos — capacidade explicitamente mais estreita que o modo token.
func (uc *UseCase) Public(id string) (*dto.PublicProcessResponse, error) {
	p, err := uc.processRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	history, err := uc.historyRepo.ListByProcess(p.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PublicProcessResponse{
		ID:          p.ID,
		Title:       p.Title,
		Status:      p.Status,
		Priority:    p.Priority,
		ClientName:  p.ClientName,
		ClientEmail: p.ClientEmail,
		History:     appprocess.ToHistoryResponses(history),
	}, nil
}
