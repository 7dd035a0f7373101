// Package document implementa o Document Store: associação de arquivos
// enviados a clientes e processos, com bytes em disco e metadados no banco.
package document

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

// UseCase upload e download de documentos de processo.
type UseCase struct {
	txRunner    repository.TxRunner
	processRepo repository.ProcessRepository
	docRepo     repository.DocumentRepository
	files       FileStore
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner repository.TxRunner,
	processRepo repository.ProcessRepository,
	docRepo repository.DocumentRepository,
	files FileStore,
) *UseCase {
	return &UseCase{txRunner: txRunner, processRepo: processRepo, docRepo: docRepo, files: files}
}

// ValidateFilename fecha o risco de directory traversal: nomes com separador
// de caminho ou ".." são rejeitados antes de tocar o disco.
func ValidateFilename(name string) error {
	if name == "" {
		return domain.ErrMissingField
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return domain.ErrInvalidInput
	}
	return nil
}

// Upload anexa um documento a um processo do próprio usuário. Os bytes são
// gravados primeiro; metadado e lançamento DOCUMENTO_ANEXADO entram juntos na
// transação. Se o commit falhar, os bytes órfãos ficam como lixo aceitável
// (limpeza fora de banda), em vez de travar a transação em rollback de disco.
func (uc *UseCase) Upload(ctx context.Context, actor entity.Actor, processID string, file Upload) (*dto.UploadResponse, error) {
	if err := ValidateFilename(file.Filename); err != nil {
		return nil, err
	}
	p, err := uc.processRepo.GetByIDAndUser(processID, actor.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.files.Save(entity.OwnerProcess, p.ID, file.Filename, file.Data); err != nil {
		return nil, err
	}

	docType := file.Type
	if docType == "" {
		docType = entity.DocTypePersonal
	}
	now := time.Now()
	doc := &entity.Document{
		ID:        uuid.New().String(),
		OwnerKind: entity.OwnerProcess,
		OwnerID:   p.ID,
		Filename:  file.Filename,
		Type:      docType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Documents.Create(doc); err != nil {
			return err
		}
		return repos.History.Append(&entity.ProcessHistoryEntry{
			ID:          uuid.New().String(),
			ProcessID:   p.ID,
			Status:      entity.StatusDocumentoAnexado,
			Observation: "Documento anexado: " + file.Filename,
			Attachments: []string{file.Filename},
			CreatedBy:   actor.HistoryAuthor(),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		Success: true,
		Document: dto.DocumentResponse{
			ID:        doc.ID,
			Name:      doc.Filename,
			Type:      doc.Type,
			CreatedAt: doc.CreatedAt,
		},
	}, nil
}

// Download devolve os bytes e o nome original de um documento alcançável a
// partir de um processo do usuário. Metadado ausente → ErrNotFound; metadado
// presente sem os bytes correspondentes → ErrCorrupted (condições distintas:
// são dois recursos que falham de forma independente).
func (uc *UseCase) Download(ctx context.Context, actor entity.Actor, processID, documentID string) (data []byte, filename string, err error) {
	p, err := uc.processRepo.GetByIDAndUser(processID, actor.ID)
	if err != nil {
		return nil, "", err
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}

	doc, err := uc.docRepo.GetForProcess(documentID, p.ID)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}

	data, err = uc.files.Read(doc.OwnerKind, doc.OwnerID, doc.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrCorrupted) {
			return nil, "", domain.ErrCorrupted
		}
		return nil, "", err
	}
	return data, doc.Filename, nil
}
