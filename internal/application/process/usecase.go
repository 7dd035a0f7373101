package process

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
	"github.com/sgp-sistemas/sgp-api/pkg/credentials"
)

// UseCase casos de uso de processos: criação com emissão de credenciais,
// listagem, detalhe, atualização e a transição de status centralizada.
type UseCase struct {
	txRunner    repository.TxRunner
	processRepo repository.ProcessRepository
	clientRepo  repository.ClientRepository
	historyRepo repository.HistoryRepository
	docRepo     repository.DocumentRepository
	mailer      CredentialsMailer
	reports     ReportGenerator
}

// NewUseCase constrói o caso de uso. mailer pode ser nil quando o SMTP não
// está configurado.
func NewUseCase(
	txRunner repository.TxRunner,
	processRepo repository.ProcessRepository,
	clientRepo repository.ClientRepository,
	historyRepo repository.HistoryRepository,
	docRepo repository.DocumentRepository,
	mailer CredentialsMailer,
	reports ReportGenerator,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		processRepo: processRepo,
		clientRepo:  clientRepo,
		historyRepo: historyRepo,
		docRepo:     docRepo,
		mailer:      mailer,
		reports:     reports,
	}
}

// Create cria o processo com credenciais de acompanhamento e o lançamento
// inicial de histórico na mesma transação. As credenciais em texto plano vão
// na resposta exatamente uma vez; depois disso só existe o hash.
func (uc *UseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateProcessRequest) (*dto.CreateProcessResponse, error) {
	client, err := uc.clientRepo.GetByIDAndUser(in.ClientID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	creds, err := credentials.Issue()
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	now := time.Now()
	p := &entity.Process{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		Status:       entity.StatusCadastroRealizado,
		Priority:     priority,
		LoginToken:   creds.LoginToken,
		PasswordHash: creds.PasswordHash,
		UserID:       actor.ID,
		ClientID:     client.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
		ClientName:   client.Name,
		ClientEmail:  client.Email,
	}

	err = uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Processes.Create(p); err != nil {
			return err
		}
		return repos.History.Append(&entity.ProcessHistoryEntry{
			ID:          uuid.New().String(),
			ProcessID:   p.ID,
			Status:      entity.StatusCadastroRealizado,
			Observation: "Processo cadastrado com sucesso",
			Attachments: []string{},
			CreatedBy:   actor.HistoryAuthor(),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.mailer != nil && client.Email != "" {
		if err := uc.mailer.SendProcessCredentials(client.Email, client.Name, creds.LoginToken, creds.Password); err != nil {
			log.Error().Err(err).Str("process_id", p.ID).Msg("envio de credenciais por e-mail falhou")
		}
	}

	return &dto.CreateProcessResponse{
		ProcessResponse: toProcessResponse(p),
		Credentials: dto.ProcessCredentials{
			LoginToken: creds.LoginToken,
			Password:   creds.Password,
		},
	}, nil
}

// List lista os processos do próprio usuário com filtros.
func (uc *UseCase) List(actor entity.Actor, filter repository.ProcessFilter) ([]dto.ProcessResponse, error) {
	list, err := uc.processRepo.ListByUser(actor.ID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProcessResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProcessResponse(p))
	}
	return out, nil
}

// Get devolve o processo com histórico e documentos do cliente vinculado.
func (uc *UseCase) Get(actor entity.Actor, id string) (*dto.ProcessDetailResponse, error) {
	p, err := uc.processRepo.GetByIDAndUser(id, actor.ID)
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
	var docs []*entity.Document
	if p.ClientID != "" {
		docs, err = uc.docRepo.ListByOwner(entity.OwnerClient, p.ClientID)
		if err != nil {
			return nil, err
		}
	}
	return toDetailResponse(p, history, docs), nil
}

// Update atualiza título, descrição, prioridade e, quando presente, o status
// — este último sempre pelo motor de transição, com observação obrigatória.
// Tudo dentro de uma única transação.
func (uc *UseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateProcessRequest) (*dto.ProcessResponse, error) {
	if in.Status != "" {
		if err := validateTransition(in.Status, in.Observation); err != nil {
			return nil, err
		}
	}

	p, err := uc.processRepo.GetByIDAndUser(id, actor.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.ClientID != "" && in.ClientID != p.ClientID {
		client, err := uc.clientRepo.GetByIDAndUser(in.ClientID, actor.ID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		p.ClientID = client.ID
		p.ClientName = client.Name
		p.ClientEmail = client.Email
	}

	p.Title = in.Title
	p.Description = in.Description
	if in.Priority != "" {
		p.Priority = in.Priority
	}
	now := time.Now()
	p.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Processes.Update(p); err != nil {
			return err
		}
		if in.Status == "" {
			return nil
		}
		// Mudança de status sai sempre pelo mesmo caminho de escrita do motor.
		return applyTransition(repos, actor, p.ID, in.Status, in.Observation, now)
	})
	if err != nil {
		return nil, err
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	resp := toProcessResponse(p)
	return &resp, nil
}

// Report gera a ficha do processo em PDF.
func (uc *UseCase) Report(actor entity.Actor, id string) (pdf []byte, filename string, err error) {
	p, err := uc.processRepo.GetByIDAndUser(id, actor.ID)
	if err != nil {
		return nil, "", err
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}
	history, err := uc.historyRepo.ListByProcess(p.ID)
	if err != nil {
		return nil, "", err
	}
	pdf, err = uc.reports.GenerateProcessReport(p, history)
	if err != nil {
		return nil, "", fmt.Errorf("gerar ficha do processo: %w", err)
	}
	return pdf, fmt.Sprintf("processo-%s.pdf", p.LoginToken), nil
}

func toProcessResponse(p *entity.Process) dto.ProcessResponse {
	return dto.ProcessResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toDetailResponse(p *entity.Process, history []*entity.ProcessHistoryEntry, docs []*entity.Document) *dto.ProcessDetailResponse {
	return &dto.ProcessDetailResponse{
		ProcessResponse: toProcessResponse(p),
		ClientEmail:     p.ClientEmail,
		History:         ToHistoryResponses(history),
		Documents:       ToDocumentResponses(docs),
	}
}

// ToHistoryResponses converte lançamentos de histórico para o DTO de saída.
func ToHistoryResponses(history []*entity.ProcessHistoryEntry) []dto.HistoryEntryResponse {
	out := make([]dto.HistoryEntryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, dto.HistoryEntryResponse{
			ID:          h.ID,
			Status:      h.Status,
			Observation: h.Observation,
			Attachments: h.Attachments,
			CreatedBy:   h.CreatedBy,
			CreatedAt:   h.CreatedAt,
		})
	}
	return out
}

// ToDocumentResponses converte metadados de documentos para o DTO de saída.
func ToDocumentResponses(docs []*entity.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.DocumentResponse{
			ID:        d.ID,
			Name:      d.Filename,
			Type:      d.Type,
			CreatedAt: d.CreatedAt,
		})
	}
	return out
}
