package process

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

// validateTransition aplica as regras de entrada do motor de transição, na
// ordem: status fora da lista permitida, depois observação vazia (obrigatória
// em todo caminho de escrita, para auditabilidade). Todo caminho que muda
// status passa por aqui — Transition e o Update genérico.
func validateTransition(status, observation string) error {
	if !entity.IsAllowedStatus(status) {
		return domain.ErrInvalidStatus
	}
	if observation == "" {
		return domain.ErrMissingField
	}
	return nil
}

// applyTransition escreve o novo status e o lançamento de histórico dentro da
// transação corrente. Pressupõe entrada já validada e posse já verificada.
func applyTransition(repos repository.TxRepos, actor entity.Actor, processID, status, observation string, now time.Time) error {
	if err := repos.Processes.UpdateStatus(processID, status); err != nil {
		return err
	}
	return repos.History.Append(&entity.ProcessHistoryEntry{
		ID:          uuid.New().String(),
		ProcessID:   processID,
		Status:      status,
		Observation: observation,
		CreatedBy:   actor.HistoryAuthor(),
		CreatedAt:   now,
	})
}

// Transition é o ponto de entrada dedicado do motor de transição de status.
// Regras, nesta ordem:
//  1. ErrInvalidStatus se o status não pertence à lista permitida.
//  2. ErrMissingField se a observação está vazia.
//  3. ErrNotFound se o processo não existe ou pertence a outro usuário.
//  4. Sucesso: atualiza status + updated_at e lança exatamente um registro
//     de histórico, na mesma transação.
//
// Não há grafo de transições além da lista permitida: retrocessos e no-ops
// são aceitos. Duas transições concorrentes no mesmo processo disputam o
// campo status (last-write-wins), cada uma com seu próprio lançamento.
func (uc *UseCase) Transition(ctx context.Context, actor entity.Actor, processID, status, observation string) error {
	if err := validateTransition(status, observation); err != nil {
		return err
	}

	p, err := uc.processRepo.GetByIDAndUser(processID, actor.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		return applyTransition(repos, actor, p.ID, status, observation, now)
	})
}
