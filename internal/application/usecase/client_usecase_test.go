package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgp-sistemas/sgp-api/internal/application/apptest"
	appdocument "github.com/sgp-sistemas/sgp-api/internal/application/document"
	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/application/usecase"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

var (
	actorAna = entity.Actor{ID: "00000000-0000-0000-0000-0000000000a1", Email: "ana@sgp.com", Role: entity.RoleUser}
	actorBob = entity.Actor{ID: "00000000-0000-0000-0000-0000000000b2", Email: "bob@sgp.com", Role: entity.RoleUser}
)

func newFixture(t *testing.T) (*usecase.ClientUseCase, *apptest.Store, *apptest.MemFiles) {
	t.Helper()
	store := apptest.NewStore()
	files := apptest.NewMemFiles()
	uc := usecase.NewClientUseCase(store.Tx(), store.Clients(), store.Documents(), files)
	return uc, store, files
}

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

func TestCreate_ComDocumentosAnexos(t *testing.T) {
	uc, store, files := newFixture(t)

	resp, err := uc.Create(context.Background(), actorAna, dto.CreateClientRequest{
		Name:  "Maria Silva",
		Email: "maria@example.com",
	}, []appdocument.Upload{
		{Filename: "rg.pdf", Data: []byte("frente e verso")},
		{Filename: "comprovante.pdf", Data: []byte("endereço"), Type: entity.DocTypeAdditional},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ClientActive, resp.Status, "cliente novo nasce ativo")
	assert.Equal(t, entity.ClientTypePF, resp.Type, "tipo ausente assume PF")
	assert.Equal(t, "RG", resp.DocumentType)

	docs, err := store.Documents().ListByOwner(entity.OwnerClient, resp.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	data, err := files.Read(entity.OwnerClient, resp.ID, "rg.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("frente e verso"), data)
}

func TestCreate_NomeDeArquivoInvalido_NadaPersiste(t *testing.T) {
	uc, _, files := newFixture(t)

	_, err := uc.Create(context.Background(), actorAna, dto.CreateClientRequest{
		Name: "Maria Silva",
	}, []appdocument.Upload{
		{Filename: "ok.pdf", Data: []byte("x")},
		{Filename: "../fuga.pdf", Data: []byte("x")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, files.Len(), "validação vem antes de qualquer escrita")
}

// ─────────────────────────────────────────────────────────────────────────────
// List / Get / Update
// ─────────────────────────────────────────────────────────────────────────────

func TestList_FiltrosDeBuscaTipoEStatus(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, actorAna, dto.CreateClientRequest{Name: "Maria Silva", Email: "maria@example.com", Type: entity.ClientTypePF}, nil)
	require.NoError(t, err)
	_, err = uc.Create(ctx, actorAna, dto.CreateClientRequest{Name: "Acme Ltda", Document: "12345678000190", Type: entity.ClientTypePJ}, nil)
	require.NoError(t, err)
	_, err = uc.Create(ctx, actorBob, dto.CreateClientRequest{Name: "Maria do Bob"}, nil)
	require.NoError(t, err)

	all, err := uc.List(actorAna, repository.ClientFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "lista só enxerga clientes do próprio usuário")

	byQuery, err := uc.List(actorAna, repository.ClientFilter{Query: "maria"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "Maria Silva", byQuery[0].Name)

	byDoc, err := uc.List(actorAna, repository.ClientFilter{Query: "12345678"})
	require.NoError(t, err)
	require.Len(t, byDoc, 1, "busca casa também por documento")
	assert.Equal(t, "Acme Ltda", byDoc[0].Name)

	byType, err := uc.List(actorAna, repository.ClientFilter{Type: entity.ClientTypePJ})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Acme Ltda", byType[0].Name)
}

func TestGet_DeOutroUsuario_NotFound(t *testing.T) {
	uc, _, _ := newFixture(t)

	created, err := uc.Create(context.Background(), actorBob, dto.CreateClientRequest{Name: "Cliente do Bob"}, nil)
	require.NoError(t, err)

	_, err = uc.Get(actorAna, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "registro alheio é indistinguível de inexistente")
}

func TestUpdate_AlteraCampos(t *testing.T) {
	uc, _, _ := newFixture(t)

	created, err := uc.Create(context.Background(), actorAna, dto.CreateClientRequest{Name: "Maria Silva"}, nil)
	require.NoError(t, err)

	updated, err := uc.Update(actorAna, created.ID, dto.UpdateClientRequest{
		Name:   "Maria Silva Santos",
		Email:  "maria.santos@example.com",
		Status: entity.ClientInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva Santos", updated.Name)
	assert.Equal(t, entity.ClientInactive, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete (cascata)
// ─────────────────────────────────────────────────────────────────────────────

func TestDelete_CascataRemoveProcessosHistoricoEDocumentos(t *testing.T) {
	uc, store, _ := newFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, actorAna, dto.CreateClientRequest{Name: "Maria Silva"},
		[]appdocument.Upload{{Filename: "rg.pdf", Data: []byte("x")}})
	require.NoError(t, err)

	// Processo do cliente com histórico e documento anexado.
	now := time.Now()
	p := &entity.Process{
		ID: uuid.New().String(), Title: "Processo da Maria", Status: entity.StatusCadastroRealizado,
		Priority: entity.PriorityMedium, LoginToken: "AABBCCDDEEFF", PasswordHash: "x",
		UserID: actorAna.ID, ClientID: created.ID, CreatedAt: now, UpdatedAt: now,
	}
	store.SeedProcess(p)
	require.NoError(t, store.History().Append(&entity.ProcessHistoryEntry{
		ID: uuid.New().String(), ProcessID: p.ID, Status: entity.StatusCadastroRealizado,
		Observation: "Processo cadastrado com sucesso", CreatedBy: "sistema", CreatedAt: now,
	}))
	store.SeedDocument(&entity.Document{
		ID: uuid.New().String(), OwnerKind: entity.OwnerProcess, OwnerID: p.ID,
		Filename: "contrato.pdf", Type: entity.DocTypePersonal, CreatedAt: now, UpdatedAt: now,
	})

	require.NoError(t, uc.Delete(ctx, actorAna, created.ID))

	_, err = uc.Get(actorAna, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, store.ProcessByID(p.ID))
	assert.Empty(t, store.HistoryOf(p.ID))

	clientDocs, err := store.Documents().ListByOwner(entity.OwnerClient, created.ID)
	require.NoError(t, err)
	assert.Empty(t, clientDocs)
	processDocs, err := store.Documents().ListByOwner(entity.OwnerProcess, p.ID)
	require.NoError(t, err)
	assert.Empty(t, processDocs)
}

func TestDelete_DeOutroUsuario_NotFound(t *testing.T) {
	uc, store, _ := newFixture(t)

	created, err := uc.Create(context.Background(), actorBob, dto.CreateClientRequest{Name: "Cliente do Bob"}, nil)
	require.NoError(t, err)

	err = uc.Delete(context.Background(), actorAna, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotNil(t, store.ClientByID(created.ID), "cliente do Bob permanece intacto")
}

func TestDelete_TransacaoDesfeita_NadaSome(t *testing.T) {
	uc, store, _ := newFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, actorAna, dto.CreateClientRequest{Name: "Maria Silva"},
		[]appdocument.Upload{{Filename: "rg.pdf", Data: []byte("x")}})
	require.NoError(t, err)

	store.FailTx = true
	err = uc.Delete(ctx, actorAna, created.ID)
	store.FailTx = false
	require.Error(t, err)

	assert.NotNil(t, store.ClientByID(created.ID), "rollback preserva o cliente")
	docs, err := store.Documents().ListByOwner(entity.OwnerClient, created.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 1, "rollback preserva os documentos")
}
