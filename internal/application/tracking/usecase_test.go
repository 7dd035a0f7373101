package tracking_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgp-sistemas/sgp-api/internal/application/apptest"
	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/application/tracking"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/pkg/credentials"
)

func newFixture(t *testing.T) (*tracking.UseCase, *apptest.Store, *entity.Process, *credentials.Credentials) {
	t.Helper()
	store := apptest.NewStore()

	client := &entity.Client{
		ID:     uuid.New().String(),
		Name:   "Maria Silva",
		Email:  "maria@example.com",
		Type:   entity.ClientTypePF,
		Status: entity.ClientActive,
		UserID: "dono",
	}
	store.SeedClient(client)

	creds, err := credentials.Issue()
	require.NoError(t, err)

	now := time.Now()
	p := &entity.Process{
		ID:           uuid.New().String(),
		Title:        "Abertura de empresa",
		Description:  "Descrição interna detalhada",
		Status:       entity.StatusEmAnaliseDocumentos,
		Priority:     entity.PriorityHigh,
		LoginToken:   creds.LoginToken,
		PasswordHash: creds.PasswordHash,
		UserID:       "dono",
		ClientID:     client.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	store.SeedProcess(p)

	require.NoError(t, store.History().Append(&entity.ProcessHistoryEntry{
		ID: uuid.New().String(), ProcessID: p.ID,
		Status: entity.StatusCadastroRealizado, Observation: "Processo cadastrado com sucesso",
		CreatedBy: "sistema", CreatedAt: now,
	}))
	store.SeedDocument(&entity.Document{
		ID: uuid.New().String(), OwnerKind: entity.OwnerClient, OwnerID: client.ID,
		Filename: "rg.pdf", Type: entity.DocTypePersonal, CreatedAt: now, UpdatedAt: now,
	})

	uc := tracking.NewUseCase(store.Processes(), store.History(), store.Documents())
	return uc, store, p, creds
}

// ─────────────────────────────────────────────────────────────────────────────
// Track (modo token)
// ─────────────────────────────────────────────────────────────────────────────

func TestTrack_CredenciaisValidasDevolvemDetalhe(t *testing.T) {
	uc, _, p, creds := newFixture(t)

	resp, err := uc.Track(dto.TrackRequest{Token: creds.LoginToken, Password: creds.Password})
	require.NoError(t, err)

	assert.Equal(t, p.ID, resp.ID)
	assert.Equal(t, "Abertura de empresa", resp.Title)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, "maria@example.com", resp.ClientEmail)
	require.Len(t, resp.History, 1)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "rg.pdf", resp.Documents[0].Name)
}

func TestTrack_TokenCaseInsensitive(t *testing.T) {
	uc, _, _, creds := newFixture(t)

	resp, err := uc.Track(dto.TrackRequest{
		Token:    strings.ToLower(creds.LoginToken),
		Password: creds.Password,
	})
	require.NoError(t, err)
	assert.Equal(t, "Abertura de empresa", resp.Title)
}

// Token desconhecido e senha errada são falhas distintas: quem digita o token
// errado precisa de outra mensagem do que quem erra só a senha.
func TestTrack_TokenDesconhecido_NotFound(t *testing.T) {
	uc, _, _, creds := newFixture(t)

	_, err := uc.Track(dto.TrackRequest{Token: "FFFFFFFFFFFF", Password: creds.Password})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrack_SenhaErrada_Unauthorized(t *testing.T) {
	uc, _, _, creds := newFixture(t)

	_, err := uc.Track(dto.TrackRequest{Token: creds.LoginToken, Password: "00000000"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ─────────────────────────────────────────────────────────────────────────────
// Public (visão estreita)
// ─────────────────────────────────────────────────────────────────────────────

func TestPublic_DevolveVisaoEstreita(t *testing.T) {
	uc, _, p, _ := newFixture(t)

	resp, err := uc.Public(p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, resp.ID)
	assert.Equal(t, "Abertura de empresa", resp.Title)
	assert.Equal(t, entity.StatusEmAnaliseDocumentos, resp.Status)
	assert.Equal(t, entity.PriorityHigh, resp.Priority)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	require.Len(t, resp.History, 1)
}

func TestPublic_IdInexistente_NotFound(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	_, err := uc.Public(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
