package document_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgp-sistemas/sgp-api/internal/application/apptest"
	appdocument "github.com/sgp-sistemas/sgp-api/internal/application/document"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
)

var (
	actorAna = entity.Actor{ID: "00000000-0000-0000-0000-0000000000a1", Email: "ana@sgp.com", Role: entity.RoleUser}
	actorBob = entity.Actor{ID: "00000000-0000-0000-0000-0000000000b2", Email: "bob@sgp.com", Role: entity.RoleUser}
)

func newFixture(t *testing.T) (*appdocument.UseCase, *apptest.Store, *apptest.MemFiles, *entity.Process) {
	t.Helper()
	store := apptest.NewStore()
	files := apptest.NewMemFiles()

	client := &entity.Client{
		ID: uuid.New().String(), Name: "Maria Silva", Email: "maria@example.com",
		Type: entity.ClientTypePF, Status: entity.ClientActive, UserID: actorAna.ID,
	}
	store.SeedClient(client)

	now := time.Now()
	p := &entity.Process{
		ID: uuid.New().String(), Title: "Processo", Status: entity.StatusCadastroRealizado,
		Priority: entity.PriorityMedium, LoginToken: "A1B2C3D4E5F6", PasswordHash: "x",
		UserID: actorAna.ID, ClientID: client.ID, CreatedAt: now, UpdatedAt: now,
	}
	store.SeedProcess(p)

	uc := appdocument.NewUseCase(store.Tx(), store.Processes(), store.Documents(), files)
	return uc, store, files, p
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidateFilename
// ─────────────────────────────────────────────────────────────────────────────

func TestValidateFilename(t *testing.T) {
	assert.NoError(t, appdocument.ValidateFilename("contrato.pdf"))
	assert.ErrorIs(t, appdocument.ValidateFilename(""), domain.ErrMissingField)

	for _, name := range []string{
		"../segredo.txt",
		"..\\segredo.txt",
		"a/b.pdf",
		"a\\b.pdf",
		"..",
	} {
		assert.ErrorIs(t, appdocument.ValidateFilename(name), domain.ErrInvalidInput, name)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Upload
// ─────────────────────────────────────────────────────────────────────────────

func TestUpload_GravaBytesMetadadoEHistorico(t *testing.T) {
	uc, store, files, p := newFixture(t)

	resp, err := uc.Upload(context.Background(), actorAna, p.ID, appdocument.Upload{
		Filename: "contrato.pdf",
		Data:     []byte("conteúdo do contrato"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "contrato.pdf", resp.Document.Name)
	assert.Equal(t, entity.DocTypePersonal, resp.Document.Type, "tipo ausente assume personal")

	data, err := files.Read(entity.OwnerProcess, p.ID, "contrato.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("conteúdo do contrato"), data)

	history := store.HistoryOf(p.ID)
	require.Len(t, history, 1)
	assert.Equal(t, entity.StatusDocumentoAnexado, history[0].Status)
	assert.Equal(t, []string{"contrato.pdf"}, history[0].Attachments)
}

func TestUpload_ProcessoDeOutroUsuario_NotFound(t *testing.T) {
	uc, _, files, p := newFixture(t)

	_, err := uc.Upload(context.Background(), actorBob, p.ID, appdocument.Upload{
		Filename: "contrato.pdf",
		Data:     []byte("x"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, files.Len(), "nada tocou o armazenamento")
}

func TestUpload_NomeComTraversal_Rejeitado(t *testing.T) {
	uc, store, files, p := newFixture(t)

	_, err := uc.Upload(context.Background(), actorAna, p.ID, appdocument.Upload{
		Filename: "../../etc/passwd",
		Data:     []byte("x"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, files.Len())
	assert.Empty(t, store.HistoryOf(p.ID))
}

func TestUpload_MesmoNomeSobrescreve(t *testing.T) {
	uc, _, files, p := newFixture(t)

	ctx := context.Background()
	_, err := uc.Upload(ctx, actorAna, p.ID, appdocument.Upload{Filename: "doc.pdf", Data: []byte("v1")})
	require.NoError(t, err)
	_, err = uc.Upload(ctx, actorAna, p.ID, appdocument.Upload{Filename: "doc.pdf", Data: []byte("v2")})
	require.NoError(t, err)

	data, err := files.Read(entity.OwnerProcess, p.ID, "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

// ─────────────────────────────────────────────────────────────────────────────
// Download
// ─────────────────────────────────────────────────────────────────────────────

func TestDownload_RoundTripIdentico(t *testing.T) {
	uc, _, _, p := newFixture(t)
	payload := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF, 0x01}

	ctx := context.Background()
	resp, err := uc.Upload(ctx, actorAna, p.ID, appdocument.Upload{Filename: "binario.pdf", Data: payload})
	require.NoError(t, err)

	data, filename, err := uc.Download(ctx, actorAna, p.ID, resp.Document.ID)
	require.NoError(t, err)
	assert.Equal(t, "binario.pdf", filename)
	assert.Equal(t, payload, data, "download devolve byte a byte o que subiu")
}

func TestDownload_DocumentoDoClienteViaProcesso(t *testing.T) {
	uc, store, files, p := newFixture(t)

	// Documento do cliente dono do processo é alcançável pelo processo.
	now := time.Now()
	doc := &entity.Document{
		ID: uuid.New().String(), OwnerKind: entity.OwnerClient, OwnerID: p.ClientID,
		Filename: "rg.pdf", Type: entity.DocTypePersonal, CreatedAt: now, UpdatedAt: now,
	}
	store.SeedDocument(doc)
	require.NoError(t, files.Save(entity.OwnerClient, p.ClientID, "rg.pdf", []byte("rg da maria")))

	data, filename, err := uc.Download(context.Background(), actorAna, p.ID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "rg.pdf", filename)
	assert.Equal(t, []byte("rg da maria"), data)
}

func TestDownload_MetadadoInexistente_NotFound(t *testing.T) {
	uc, _, _, p := newFixture(t)

	_, _, err := uc.Download(context.Background(), actorAna, p.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Metadado presente sem os bytes é outra falha: corrupção, não ausência.
func TestDownload_MetadadoSemBytes_Corrupted(t *testing.T) {
	uc, _, files, p := newFixture(t)

	ctx := context.Background()
	resp, err := uc.Upload(ctx, actorAna, p.ID, appdocument.Upload{Filename: "sumiu.pdf", Data: []byte("x")})
	require.NoError(t, err)

	files.Delete(entity.OwnerProcess, p.ID, "sumiu.pdf")

	_, _, err = uc.Download(ctx, actorAna, p.ID, resp.Document.ID)
	assert.ErrorIs(t, err, domain.ErrCorrupted)
}
