package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/infrastructure/storage"
)

func TestDiskStore_RoundTrip(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir())
	content := []byte("conteúdo do contrato assinado")

	require.NoError(t, store.Save(entity.OwnerProcess, "proc-1", "contrato.pdf", content))

	got, err := store.Read(entity.OwnerProcess, "proc-1", "contrato.pdf")
	require.NoError(t, err)
	assert.Equal(t, content, got, "download deve devolver bytes idênticos ao upload")
}

func TestDiskStore_SobrescreveMesmoNome(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir())

	require.NoError(t, store.Save(entity.OwnerClient, "cli-1", "rg.png", []byte("v1")))
	require.NoError(t, store.Save(entity.OwnerClient, "cli-1", "rg.png", []byte("v2")))

	got, err := store.Read(entity.OwnerClient, "cli-1", "rg.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got, "segundo upload com o mesmo nome sobrescreve")
}

func TestDiskStore_ArquivoAusenteEhCorrupted(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir())

	_, err := store.Read(entity.OwnerProcess, "proc-1", "sumiu.pdf")
	assert.ErrorIs(t, err, domain.ErrCorrupted,
		"metadado sem bytes é condição Corrupted, não um NotFound comum")
}

func TestDiskStore_RejeitaTraversal(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir())

	for _, name := range []string{"../fuga.txt", "a/b.txt", `a\b.txt`, "..", ""} {
		err := store.Save(entity.OwnerProcess, "proc-1", name, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome %q deve ser rejeitado", name)
	}

	err := store.Save(entity.OwnerProcess, "../proc", "ok.txt", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ownerID com traversal deve ser rejeitado")
}

func TestDiskStore_DonosNaoSeMisturam(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir())

	require.NoError(t, store.Save(entity.OwnerProcess, "p1", "doc.txt", []byte("do processo")))
	require.NoError(t, store.Save(entity.OwnerClient, "p1", "doc.txt", []byte("do cliente")))

	a, err := store.Read(entity.OwnerProcess, "p1", "doc.txt")
	require.NoError(t, err)
	b, err := store.Read(entity.OwnerClient, "p1", "doc.txt")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
