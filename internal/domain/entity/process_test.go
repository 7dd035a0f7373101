package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
)

func TestIsAllowedStatus_ListaPermitida(t *testing.T) {
	allowed := []string{
		entity.StatusCadastroRealizado,
		entity.StatusEmAnaliseDocumentos,
		entity.StatusDocumentosAprovados,
		entity.StatusDocumentosReprovados,
	}
	for _, s := range allowed {
		assert.True(t, entity.IsAllowedStatus(s), "status %s deve ser permitido", s)
	}
}

func TestIsAllowedStatus_RejeitaForaDaLista(t *testing.T) {
	rejected := []string{
		"",
		"BOGUS",
		"cadastro_realizado", // casing importa no enum
		entity.StatusDocumentoAnexado,
		// Terminais de exibição nunca são produzidos pelo motor
		entity.StatusDecisaoFinalAprovada,
		entity.StatusDecisaoFinalReprovada,
	}
	for _, s := range rejected {
		assert.False(t, entity.IsAllowedStatus(s), "status %q não pode ser permitido", s)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Em Análise de Documentos", entity.StatusLabel(entity.StatusEmAnaliseDocumentos))
	assert.Equal(t, "Decisão Final Aprovada", entity.StatusLabel(entity.StatusDecisaoFinalAprovada))
	// Status desconhecido volta como veio (histórico aceita texto livre)
	assert.Equal(t, "QUALQUER_COISA", entity.StatusLabel("QUALQUER_COISA"))
}

func TestActor_HistoryAuthor(t *testing.T) {
	a := entity.Actor{ID: "1", Email: "ana@sgp.com"}
	assert.Equal(t, "ana@sgp.com", a.HistoryAuthor())

	anon := entity.Actor{ID: "1"}
	assert.Equal(t, "sistema", anon.HistoryAuthor())
}
