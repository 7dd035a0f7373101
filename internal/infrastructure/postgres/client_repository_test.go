package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Colunas anuláveis de clients no schema; lidas em string, então toda leitura
// precisa passar por COALESCE para tolerar NULL gravado por fora da aplicação.
var nullableClientColumns = []string{
	"email", "phone", "document", "rg", "document_type",
	"address", "city", "state", "postal_code", "notes",
}

func TestClientSelect_CoalesceNasColunasAnulaveis(t *testing.T) {
	for _, col := range nullableClientColumns {
		assert.Contains(t, clientSelect, "COALESCE("+col+", '')", "coluna %s sem COALESCE", col)
		assert.NotContains(t, clientSelect, ", "+col+",", "coluna %s lida crua", col)
	}
}

func TestProcessSelect_CoalesceNosCamposDoJoin(t *testing.T) {
	// O LEFT JOIN com clients pode não casar; nome/e-mail/client_id não podem
	// chegar como NULL no Scan.
	assert.Contains(t, processSelect, "COALESCE(c.name, '')")
	assert.Contains(t, processSelect, "COALESCE(c.email, '')")
	assert.Contains(t, processSelect, "COALESCE(p.client_id::text, '')")
	assert.True(t, strings.Contains(processSelect, "LEFT JOIN clients"))
}
