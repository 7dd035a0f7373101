package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Colunas que os adaptadores de internal/infrastructure/postgres referenciam
// em INSERT/SELECT/UPDATE. O DDL precisa criá-las com exatamente esses nomes;
// os testes de caso de uso rodam sobre fakes e não pegam divergência de schema.
var requiredColumns = map[string][]string{
	"users":             {"id", "name", "email", "password", "role", "created_at", "updated_at"},
	"clients":           {"id", "name", "email", "phone", "document", "rg", "document_type", "type", "address", "city", "state", "postal_code", "status", "notes", "user_id", "created_at", "updated_at"},
	"processes":         {"id", "title", "description", "status", "priority", "login_token", "password", "user_id", "client_id", "created_at", "updated_at"},
	"process_history":   {"seq", "entry_id", "process_id", "status", "observation", "attachments", "created_by", "created_at"},
	"client_documents":  {"id", "client_id", "filename", "type", "created_at", "updated_at"},
	"process_documents": {"id", "process_id", "filename", "type", "created_at", "updated_at"},
}

func createTableFor(t *testing.T, table string) string {
	t.Helper()
	prefix := "CREATE TABLE IF NOT EXISTS " + table + " "
	for _, stmt := range statements {
		if strings.HasPrefix(stmt, prefix) {
			return stmt
		}
	}
	t.Fatalf("sem CREATE TABLE para %s", table)
	return ""
}

func hasColumn(stmt, column string) bool {
	// Coluna declarada no começo da linha, seguida do tipo.
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(column) + `\s`)
	return re.MatchString(stmt)
}

func TestDDL_DeclaraTodasAsColunasUsadasPelosRepositorios(t *testing.T) {
	for table, columns := range requiredColumns {
		stmt := createTableFor(t, table)
		for _, col := range columns {
			assert.True(t, hasColumn(stmt, col), "%s: coluna %q ausente no DDL", table, col)
		}
	}
}

func TestDDL_ProcessesUsaColunaPassword(t *testing.T) {
	stmt := createTableFor(t, "processes")
	require.True(t, hasColumn(stmt, "password"), "ProcessRepo insere e lê a coluna password")
	assert.False(t, hasColumn(stmt, "password_hash"), "nome divergente do SQL do repositório")
}

func TestDDL_HistoryTemSeqMonotonicoEEntryIdUnico(t *testing.T) {
	stmt := createTableFor(t, "process_history")
	assert.Contains(t, stmt, "seq BIGSERIAL PRIMARY KEY")
	assert.Contains(t, stmt, "entry_id UUID NOT NULL UNIQUE")
}
