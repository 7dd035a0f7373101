// cmd/setupdb/main.go — Cria as tabelas do SGP (idempotente).
// Uso: go run ./cmd/setupdb
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgp-sistemas/sgp-api/pkg/config"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		document VARCHAR(50),
		rg VARCHAR(50),
		document_type VARCHAR(50) DEFAULT 'RG',
		type VARCHAR(10) NOT NULL DEFAULT 'PF',
		address TEXT,
		city VARCHAR(100),
		state VARCHAR(50),
		postal_code VARCHAR(20),
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		notes TEXT,
		user_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_user ON clients(user_id)`,
	`CREATE TABLE IF NOT EXISTS processes (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'CADASTRO_REALIZADO',
		priority VARCHAR(10) NOT NULL DEFAULT 'MEDIUM',
		login_token VARCHAR(32) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		user_id UUID NOT NULL REFERENCES users(id),
		client_id UUID REFERENCES clients(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_processes_user ON processes(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_processes_client ON processes(client_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_processes_token_upper ON processes(UPPER(login_token))`,
	`CREATE TABLE IF NOT EXISTS process_history (
		seq BIGSERIAL PRIMARY KEY,
		entry_id UUID NOT NULL UNIQUE,
		process_id UUID NOT NULL REFERENCES processes(id),
		status VARCHAR(50) NOT NULL,
		observation TEXT,
		attachments TEXT[] NOT NULL DEFAULT '{}',
		created_by VARCHAR(255) NOT NULL DEFAULT 'sistema',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_process ON process_history(process_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS client_documents (
		id UUID PRIMARY KEY,
		client_id UUID NOT NULL REFERENCES clients(id),
		filename VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL DEFAULT 'personal',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_client_documents_client ON client_documents(client_id)`,
	`CREATE TABLE IF NOT EXISTS process_documents (
		id UUID PRIMARY KEY,
		process_id UUID NOT NULL REFERENCES processes(id),
		filename VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL DEFAULT 'personal',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_process_documents_process ON process_documents(process_id)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("carregar configuração: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("conexão ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("executar DDL: %v\n%s", err, stmt)
		}
	}
	fmt.Println("schema do SGP criado/atualizado")
}
