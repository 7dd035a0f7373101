// cmd/seeduser/main.go — Cria/atualiza um funcionário administrador.
// Uso: go run ./cmd/seeduser -email admin@sgp.com -password troque-me
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/sgp-sistemas/sgp-api/pkg/config"
)

func main() {
	name := flag.String("name", "Administrador", "nome do funcionário")
	email := flag.String("email", "admin@sgp.com", "e-mail de login")
	password := flag.String("password", "", "senha em texto plano (obrigatória)")
	role := flag.String("role", "admin", "papel: admin ou user")
	flag.Parse()

	if *password == "" {
		log.Fatal("informe -password")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("carregar configuração: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("conexão ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET password = EXCLUDED.password,
		    name = EXCLUDED.name,
		    role = EXCLUDED.role,
		    updated_at = CURRENT_TIMESTAMP
	`, uuid.New().String(), *name, *email, string(hash), *role)
	if err != nil {
		log.Fatalf("insert: %v", err)
	}

	fmt.Printf("usuário '%s' criado/atualizado\n", *email)
}
