// Package credentials emite as credenciais de acompanhamento de um processo:
// um token de acesso e uma senha aleatórios, ambos hex maiúsculo, mais o hash
// bcrypt da senha. O texto plano é devolvido uma única vez ao chamador e nunca
// persistido nem logado.
package credentials

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	tokenBytes    = 6 // 12 caracteres hex
	passwordBytes = 4 // 8 caracteres hex
	bcryptCost    = 10
)

// Credentials par de credenciais de acompanhamento recém-emitido.
type Credentials struct {
	LoginToken   string // hex maiúsculo, casado de forma case-insensitive no lookup
	Password     string // texto plano, entregue uma única vez
	PasswordHash string // bcrypt, é o que vai para o banco
}

// Issue gera token e senha a partir de bytes aleatórios criptográficos e
// calcula o hash bcrypt da senha. Falha no hash aborta a criação do processo.
func Issue() (*Credentials, error) {
	token, err := randomHex(tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("credentials: gerar token: %w", err)
	}
	password, err := randomHex(passwordBytes)
	if err != nil {
		return nil, fmt.Errorf("credentials: gerar senha: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("credentials: hash da senha: %w", err)
	}
	return &Credentials{
		LoginToken:   token,
		Password:     password,
		PasswordHash: string(hash),
	}, nil
}

// Verify compara uma senha em texto plano com o hash armazenado.
// bcrypt faz a comparação em tempo constante.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
