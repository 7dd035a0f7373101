// Package storage guarda os bytes dos documentos em disco, fora do banco,
// num layout por dono: <dir>/<kind>/<ownerID>/<filename>. O diretório raiz
// precisa sobreviver a redeploys.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgp-sistemas/sgp-api/internal/application/document"
	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
)

var _ document.FileStore = (*DiskStore)(nil)

// DiskStore implementação do FileStore em disco local.
type DiskStore struct {
	dir string
}

// NewDiskStore constrói o store com o diretório raiz de uploads.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Save grava os bytes, criando o diretório do dono se preciso. Upload com o
// mesmo nome sobrescreve silenciosamente.
func (s *DiskStore) Save(kind entity.OwnerKind, ownerID, filename string, data []byte) error {
	path, err := s.path(kind, ownerID, filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage: criar diretório: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("storage: gravar arquivo: %w", err)
	}
	return nil
}

// Read devolve os bytes do arquivo. Arquivo ausente com metadado presente é
// ErrCorrupted, distinto de um simples not-found.
func (s *DiskStore) Read(kind entity.OwnerKind, ownerID, filename string) ([]byte, error) {
	path, err := s.path(kind, ownerID, filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCorrupted
		}
		return nil, fmt.Errorf("storage: ler arquivo: %w", err)
	}
	return data, nil
}

// path monta o caminho e rejeita qualquer componente que escaparia da raiz.
// A validação do handler já barra isso; aqui é a última linha.
func (s *DiskStore) path(kind entity.OwnerKind, ownerID, filename string) (string, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return "", domain.ErrInvalidInput
	}
	if ownerID == "" || strings.ContainsAny(ownerID, `/\`) || strings.Contains(ownerID, "..") {
		return "", domain.ErrInvalidInput
	}
	return filepath.Join(s.dir, string(kind), ownerID, filename), nil
}
