package apptest

import (
	"sync"

	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
)

// MemFiles FileStore em memória, indexado por (kind, ownerID, filename).
type MemFiles struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemFiles cria um MemFiles vazio.
func NewMemFiles() *MemFiles {
	return &MemFiles{blobs: make(map[string][]byte)}
}

func fileKey(kind entity.OwnerKind, ownerID, filename string) string {
	return string(kind) + "/" + ownerID + "/" + filename
}

// Save grava os bytes; mesmo nome sobrescreve.
func (m *MemFiles) Save(kind entity.OwnerKind, ownerID, filename string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[fileKey(kind, ownerID, filename)] = append([]byte(nil), data...)
	return nil
}

// Read devolve os bytes; ausente é ErrCorrupted, como no DiskStore.
func (m *MemFiles) Read(kind entity.OwnerKind, ownerID, filename string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[fileKey(kind, ownerID, filename)]
	if !ok {
		return nil, domain.ErrCorrupted
	}
	return append([]byte(nil), data...), nil
}

// Delete remove os bytes, para simular corrupção nos testes.
func (m *MemFiles) Delete(kind entity.OwnerKind, ownerID, filename string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, fileKey(kind, ownerID, filename))
}

// Len quantidade de arquivos gravados.
func (m *MemFiles) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}

// SentMail registro de um envio de credenciais.
type SentMail struct {
	To       string
	Name     string
	Token    string
	Password string
}

// MailerSpy CredentialsMailer que registra os envios; Err força falha.
type MailerSpy struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func (m *MailerSpy) SendProcessCredentials(to, name, token, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: to, Name: name, Token: token, Password: password})
	return nil
}

// ReportStub ReportGenerator que devolve bytes fixos.
type ReportStub struct{ Output []byte }

func (r *ReportStub) GenerateProcessReport(_ *entity.Process, _ []*entity.ProcessHistoryEntry) ([]byte, error) {
	if r.Output == nil {
		return []byte("%PDF-stub"), nil
	}
	return r.Output, nil
}
