// Package apptest fornece implementações em memória das portas de
// persistência para os testes dos casos de uso, sem PostgreSQL nem disco.
package apptest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/sgp-sistemas/sgp-api/internal/domain"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/internal/domain/repository"
)

// Store estado compartilhado entre os repositórios em memória.
type Store struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	clients   map[string]*entity.Client
	processes map[string]*entity.Process
	documents map[string]*entity.Document
	history   []*entity.ProcessHistoryEntry
	seq       int64

	// FailTx força o TxRunner a devolver erro depois de executar fn,
	// descartando as escritas feitas dentro da transação.
	FailTx bool
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*entity.User),
		clients:   make(map[string]*entity.Client),
		processes: make(map[string]*entity.Process),
		documents: make(map[string]*entity.Document),
	}
}

// SeedUser registra um usuário diretamente no estado.
func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// SeedClient registra um cliente diretamente no estado.
func (s *Store) SeedClient(c *entity.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ID] = c
}

// SeedProcess registra um processo diretamente no estado.
func (s *Store) SeedProcess(p *entity.Process) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processes[p.ID] = p
}

// SeedDocument registra metadados de documento diretamente no estado.
func (s *Store) SeedDocument(d *entity.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[d.ID] = d
}

// HistoryOf devolve os lançamentos de um processo na ordem de inserção.
func (s *Store) HistoryOf(processID string) []*entity.ProcessHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.ProcessHistoryEntry
	for _, h := range s.history {
		if h.ProcessID == processID {
			out = append(out, h)
		}
	}
	return out
}

// ProcessByID devolve o processo cru do estado (ou nil).
func (s *Store) ProcessByID(id string) *entity.Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processes[id]
}

// ClientByID devolve o cliente cru do estado (ou nil).
func (s *Store) ClientByID(id string) *entity.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients[id]
}

// Users devolve o acesso de UserRepository.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Clients devolve o acesso de ClientRepository.
func (s *Store) Clients() repository.ClientRepository { return &clientRepo{s} }

// Processes devolve o acesso de ProcessRepository.
func (s *Store) Processes() repository.ProcessRepository { return &processRepo{s} }

// History devolve o acesso de HistoryRepository.
func (s *Store) History() repository.HistoryRepository { return &historyRepo{s} }

// Documents devolve o acesso de DocumentRepository.
func (s *Store) Documents() repository.DocumentRepository { return &documentRepo{s} }

// ─────────────────────────────────────────────────────────────────────────────
// TxRunner
// ─────────────────────────────────────────────────────────────────────────────

var errTxForced = errors.New("falha de transação forçada")

// Tx devolve um TxRunner sobre o mesmo estado. Rollback é simulado por
// snapshot dos mapas e do histórico quando FailTx está ligado.
func (s *Store) Tx() repository.TxRunner { return &txRunner{s} }

type txRunner struct{ s *Store }

func (t *txRunner) Run(_ context.Context, fn func(repos repository.TxRepos) error) error {
	snap := t.s.snapshot()
	err := fn(repository.TxRepos{
		Processes: &processRepo{t.s},
		History:   &historyRepo{t.s},
		Clients:   &clientRepo{t.s},
		Documents: &documentRepo{t.s},
	})
	if err == nil && t.s.FailTx {
		err = errTxForced
	}
	if err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

type storeSnapshot struct {
	users     map[string]*entity.User
	clients   map[string]*entity.Client
	processes map[string]*entity.Process
	documents map[string]*entity.Document
	history   []*entity.ProcessHistoryEntry
	seq       int64
}

func (s *Store) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := storeSnapshot{
		users:     make(map[string]*entity.User, len(s.users)),
		clients:   make(map[string]*entity.Client, len(s.clients)),
		processes: make(map[string]*entity.Process, len(s.processes)),
		documents: make(map[string]*entity.Document, len(s.documents)),
		history:   append([]*entity.ProcessHistoryEntry(nil), s.history...),
		seq:       s.seq,
	}
	for k, v := range s.users {
		u := *v
		snap.users[k] = &u
	}
	for k, v := range s.clients {
		c := *v
		snap.clients[k] = &c
	}
	for k, v := range s.processes {
		p := *v
		snap.processes[k] = &p
	}
	for k, v := range s.documents {
		d := *v
		snap.documents[k] = &d
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.clients = snap.clients
	s.processes = snap.processes
	s.documents = snap.documents
	s.history = snap.history
	s.seq = snap.seq
}

// ─────────────────────────────────────────────────────────────────────────────
// Repositórios
// ─────────────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type clientRepo struct{ s *Store }

func (r *clientRepo) Create(c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r *clientRepo) GetByIDAndUser(id, userID string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *clientRepo) ListByUser(userID string, filter repository.ClientFilter) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Client
	for _, c := range r.s.clients {
		if c.UserID != userID {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Query != "" && !containsFold(filter.Query, c.Name, c.Email, c.Document) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *clientRepo) Update(c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r *clientRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clients, id)
	return nil
}

type processRepo struct{ s *Store }

func (r *processRepo) Create(p *entity.Process) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.processes {
		if strings.EqualFold(existing.LoginToken, p.LoginToken) {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.processes[p.ID] = &cp
	return nil
}

func (r *processRepo) GetByIDAndUser(id, userID string) (*entity.Process, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.processes[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return r.withClient(p), nil
}

func (r *processRepo) GetByID(id string) (*entity.Process, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.processes[id]
	if !ok {
		return nil, nil
	}
	return r.withClient(p), nil
}

func (r *processRepo) GetByToken(token string) (*entity.Process, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.processes {
		if strings.EqualFold(p.LoginToken, token) {
			return r.withClient(p), nil
		}
	}
	return nil, nil
}

func (r *processRepo) ListByUser(userID string, filter repository.ProcessFilter) ([]*entity.Process, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Process
	for _, p := range r.s.processes {
		if p.UserID != userID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && p.Priority != filter.Priority {
			continue
		}
		enriched := r.withClient(p)
		if filter.Query != "" && !containsFold(filter.Query, enriched.Title, enriched.ClientName) {
			continue
		}
		out = append(out, enriched)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *processRepo) Update(p *entity.Process) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.processes[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.processes[p.ID] = &cp
	return nil
}

func (r *processRepo) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.processes[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *processRepo) DeleteByClient(clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.processes {
		if p.ClientID == clientID {
			delete(r.s.processes, id)
		}
	}
	return nil
}

// withClient replica o LEFT JOIN da consulta real: preenche ClientName e
// ClientEmail a partir do cliente vinculado. Chamar com o mutex em posse.
func (r *processRepo) withClient(p *entity.Process) *entity.Process {
	cp := *p
	if c, ok := r.s.clients[p.ClientID]; ok {
		cp.ClientName = c.Name
		cp.ClientEmail = c.Email
	}
	return &cp
}

type historyRepo struct{ s *Store }

func (r *historyRepo) Append(entry *entity.ProcessHistoryEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seq++
	cp := *entry
	cp.Seq = r.s.seq
	if cp.Attachments == nil {
		cp.Attachments = []string{}
	}
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *historyRepo) ListByProcess(processID string) ([]*entity.ProcessHistoryEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ProcessHistoryEntry
	for _, h := range r.s.history {
		if h.ProcessID == processID {
			cp := *h
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}

func (r *historyRepo) DeleteByClientProcesses(clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.history[:0]
	for _, h := range r.s.history {
		p, ok := r.s.processes[h.ProcessID]
		if ok && p.ClientID == clientID {
			continue
		}
		kept = append(kept, h)
	}
	r.s.history = kept
	return nil
}

type documentRepo struct{ s *Store }

func (r *documentRepo) Create(d *entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *d
	r.s.documents[d.ID] = &cp
	return nil
}

func (r *documentRepo) ListByOwner(kind entity.OwnerKind, ownerID string) ([]*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Document
	for _, d := range r.s.documents {
		if d.OwnerKind == kind && d.OwnerID == ownerID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *documentRepo) GetForProcess(documentID, processID string) (*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.documents[documentID]
	if !ok {
		return nil, nil
	}
	if d.OwnerKind == entity.OwnerProcess && d.OwnerID == processID {
		cp := *d
		return &cp, nil
	}
	if d.OwnerKind == entity.OwnerClient {
		if p, ok := r.s.processes[processID]; ok && p.ClientID == d.OwnerID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *documentRepo) DeleteByClient(clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, d := range r.s.documents {
		if d.OwnerKind == entity.OwnerClient && d.OwnerID == clientID {
			delete(r.s.documents, id)
		}
	}
	return nil
}

func (r *documentRepo) DeleteByClientProcesses(clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, d := range r.s.documents {
		if d.OwnerKind != entity.OwnerProcess {
			continue
		}
		p, ok := r.s.processes[d.OwnerID]
		if ok && p.ClientID == clientID {
			delete(r.s.documents, id)
		}
	}
	return nil
}

func containsFold(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
