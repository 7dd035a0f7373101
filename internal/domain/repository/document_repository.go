package repository

import "github.com/sgp-sistemas/sgp-api/internal/domain/entity"

// DocumentRepository porta de metadados de documentos (client_documents e
// process_documents, escolhidos pelo OwnerKind). Os bytes ficam no FileStore.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	ListByOwner(kind entity.OwnerKind, ownerID string) ([]*entity.Document, error)
	// GetForProcess localiza um documento baixável a partir de um processo:
	// primeiro entre os documentos do próprio processo, depois entre os do
	// cliente dono via JOIN — o chamador já validou a posse do processo.
	GetForProcess(documentID, processID string) (*entity.Document, error)
	DeleteByClient(clientID string) error
	DeleteByClientProcesses(clientID string) error
}
