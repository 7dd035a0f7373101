package document

import "github.com/sgp-sistemas/sgp-api/internal/domain/entity"

// FileStore porta do armazenamento de bytes em disco, endereçado por
// (kind, ownerID, filename). Upload com o mesmo nome sobrescreve.
type FileStore interface {
	Save(kind entity.OwnerKind, ownerID, filename string, data []byte) error
	// Read devolve domain.ErrCorrupted quando o arquivo não está mais onde o
	// metadado aponta.
	Read(kind entity.OwnerKind, ownerID, filename string) ([]byte, error)
}

// Upload arquivo recebido via multipart, ainda não persistido.
type Upload struct {
	Filename string
	Data     []byte
	Type     string // personal, additional; vazio vira personal
}
