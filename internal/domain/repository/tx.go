package repository

import "context"

// TxRepos feixe de repositórios atados a uma mesma transação.
type TxRepos struct {
	Processes ProcessRepository
	History   HistoryRepository
	Clients   ClientRepository
	Documents DocumentRepository
}

// TxRunner executa fn dentro de uma transação all-or-nothing: criação de
// processo + lançamento inicial, transição de status + histórico e a cascata
// de deleção de cliente nunca ficam pela metade.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
