package transacting

import (
	"context"

	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/admin-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type TransactionService interface {
	ListTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionsPage, error)
}

type Service struct {
	transactionRepository repository.TransactionRepository
}

func NewService(transactionRepository repository.TransactionRepository) TransactionService {
	return &Service{
		transactionRepository: transactionRepository,
	}
}

// ListTransactions executa o pipeline da página e, em paralelo, conta a
// coleção inteira. O total não considera a busca.
func (s *Service) ListTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionsPage, error) {
	logger := log.ForContext(ctx)
	pipeline := BuildPipeline(query)

	var (
		transactions []domain.Transaction
		total        int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepository.Aggregate(gctx, pipeline)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = s.transactionRepository.CountAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).WithField("stages", pipeline.Kinds()).Error("Erro ao listar transações")
		return nil, NewTransactionError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if transactions == nil {
		transactions = make([]domain.Transaction, 0)
	}

	logger.WithFields(log.Fields{
		"page":      query.Page,
		"page_size": query.PageSize,
		"returned":  len(transactions),
		"total":     total,
	}).Debug("Transações listadas")

	return &domain.TransactionsPage{
		Transactions: transactions,
		Total:        total,
	}, nil
}
