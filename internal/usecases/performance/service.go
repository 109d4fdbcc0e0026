package performance

import (
	"context"

	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/admin-dashboard-api/pkg/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

const DefaultMaxConcurrentFetches = 8

type PerformanceService interface {
	GetUserPerformance(ctx context.Context, userID string) (*domain.UserPerformance, error)
}

type Service struct {
	userRepository        repository.UserRepository
	transactionRepository repository.TransactionRepository
	maxConcurrentFetches  int
}

func NewService(
	userRepository repository.UserRepository,
	transactionRepository repository.TransactionRepository,
	maxConcurrentFetches int,
) PerformanceService {
	if maxConcurrentFetches <= 0 {
		maxConcurrentFetches = DefaultMaxConcurrentFetches
	}

	return &Service{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		maxConcurrentFetches:  maxConcurrentFetches,
	}
}

// GetUserPerformance devolve o usuário com seu affiliate stat e as vendas
// referenciadas, na ordem de affiliateSales. Vendas que não existem mais são
// descartadas.
func (s *Service) GetUserPerformance(ctx context.Context, userID string) (*domain.UserPerformance, error) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, NewPerformanceError(ErrNotFound, apiErrors.ErrNotFound, userID, "identificador inválido")
	}

	users, err := s.userRepository.AggregateWithAffiliateStats(ctx, BuildJoinPipeline(id))
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar usuário com affiliate stats")
		return nil, NewPerformanceError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	if len(users) == 0 {
		return nil, NewPerformanceError(ErrNotFound, apiErrors.ErrNotFound, userID, "usuário sem affiliate stats")
	}

	// Apenas um stat por usuário é esperado; havendo mais, vale o primeiro
	user := users[0]

	sales, err := s.fetchSales(ctx, user.AffiliateStats.AffiliateSales)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar vendas do afiliado")
		return nil, NewPerformanceError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	logger.WithFields(log.Fields{
		"referenced": len(user.AffiliateStats.AffiliateSales),
		"resolved":   len(sales),
	}).Debug("Performance resolvida")

	return &domain.UserPerformance{
		User:  user,
		Sales: sales,
	}, nil
}

// fetchSales busca cada transação em paralelo, com limite de concorrência.
// Cada resultado ocupa o índice da sua referência, então a ordem original é
// mantida independente da ordem de conclusão.
func (s *Service) fetchSales(ctx context.Context, ids []primitive.ObjectID) ([]domain.Transaction, error) {
	results := make([]*domain.Transaction, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrentFetches)

	for i, id := range ids {
		g.Go(func() error {
			transaction, err := s.transactionRepository.FindByID(gctx, id)
			if err != nil {
				return err
			}
			results[i] = transaction
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sales := make([]domain.Transaction, 0, len(results))
	for _, transaction := range results {
		if transaction != nil {
			sales = append(sales, *transaction)
		}
	}

	return sales, nil
}
