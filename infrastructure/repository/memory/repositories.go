package memory

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ repository.TransactionRepository = (*transactionRepository)(nil)
	_ repository.UserRepository        = (*userRepository)(nil)
	_ repository.OverallStatRepository = (*overallStatRepository)(nil)
)

type transactionRepository struct {
	store *Store
}

func NewTransactionRepository(store *Store) repository.TransactionRepository {
	return &transactionRepository{store: store}
}

func (r *transactionRepository) Aggregate(ctx context.Context, pipeline domain.Pipeline) ([]domain.Transaction, error) {
	docs, err := r.store.Aggregate(ctx, domain.CollectionTransactions, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar agregação de transações")
	}

	transactions := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		var transaction domain.Transaction
		if err := decode(doc, &transaction); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar transação")
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

func (r *transactionRepository) CountAll(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, domain.CollectionTransactions)
}

func (r *transactionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Transaction, error) {
	doc, err := r.store.FindByID(ctx, domain.CollectionTransactions, id)
	if err != nil || doc == nil {
		return nil, err
	}

	var transaction domain.Transaction
	if err := decode(doc, &transaction); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar transação %s", id.Hex())
	}

	return &transaction, nil
}

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	doc, err := r.store.FindByID(ctx, domain.CollectionUsers, id)
	if err != nil || doc == nil {
		return nil, err
	}

	return decodeUser(doc)
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return r.find(ctx, func(doc bson.M) bool {
		value, _ := doc["role"].(string)
		return value == string(role)
	})
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, nil)
}

func (r *userRepository) find(ctx context.Context, match func(bson.M) bool) ([]domain.User, error) {
	docs, err := r.store.Find(ctx, domain.CollectionUsers, match)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		user, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	return users, nil
}

func (r *userRepository) AggregateWithAffiliateStats(ctx context.Context, pipeline domain.Pipeline) ([]domain.UserWithAffiliateStat, error) {
	docs, err := r.store.Aggregate(ctx, domain.CollectionUsers, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar agregação de usuários")
	}

	results := make([]domain.UserWithAffiliateStat, 0, len(docs))
	for _, doc := range docs {
		delete(doc, "password")

		var result domain.UserWithAffiliateStat
		if err := decode(doc, &result); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar usuário com affiliate stats")
		}
		results = append(results, result)
	}

	return results, nil
}

// decodeUser descarta a senha, como a projeção feita no MongoDB
func decodeUser(doc bson.M) (*domain.User, error) {
	delete(doc, "password")

	var user domain.User
	if err := decode(doc, &user); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar usuário")
	}

	return &user, nil
}

type overallStatRepository struct {
	store *Store
}

func NewOverallStatRepository(store *Store) repository.OverallStatRepository {
	return &overallStatRepository{store: store}
}

func (r *overallStatRepository) FindFirst(ctx context.Context) (domain.OverallStat, error) {
	return r.findOne(ctx, nil)
}

func (r *overallStatRepository) FindByYear(ctx context.Context, year int) (domain.OverallStat, error) {
	return r.findOne(ctx, func(doc bson.M) bool {
		return equalValues(doc["year"], int64(year))
	})
}

func (r *overallStatRepository) findOne(ctx context.Context, match func(bson.M) bool) (domain.OverallStat, error) {
	docs, err := r.store.Find(ctx, domain.CollectionOverallStats, match)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	return domain.OverallStat(docs[0]), nil
}
