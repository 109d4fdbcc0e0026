package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks

type TransactionRepository interface {
	Aggregate(ctx context.Context, pipeline domain.Pipeline) ([]domain.Transaction, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Transaction, error)
}

type transactionRepository struct {
	conn mongodb.Conn
}

func NewTransactionRepository(conn mongodb.Conn) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) collection() *mongo.Collection {
	return r.conn.Collection(domain.CollectionTransactions)
}

func (r *transactionRepository) Aggregate(ctx context.Context, pipeline domain.Pipeline) ([]domain.Transaction, error) {
	stages, err := ToMongoPipeline(pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar pipeline de transações")
	}

	cursor, err := r.collection().Aggregate(ctx, stages)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar agregação de transações")
	}
	defer cursor.Close(ctx)

	transactions := make([]domain.Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar transações")
	}

	return transactions, nil
}

// CountAll conta a coleção inteira, sem filtro
func (r *transactionRepository) CountAll(ctx context.Context) (int64, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "erro ao contar transações")
	}
	return total, nil
}

// FindByID retorna nil, nil quando a transação não existe
func (r *transactionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Transaction, error) {
	var transaction domain.Transaction

	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&transaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar transação %s", id.Hex())
	}

	return &transaction, nil
}
