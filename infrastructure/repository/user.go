package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	AggregateWithAffiliateStats(ctx context.Context, pipeline domain.Pipeline) ([]domain.UserWithAffiliateStat, error)
}

type userRepository struct {
	conn mongodb.Conn
}

func NewUserRepository(conn mongodb.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) collection() *mongo.Collection {
	return r.conn.Collection(domain.CollectionUsers)
}

// FindByID retorna nil, nil quando o usuário não existe
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User

	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	err := r.collection().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar usuário %s", id.Hex())
	}

	return &user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := r.find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar usuários com role %s", role)
	}

	return users, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	users, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários")
	}

	return users, nil
}

func (r *userRepository) find(ctx context.Context, filter bson.M) ([]domain.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar usuários")
	}

	return users, nil
}

// AggregateWithAffiliateStats executa o pipeline de join sobre a coleção de
// usuários; a senha é removida no próprio banco
func (r *userRepository) AggregateWithAffiliateStats(ctx context.Context, pipeline domain.Pipeline) ([]domain.UserWithAffiliateStat, error) {
	stages, err := ToMongoPipeline(pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar pipeline de usuários")
	}
	stages = append(stages, bson.D{{Key: "$project", Value: bson.D{{Key: "password", Value: 0}}}})

	cursor, err := r.collection().Aggregate(ctx, stages)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar agregação de usuários")
	}
	defer cursor.Close(ctx)

	results := make([]domain.UserWithAffiliateStat, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar usuários com affiliate stats")
	}

	return results, nil
}
