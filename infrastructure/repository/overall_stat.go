package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=overall_stat.go -destination=mocks/overall_stat.go -package=mocks

type OverallStatRepository interface {
	FindFirst(ctx context.Context) (domain.OverallStat, error)
	FindByYear(ctx context.Context, year int) (domain.OverallStat, error)
}

type overallStatRepository struct {
	conn mongodb.Conn
}

func NewOverallStatRepository(conn mongodb.Conn) OverallStatRepository {
	return &overallStatRepository{
		conn: conn,
	}
}

// FindFirst retorna o primeiro documento na ordem natural, ou nil se a coleção estiver vazia
func (r *overallStatRepository) FindFirst(ctx context.Context) (domain.OverallStat, error) {
	stat, err := r.findOne(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar overall stats")
	}

	return stat, nil
}

// FindByYear retorna o primeiro documento do ano, ou nil quando não existe
func (r *overallStatRepository) FindByYear(ctx context.Context, year int) (domain.OverallStat, error) {
	stat, err := r.findOne(ctx, bson.M{"year": year})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar overall stats de %d", year)
	}

	return stat, nil
}

func (r *overallStatRepository) findOne(ctx context.Context, filter bson.M) (domain.OverallStat, error) {
	var doc bson.M

	err := r.conn.Collection(domain.CollectionOverallStats).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return domain.OverallStat(doc), nil
}
