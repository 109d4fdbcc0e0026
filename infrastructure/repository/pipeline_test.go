package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type unknownStage struct{}

func (unknownStage) Kind() domain.StageKind { return 0 }

func TestToMongoPipeline_TransactionStages(t *testing.T) {
	pipeline := domain.Pipeline{
		domain.FilterStage{Search: "12.5", Fields: []string{"userId", "cost"}},
		domain.CoerceStage{Field: "cost"},
		domain.SortStage{Order: &domain.SortOrder{Field: "cost", Direction: domain.SortAscending}},
		domain.SkipStage{N: 40},
		domain.LimitStage{N: 20},
	}

	stages, err := ToMongoPipeline(pipeline)
	require.NoError(t, err)
	require.Len(t, stages, 5)

	match := stages[0][0]
	assert.Equal(t, "$match", match.Key)
	or := match.Value.(bson.M)["$or"].(bson.A)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"userId": primitive.Regex{Pattern: `12\.5`, Options: "i"}}, or[0])
	assert.Equal(t, bson.M{"cost": primitive.Regex{Pattern: `12\.5`, Options: "i"}}, or[1])

	assert.Equal(t, "$addFields", stages[1][0].Key)
	convert := stages[1][0].Value.(bson.M)["cost"].(bson.M)["$convert"].(bson.M)
	assert.Equal(t, "$cost", convert["input"])
	assert.Equal(t, "double", convert["to"])

	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "cost", Value: 1}}}}, stages[2])
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(40)}}, stages[3])
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(20)}}, stages[4])
}

func TestToMongoPipeline_EmptySearchAndNaturalOrder(t *testing.T) {
	pipeline := domain.Pipeline{
		domain.FilterStage{Search: "", Fields: []string{"userId", "cost"}},
		domain.SortStage{},
		domain.SkipStage{N: 0},
		domain.LimitStage{N: 20},
	}

	stages, err := ToMongoPipeline(pipeline)
	require.NoError(t, err)

	// O estágio de ordenação vazio não é enviado ao servidor
	require.Len(t, stages, 3)
	assert.Equal(t, bson.D{{Key: "$match", Value: bson.M{}}}, stages[0])
	assert.Equal(t, "$skip", stages[1][0].Key)
	assert.Equal(t, "$limit", stages[2][0].Key)
}

func TestToMongoPipeline_JoinStages(t *testing.T) {
	id := primitive.NewObjectID()

	stages, err := ToMongoPipeline(domain.Pipeline{
		domain.MatchStage{ID: id},
		domain.LookupStage{From: "affiliatestats", LocalField: "_id", ForeignField: "userId", As: "affiliateStats"},
		domain.UnwindStage{Path: "affiliateStats"},
	})
	require.NoError(t, err)
	require.Len(t, stages, 3)

	assert.Equal(t, bson.D{{Key: "$match", Value: bson.M{"_id": id}}}, stages[0])
	assert.Equal(t, bson.D{{Key: "$lookup", Value: bson.M{
		"from":         "affiliatestats",
		"localField":   "_id",
		"foreignField": "userId",
		"as":           "affiliateStats",
	}}}, stages[1])
	assert.Equal(t, bson.D{{Key: "$unwind", Value: "$affiliateStats"}}, stages[2])
}

func TestToMongoPipeline_UnknownStage(t *testing.T) {
	_, err := ToMongoPipeline(domain.Pipeline{unknownStage{}})
	assert.Error(t, err)
}
