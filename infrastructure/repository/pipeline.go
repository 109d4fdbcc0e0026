// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"
	"regexp"

	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ToMongoPipeline traduz os estágios do domínio para o pipeline de agregação do MongoDB.
// Um SortStage sem ordenação não gera estágio: "$sort" vazio é rejeitado pelo servidor.
func ToMongoPipeline(pipeline domain.Pipeline) (mongo.Pipeline, error) {
	stages := make(mongo.Pipeline, 0, len(pipeline))

	for i, stage := range pipeline {
		switch s := stage.(type) {
		case domain.MatchStage:
			stages = append(stages, bson.D{{Key: "$match", Value: bson.M{"_id": s.ID}}})

		case domain.FilterStage:
			stages = append(stages, bson.D{{Key: "$match", Value: searchFilter(s)}})

		case domain.CoerceStage:
			stages = append(stages, bson.D{{Key: "$addFields", Value: bson.M{
				s.Field: bson.M{"$convert": bson.M{
					"input":   "$" + s.Field,
					"to":      "double",
					"onError": nil,
					"onNull":  nil,
				}},
			}}})

		case domain.SortStage:
			if s.Order == nil {
				continue
			}
			stages = append(stages, bson.D{{Key: "$sort", Value: bson.D{
				{Key: s.Order.Field, Value: int(s.Order.Direction)},
			}}})

		case domain.SkipStage:
			stages = append(stages, bson.D{{Key: "$skip", Value: s.N}})

		case domain.LimitStage:
			stages = append(stages, bson.D{{Key: "$limit", Value: s.N}})

		case domain.LookupStage:
			stages = append(stages, bson.D{{Key: "$lookup", Value: bson.M{
				"from":         s.From,
				"localField":   s.LocalField,
				"foreignField": s.ForeignField,
				"as":           s.As,
			}}})

		case domain.UnwindStage:
			stages = append(stages, bson.D{{Key: "$unwind", Value: "$" + s.Path}})

		default:
			return nil, fmt.Errorf("estágio %d não suportado: %T", i, stage)
		}
	}

	return stages, nil
}

// searchFilter monta o "$or" de regex sem diferenciar maiúsculas. O texto é
// escapado, então a busca é por substring literal.
func searchFilter(s domain.FilterStage) bson.M {
	if s.MatchesAll() {
		return bson.M{}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(s.Search), Options: "i"}

	clauses := make(bson.A, 0, len(s.Fields))
	for _, field := range s.Fields {
		clauses = append(clauses, bson.M{field: pattern})
	}

	return bson.M{"$or": clauses}
}
