package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aggregate executa o pipeline sobre a coleção, estágio por estágio, e
// devolve cópias dos documentos resultantes
func (s *Store) Aggregate(ctx context.Context, collection string, pipeline domain.Pipeline) ([]bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.snapshot(collection)

	for i, stage := range pipeline {
		var err error
		docs, err = s.apply(stage, docs)
		if err != nil {
			return nil, fmt.Errorf("estágio %d (%s): %w", i, stage.Kind(), err)
		}
	}

	out := make([]bson.M, len(docs))
	for i, doc := range docs {
		out[i] = copyDocument(doc)
	}

	return out, nil
}

func (s *Store) apply(stage domain.Stage, docs []bson.M) ([]bson.M, error) {
	switch st := stage.(type) {
	case domain.MatchStage:
		return filterDocs(docs, func(doc bson.M) bool {
			return equalValues(doc["_id"], st.ID)
		}), nil

	case domain.FilterStage:
		if st.MatchesAll() {
			return docs, nil
		}
		needle := strings.ToLower(st.Search)
		return filterDocs(docs, func(doc bson.M) bool {
			for _, field := range st.Fields {
				text, ok := doc[field].(string)
				if ok && strings.Contains(strings.ToLower(text), needle) {
					return true
				}
			}
			return false
		}), nil

	case domain.CoerceStage:
		out := make([]bson.M, len(docs))
		for i, doc := range docs {
			coerced := copyDocument(doc)
			coerced[st.Field] = toDouble(doc[st.Field])
			out[i] = coerced
		}
		return out, nil

	case domain.SortStage:
		if st.Order == nil {
			return docs, nil
		}
		field, direction := st.Order.Field, int(st.Order.Direction)
		sort.SliceStable(docs, func(i, j int) bool {
			return compareValues(docs[i][field], docs[j][field])*direction < 0
		})
		return docs, nil

	case domain.SkipStage:
		if st.N < 0 {
			return nil, fmt.Errorf("skip negativo: %d", st.N)
		}
		if st.N >= int64(len(docs)) {
			return []bson.M{}, nil
		}
		return docs[st.N:], nil

	case domain.LimitStage:
		if st.N <= 0 {
			return nil, fmt.Errorf("limit deve ser positivo: %d", st.N)
		}
		if st.N < int64(len(docs)) {
			return docs[:st.N], nil
		}
		return docs, nil

	case domain.LookupStage:
		foreign := s.collections[st.From]
		out := make([]bson.M, len(docs))
		for i, doc := range docs {
			joined := make(primitive.A, 0)
			for _, candidate := range foreign {
				if equalValues(candidate[st.ForeignField], doc[st.LocalField]) {
					joined = append(joined, copyDocument(candidate))
				}
			}
			withJoin := copyDocument(doc)
			withJoin[st.As] = joined
			out[i] = withJoin
		}
		return out, nil

	case domain.UnwindStage:
		out := make([]bson.M, 0, len(docs))
		for _, doc := range docs {
			value, exists := doc[st.Path]
			if !exists || value == nil {
				continue
			}

			elements, isArray := asArray(value)
			if !isArray {
				out = append(out, doc)
				continue
			}

			for _, element := range elements {
				unwound := copyDocument(doc)
				unwound[st.Path] = element
				out = append(out, unwound)
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("estágio não suportado: %T", stage)
}

func filterDocs(docs []bson.M, keep func(bson.M) bool) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		if keep(doc) {
			out = append(out, doc)
		}
	}
	return out
}

// toDouble reproduz o $convert para double com onError/onNull nulos
func toDouble(value any) any {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		f, _ := d.Float64()
		return f
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return float64(1)
		}
		return float64(0)
	}
	return nil
}

func asArray(value any) ([]any, bool) {
	switch v := value.(type) {
	case primitive.A:
		return v, true
	case []any:
		return v, true
	}
	return nil, false
}
