package transacting

import "github.com/vfg2006/admin-dashboard-api/internal/domain"

// BuildPipeline monta os estágios na ordem fixa:
// filtro, conversão (só para cost), sort, skip e limit
func BuildPipeline(query domain.TransactionQuery) domain.Pipeline {
	order, needsCoercion := BuildSortOrder(query.Sort)

	pipeline := make(domain.Pipeline, 0, 5)
	pipeline = append(pipeline, BuildSearchFilter(query.Search))

	if needsCoercion {
		pipeline = append(pipeline, domain.CoerceStage{Field: domain.TransactionFieldCost})
	}

	pipeline = append(pipeline,
		domain.SortStage{Order: order},
		domain.SkipStage{N: query.Offset()},
		domain.LimitStage{N: query.PageSize},
	)

	return pipeline
}
