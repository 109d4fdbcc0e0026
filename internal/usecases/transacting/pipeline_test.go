package transacting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
)

func TestBuildSortOrder_Direction(t *testing.T) {
	tests := []struct {
		token    string
		expected domain.SortDirection
	}{
		{token: "asc", expected: domain.SortAscending},
		{token: "ASC", expected: domain.SortDescending},
		{token: "Asc", expected: domain.SortDescending},
		{token: "desc", expected: domain.SortDescending},
		{token: "", expected: domain.SortDescending},
		{token: "ascending", expected: domain.SortDescending},
		{token: " asc", expected: domain.SortDescending},
	}

	for _, tt := range tests {
		t.Run("token "+tt.token, func(t *testing.T) {
			order, _ := BuildSortOrder(&domain.SortSpec{Field: "userId", Direction: tt.token})

			require.NotNil(t, order)
			assert.Equal(t, "userId", order.Field)
			assert.Equal(t, tt.expected, order.Direction)
		})
	}
}

func TestBuildSortOrder_Coercion(t *testing.T) {
	order, needsCoercion := BuildSortOrder(nil)
	assert.Nil(t, order)
	assert.False(t, needsCoercion)

	_, needsCoercion = BuildSortOrder(&domain.SortSpec{Field: "cost", Direction: "asc"})
	assert.True(t, needsCoercion)

	_, needsCoercion = BuildSortOrder(&domain.SortSpec{Field: "userId", Direction: "asc"})
	assert.False(t, needsCoercion)
}

func TestBuildSearchFilter(t *testing.T) {
	filter := BuildSearchFilter("12")
	assert.Equal(t, "12", filter.Search)
	assert.Equal(t, []string{"userId", "cost"}, filter.Fields)
	assert.False(t, filter.MatchesAll())

	assert.True(t, BuildSearchFilter("").MatchesAll())

	filter.Fields[0] = "mutated"
	assert.Equal(t, "userId", SearchFields[0])
}

func TestBuildPipeline(t *testing.T) {
	tests := []struct {
		name     string
		query    domain.TransactionQuery
		expected domain.Pipeline
	}{
		{
			name:  "Ordenação por cost inclui a conversão antes do sort",
			query: domain.TransactionQuery{Page: 1, PageSize: 10, Sort: &domain.SortSpec{Field: "cost", Direction: "asc"}, Search: "ab"},
			expected: domain.Pipeline{
				domain.FilterStage{Search: "ab", Fields: []string{"userId", "cost"}},
				domain.CoerceStage{Field: "cost"},
				domain.SortStage{Order: &domain.SortOrder{Field: "cost", Direction: domain.SortAscending}},
				domain.SkipStage{N: 10},
				domain.LimitStage{N: 10},
			},
		},
		{
			name:  "Outro campo não converte",
			query: domain.TransactionQuery{Page: 0, PageSize: 20, Sort: &domain.SortSpec{Field: "userId", Direction: "desc"}},
			expected: domain.Pipeline{
				domain.FilterStage{Search: "", Fields: []string{"userId", "cost"}},
				domain.SortStage{Order: &domain.SortOrder{Field: "userId", Direction: domain.SortDescending}},
				domain.SkipStage{N: 0},
				domain.LimitStage{N: 20},
			},
		},
		{
			name:  "Sem sort gera estágio de ordem natural",
			query: domain.TransactionQuery{Page: 3, PageSize: 7},
			expected: domain.Pipeline{
				domain.FilterStage{Search: "", Fields: []string{"userId", "cost"}},
				domain.SortStage{},
				domain.SkipStage{N: 21},
				domain.LimitStage{N: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildPipeline(tt.query))
		})
	}
}

func TestBuildPipeline_StageOrder(t *testing.T) {
	pipeline := BuildPipeline(domain.TransactionQuery{PageSize: 5, Sort: &domain.SortSpec{Field: "cost"}})

	assert.Equal(t, []domain.StageKind{
		domain.StageFilter,
		domain.StageCoerce,
		domain.StageSort,
		domain.StageSkip,
		domain.StageLimit,
	}, pipeline.Kinds())
}
