package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedTransactions(t *testing.T, costs ...string) *Store {
	t.Helper()

	store := NewStore()
	for i, cost := range costs {
		err := store.Insert(domain.CollectionTransactions, domain.Transaction{
			ID:     primitive.NewObjectID(),
			UserID: "user-" + string(rune('a'+i)),
			Cost:   domain.TextCost(cost),
		})
		require.NoError(t, err)
	}
	return store
}

func costsOf(transactions []domain.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, tx.Cost.String())
	}
	return out
}

func TestTransactionRepository_Aggregate_Sort(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		costs    []string
		pipeline domain.Pipeline
		expected []string
	}{
		{
			name:  "Ordenação numérica ascendente depois da conversão",
			costs: []string{"100", "9", "10"},
			pipeline: domain.Pipeline{
				domain.CoerceStage{Field: domain.TransactionFieldCost},
				domain.SortStage{Order: &domain.SortOrder{Field: domain.TransactionFieldCost, Direction: domain.SortAscending}},
			},
			expected: []string{"9", "10", "100"},
		},
		{
			name:  "Ordenação numérica descendente depois da conversão",
			costs: []string{"50", "5", "500"},
			pipeline: domain.Pipeline{
				domain.CoerceStage{Field: domain.TransactionFieldCost},
				domain.SortStage{Order: &domain.SortOrder{Field: domain.TransactionFieldCost, Direction: domain.SortDescending}},
			},
			expected: []string{"500", "50", "5"},
		},
		{
			name:  "Sem conversão a ordenação é lexicográfica",
			costs: []string{"100", "9", "10"},
			pipeline: domain.Pipeline{
				domain.SortStage{Order: &domain.SortOrder{Field: domain.TransactionFieldCost, Direction: domain.SortAscending}},
			},
			expected: []string{"10", "100", "9"},
		},
		{
			name:  "Valores não numéricos viram nulo e vêm primeiro",
			costs: []string{"20", "abc", "3"},
			pipeline: domain.Pipeline{
				domain.CoerceStage{Field: domain.TransactionFieldCost},
				domain.SortStage{Order: &domain.SortOrder{Field: domain.TransactionFieldCost, Direction: domain.SortAscending}},
			},
			expected: []string{"", "3", "20"},
		},
		{
			name:     "Sem ordenação mantém a ordem natural",
			costs:    []string{"3", "1", "2"},
			pipeline: domain.Pipeline{domain.SortStage{}},
			expected: []string{"3", "1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewTransactionRepository(seedTransactions(t, tt.costs...))

			result, err := repo.Aggregate(ctx, tt.pipeline)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, costsOf(result))
		})
	}
}

func TestTransactionRepository_Aggregate_FailedCoercionIsNull(t *testing.T) {
	repo := NewTransactionRepository(seedTransactions(t, "abc"))

	result, err := repo.Aggregate(context.Background(), domain.Pipeline{
		domain.CoerceStage{Field: domain.TransactionFieldCost},
	})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.NullCost(), result[0].Cost)

	out, err := json.Marshal(result[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"cost":null`)
}

func TestTransactionRepository_Aggregate_FilterAndPage(t *testing.T) {
	ctx := context.Background()
	store := seedTransactions(t, "12.50", "7", "125", "30")
	repo := NewTransactionRepository(store)

	t.Run("Busca por substring sem diferenciar maiúsculas", func(t *testing.T) {
		result, err := repo.Aggregate(ctx, domain.Pipeline{
			domain.FilterStage{Search: "12", Fields: []string{domain.TransactionFieldUserID, domain.TransactionFieldCost}},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"12.50", "125"}, costsOf(result))

		result, err = repo.Aggregate(ctx, domain.Pipeline{
			domain.FilterStage{Search: "USER-B", Fields: []string{domain.TransactionFieldUserID}},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"7"}, costsOf(result))
	})

	t.Run("Skip e limit recortam a página", func(t *testing.T) {
		result, err := repo.Aggregate(ctx, domain.Pipeline{
			domain.SkipStage{N: 1},
			domain.LimitStage{N: 2},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"7", "125"}, costsOf(result))
	})

	t.Run("Skip além do fim devolve página vazia", func(t *testing.T) {
		result, err := repo.Aggregate(ctx, domain.Pipeline{
			domain.SkipStage{N: 10},
			domain.LimitStage{N: 2},
		})

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Limit zero é rejeitado", func(t *testing.T) {
		_, err := repo.Aggregate(ctx, domain.Pipeline{domain.LimitStage{N: 0}})
		assert.Error(t, err)
	})

	t.Run("Conversão não altera os documentos armazenados", func(t *testing.T) {
		_, err := repo.Aggregate(ctx, domain.Pipeline{domain.CoerceStage{Field: domain.TransactionFieldCost}})
		require.NoError(t, err)

		result, err := repo.Aggregate(ctx, domain.Pipeline{})
		require.NoError(t, err)
		for _, tx := range result {
			assert.False(t, tx.Cost.IsNumeric())
		}
	})

	t.Run("Contagem ignora filtros", func(t *testing.T) {
		total, err := repo.CountAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})
}

func TestUserRepository_AggregateWithAffiliateStats(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	saleID := primitive.NewObjectID()

	require.NoError(t, store.Insert(domain.CollectionUsers,
		domain.User{ID: userID, Name: "Ana", Password: "segredo", Role: domain.RoleUser},
		domain.User{ID: otherID, Name: "Bruno", Role: domain.RoleAdmin},
	))
	require.NoError(t, store.Insert(domain.CollectionAffiliateStats,
		domain.AffiliateStat{ID: primitive.NewObjectID(), UserID: userID, AffiliateSales: []primitive.ObjectID{saleID}},
	))

	repo := NewUserRepository(store)
	pipeline := domain.Pipeline{
		domain.MatchStage{ID: userID},
		domain.LookupStage{From: domain.CollectionAffiliateStats, LocalField: "_id", ForeignField: "userId", As: "affiliateStats"},
		domain.UnwindStage{Path: "affiliateStats"},
	}

	result, err := repo.AggregateWithAffiliateStats(ctx, pipeline)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Ana", result[0].Name)
	assert.Equal(t, userID, result[0].AffiliateStats.UserID)
	assert.Equal(t, []primitive.ObjectID{saleID}, result[0].AffiliateStats.AffiliateSales)

	t.Run("Usuário sem stats é descartado pelo unwind", func(t *testing.T) {
		pipeline[0] = domain.MatchStage{ID: otherID}

		result, err := repo.AggregateWithAffiliateStats(ctx, pipeline)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Senha nunca é devolvida", func(t *testing.T) {
		user, err := repo.FindByID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Empty(t, user.Password)

		admins, err := repo.ListByRole(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, "Bruno", admins[0].Name)
	})

	t.Run("Usuário inexistente devolve nil", func(t *testing.T) {
		user, err := repo.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `{
		"users": [{"_id": "63701cc1f03239c72c00017f", "name": "Ana", "role": "admin"}],
		"transactions": [{"userId": "63701cc1f03239c72c00017f", "cost": "12.50"}, {"userId": "x", "cost": 3}],
		"overallStats": [{"totalCustomers": 10, "salesByCategory": {"shoes": 5}}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store := NewStore()
	require.NoError(t, LoadSeedFile(store, path))

	ctx := context.Background()

	total, err := NewTransactionRepository(store).CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	id, _ := primitive.ObjectIDFromHex("63701cc1f03239c72c00017f")
	user, err := NewUserRepository(store).FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	stat, err := NewOverallStatRepository(store).FindFirst(ctx)
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.EqualValues(t, 10, stat["totalCustomers"])
	assert.NotNil(t, stat["_id"])

	assert.Error(t, LoadSeedFile(store, filepath.Join(t.TempDir(), "missing.json")))
}

func TestLoadSeedFile_SkipsNullOverallStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `{"overallStats": [null, {"year": 2021, "totalCustomers": 7}, null]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store := NewStore()
	require.NoError(t, LoadSeedFile(store, path))

	ctx := context.Background()

	count, err := store.Count(ctx, domain.CollectionOverallStats)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stat, err := NewOverallStatRepository(store).FindFirst(ctx)
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.EqualValues(t, 7, stat["totalCustomers"])
}
