package dashboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository/memory"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newDashboardStore(t *testing.T, transactions int) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	base := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < transactions; i++ {
		require.NoError(t, store.Insert(domain.CollectionTransactions, domain.Transaction{
			ID:        primitive.NewObjectID(),
			UserID:    "u1",
			Cost:      domain.TextCost("1.00"),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	require.NoError(t, store.Insert(domain.CollectionOverallStats,
		bson.M{"year": int32(2020), "totalCustomers": int32(1)},
		bson.M{
			"year":                 int32(2021),
			"totalCustomers":       int32(9),
			"yearlyTotalSoldUnits": int32(120),
			"yearlySalesTotal":     int32(29193),
			"salesByCategory":      bson.M{"shoes": int32(6515)},
			"monthlyData": bson.A{
				bson.M{"month": "november", "totalSales": int32(100)},
				bson.M{"month": "december", "totalSales": int32(200)},
			},
			"dailyData": bson.A{
				bson.M{"date": "2021-12-01", "totalSales": int32(7)},
			},
		},
	))

	return store
}

func TestService_GetDashboardStats_Memory(t *testing.T) {
	ctx := context.Background()
	store := newDashboardStore(t, 60)
	service := NewService(memory.NewTransactionRepository(store), memory.NewOverallStatRepository(store), time.Time{})

	t.Run("Cinquenta transações mais recentes e destaques do mês e do dia", func(t *testing.T) {
		stats, err := service.GetDashboardStats(ctx, time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		require.Len(t, stats.Transactions, 50)
		for i := 1; i < len(stats.Transactions); i++ {
			assert.True(t, stats.Transactions[i-1].CreatedAt.After(stats.Transactions[i].CreatedAt))
		}
		assert.Equal(t, time.Date(2021, time.January, 3, 11, 0, 0, 0, time.UTC), stats.Transactions[0].CreatedAt.UTC())

		assert.EqualValues(t, 9, stats.TotalCustomers)
		assert.EqualValues(t, 120, stats.YearlyTotalSoldUnits)
		assert.EqualValues(t, 29193, stats.YearlySalesTotal)
		assert.NotNil(t, stats.MonthlyData)
		assert.NotNil(t, stats.SalesByCategory)

		thisMonth, ok := stats.ThisMonthStats.(bson.M)
		require.True(t, ok)
		assert.EqualValues(t, 200, thisMonth["totalSales"])

		today, ok := stats.TodayStats.(bson.M)
		require.True(t, ok)
		assert.EqualValues(t, 7, today["totalSales"])
	})

	t.Run("Dia sem dados fica fora da resposta", func(t *testing.T) {
		stats, err := service.GetDashboardStats(ctx, time.Date(2021, time.November, 2, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.NotNil(t, stats.ThisMonthStats)
		assert.Nil(t, stats.TodayStats)
	})

	t.Run("Ano sem overall stat", func(t *testing.T) {
		stats, err := service.GetDashboardStats(ctx, time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC))

		assert.Nil(t, stats)
		assert.True(t, errors.Is(err, ErrOverallStatNotFound))

		var dashErr *DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, apiErrors.ErrNotFound, dashErr.Code)
		assert.Equal(t, 2019, dashErr.Year)
	})
}

func TestService_GetDashboardStats_DefaultDate(t *testing.T) {
	ctx := context.Background()
	store := newDashboardStore(t, 1)

	t.Run("Data de referência configurada", func(t *testing.T) {
		service := NewService(memory.NewTransactionRepository(store), memory.NewOverallStatRepository(store),
			time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC))

		stats, err := service.GetDashboardStats(ctx, time.Time{})

		require.NoError(t, err)
		assert.NotNil(t, stats.TodayStats)
	})

	t.Run("Sem referência usa o relógio", func(t *testing.T) {
		service := NewService(memory.NewTransactionRepository(store), memory.NewOverallStatRepository(store), time.Time{}).(*Service)
		service.now = func() time.Time { return time.Date(2020, time.March, 5, 10, 0, 0, 0, time.UTC) }

		stats, err := service.GetDashboardStats(ctx, time.Time{})

		require.NoError(t, err)
		assert.EqualValues(t, 1, stats.TotalCustomers)
		assert.Nil(t, stats.ThisMonthStats)
		assert.Len(t, stats.Transactions, 1)
	})
}

func TestService_GetDashboardStats_Mock(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func(txRepo *mocks.MockTransactionRepository, statRepo *mocks.MockOverallStatRepository)
		expectErr error
	}{
		{
			name: "Falha ao buscar transações",
			setup: func(txRepo *mocks.MockTransactionRepository, statRepo *mocks.MockOverallStatRepository) {
				txRepo.EXPECT().Aggregate(gomock.Any(), RecentTransactionsPipeline()).Return(nil, errors.New("connection reset"))
				statRepo.EXPECT().FindByYear(gomock.Any(), 2021).Return(domain.OverallStat{}, nil).AnyTimes()
			},
			expectErr: ErrStoreFailure,
		},
		{
			name: "Falha ao buscar overall stat",
			setup: func(txRepo *mocks.MockTransactionRepository, statRepo *mocks.MockOverallStatRepository) {
				txRepo.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				statRepo.EXPECT().FindByYear(gomock.Any(), 2021).Return(nil, errors.New("timeout"))
			},
			expectErr: ErrStoreFailure,
		},
		{
			name: "Sem transações devolve lista vazia",
			setup: func(txRepo *mocks.MockTransactionRepository, statRepo *mocks.MockOverallStatRepository) {
				txRepo.EXPECT().Aggregate(gomock.Any(), RecentTransactionsPipeline()).Return(nil, nil)
				statRepo.EXPECT().FindByYear(gomock.Any(), 2021).Return(domain.OverallStat{"year": int32(2021)}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			txRepo := mocks.NewMockTransactionRepository(ctrl)
			statRepo := mocks.NewMockOverallStatRepository(ctrl)
			tt.setup(txRepo, statRepo)

			stats, err := NewService(txRepo, statRepo, time.Time{}).GetDashboardStats(ctx, date)

			if tt.expectErr != nil {
				assert.Nil(t, stats)
				assert.True(t, errors.Is(err, tt.expectErr))

				var dashErr *DashboardError
				require.True(t, errors.As(err, &dashErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, dashErr.Code)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, stats.Transactions)
			assert.Empty(t, stats.Transactions)
		})
	}
}

func TestRecentTransactionsPipeline(t *testing.T) {
	pipeline := RecentTransactionsPipeline()

	require.Len(t, pipeline, 2)
	assert.Equal(t, domain.SortStage{Order: &domain.SortOrder{Field: "createdAt", Direction: domain.SortDescending}}, pipeline[0])
	assert.Equal(t, domain.LimitStage{N: 50}, pipeline[1])
}
