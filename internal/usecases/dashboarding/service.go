package dashboarding

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/admin-dashboard-api/internal/config"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/admin-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetDashboardStats(ctx context.Context, date time.Time) (*domain.DashboardStats, error)
}

type Service struct {
	transactionRepository repository.TransactionRepository
	overallStatRepository repository.OverallStatRepository
	referenceDate         time.Time
	now                   func() time.Time
}

// NewService cria o serviço do painel. Com referenceDate zero as consultas
// sem data usam o dia corrente.
func NewService(
	transactionRepository repository.TransactionRepository,
	overallStatRepository repository.OverallStatRepository,
	referenceDate time.Time,
) DashboardService {
	return &Service{
		transactionRepository: transactionRepository,
		overallStatRepository: overallStatRepository,
		referenceDate:         referenceDate,
		now:                   time.Now,
	}
}

// RecentTransactionsPipeline devolve as transações mais novas primeiro
func RecentTransactionsPipeline() domain.Pipeline {
	return domain.Pipeline{
		domain.SortStage{Order: &domain.SortOrder{Field: domain.TransactionFieldCreatedAt, Direction: domain.SortDescending}},
		domain.LimitStage{N: domain.DashboardRecentTransactions},
	}
}

// GetDashboardStats junta as transações recentes ao OverallStat do ano de
// date, destacando o mês e o dia de date
func (s *Service) GetDashboardStats(ctx context.Context, date time.Time) (*domain.DashboardStats, error) {
	if date.IsZero() {
		date = s.defaultDate()
	}

	year := date.Year()
	month := strings.ToLower(date.Month().String())
	day := date.Format(config.DateLayout)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"year":  year,
		"month": month,
		"day":   day,
	})

	var (
		transactions []domain.Transaction
		stat         domain.OverallStat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepository.Aggregate(gctx, RecentTransactionsPipeline())
		return err
	})
	g.Go(func() error {
		var err error
		stat, err = s.overallStatRepository.FindByYear(gctx, year)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao montar painel")
		return nil, NewDashboardError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, year, err.Error())
	}

	if stat == nil {
		return nil, NewDashboardError(ErrOverallStatNotFound, apiErrors.ErrNotFound, year, "")
	}

	if transactions == nil {
		transactions = make([]domain.Transaction, 0)
	}

	return &domain.DashboardStats{
		TotalCustomers:       stat["totalCustomers"],
		YearlyTotalSoldUnits: stat["yearlyTotalSoldUnits"],
		YearlySalesTotal:     stat["yearlySalesTotal"],
		MonthlyData:          stat["monthlyData"],
		SalesByCategory:      stat["salesByCategory"],
		ThisMonthStats:       stat.FindEntry("monthlyData", "month", month),
		TodayStats:           stat.FindEntry("dailyData", "date", day),
		Transactions:         transactions,
	}, nil
}

func (s *Service) defaultDate() time.Time {
	if !s.referenceDate.IsZero() {
		return s.referenceDate
	}
	return s.now()
}
