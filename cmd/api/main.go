package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository/memory"
	"github.com/vfg2006/admin-dashboard-api/internal/api"
	"github.com/vfg2006/admin-dashboard-api/internal/config"
	"github.com/vfg2006/admin-dashboard-api/internal/scheduler"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/listing"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/transacting"
	"github.com/vfg2006/admin-dashboard-api/pkg/log"
)

// repositories agrupa os repositórios do driver escolhido
type repositories struct {
	transactions repository.TransactionRepository
	users        repository.UserRepository
	overallStats repository.OverallStatRepository
	store        scheduler.Pinger
	close        func(ctx context.Context) error
}

func main() {
	// Inicializa configuração de logs
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := newRepositories(ctx, cfg.Database)
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := repos.close(closeCtx); err != nil {
			logrus.WithError(err).Error("Erro ao fechar conexão com o banco")
		}
	}()

	transactionService := transacting.NewService(repos.transactions)
	performanceService := performance.NewService(repos.users, repos.transactions, cfg.Performance.MaxConcurrentFetches)
	listingService := listing.NewService(repos.users, repos.overallStats)
	dashboardService := dashboarding.NewService(repos.transactions, repos.overallStats, cfg.Dashboard.Date())

	storeHealthService := scheduler.NewStoreHealthService(repos.store, cfg.StoreHealth)
	if err := storeHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor do banco")
	} else {
		logrus.Info("Monitor do banco iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Transactions: transactionService,
		Performance:  performanceService,
		Listing:      listingService,
		Dashboard:    dashboardService,
		StoreHealth:  storeHealthService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newRepositories cria os repositórios para DATABASE_DRIVER
func newRepositories(ctx context.Context, dbConfig config.Database) repositories {
	if dbConfig.Driver == config.DriverMemory {
		store := memory.NewStore()
		if dbConfig.SeedFile != "" {
			if err := memory.LoadSeedFile(store, dbConfig.SeedFile); err != nil {
				logrus.WithError(err).Fatal("Erro ao carregar seed do banco em memória")
			}
			logrus.WithField("seed_file", dbConfig.SeedFile).Info("Banco em memória carregado")
		} else {
			logrus.Warn("Banco em memória iniciado vazio")
		}

		return repositories{
			transactions: memory.NewTransactionRepository(store),
			users:        memory.NewUserRepository(store),
			overallStats: memory.NewOverallStatRepository(store),
			store:        store,
			close:        func(context.Context) error { return nil },
		}
	}

	conn := mongoconn(ctx, dbConfig)

	return repositories{
		transactions: repository.NewTransactionRepository(conn),
		users:        repository.NewUserRepository(conn),
		overallStats: repository.NewOverallStatRepository(conn),
		store:        conn,
		close:        conn.Close,
	}
}

// mongoconn cria uma conexão com o MongoDB
func mongoconn(ctx context.Context, dbConfig config.Database) *mongodb.Connection {
	conn, err := mongodb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
	}

	logrus.WithField("database", dbConfig.Name).Info("Conexão com MongoDB estabelecida com sucesso")
	return conn
}
