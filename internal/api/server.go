package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/admin-dashboard-api/internal/api/handler"
	"github.com/vfg2006/admin-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/admin-dashboard-api/internal/config"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/listing"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/transacting"
	"github.com/vfg2006/admin-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Transactions transacting.TransactionService
	Performance  performance.PerformanceService
	Listing      listing.Lister
	Dashboard    dashboarding.DashboardService
	StoreHealth  handler.StoreHealthReporter
}

// NewHandler monta as rotas e a cadeia de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.StoreHealth)...),
		router.WithRoutes(handler.Transactions(services.Transactions)...),
		router.WithRoutes(handler.Performance(services.Performance)...),
		router.WithRoutes(handler.Listing(services.Listing)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.App.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Transactions == nil || services.Performance == nil || services.Listing == nil || services.Dashboard == nil {
		return nil, fmt.Errorf("serviços da API não configurados")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
