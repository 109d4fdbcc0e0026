package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/admin-dashboard-api/internal/config"
)

const storePingTimeout = 5 * time.Second

// Pinger é o banco monitorado
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealthStatus é o resultado da última verificação
type StoreHealthStatus struct {
	Healthy       bool      `json:"healthy"`
	Checked       bool      `json:"checked"`
	LastCheckedAt time.Time `json:"last_checked_at"`
	LastError     string    `json:"last_error,omitempty"`
	CronSchedule  string    `json:"cron"`
	Enabled       bool      `json:"enabled"`
}

// StoreHealthService verifica periodicamente a conexão com o banco
type StoreHealthService struct {
	scheduler *gocron.Scheduler
	config    config.StoreHealth
	store     Pinger
	mutex     sync.RWMutex
	status    StoreHealthStatus
}

func NewStoreHealthService(store Pinger, cfg config.StoreHealth) *StoreHealthService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do monitor do banco carregada")

	return &StoreHealthService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		store:     store,
		status: StoreHealthStatus{
			CronSchedule: cfg.CronSchedule,
			Enabled:      cfg.Enabled,
		},
	}
}

// Start faz uma verificação imediata e agenda as próximas
func (s *StoreHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor do banco desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor do banco")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor do banco: %w", err)
	}

	s.Check(ctx)
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor do banco")
		s.scheduler.Stop()
	}()

	return nil
}

// Check pinga o banco e registra o resultado
func (s *StoreHealthService) Check(ctx context.Context) StoreHealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	err := s.store.Ping(pingCtx)

	s.mutex.Lock()
	s.status.Checked = true
	s.status.LastCheckedAt = time.Now()
	s.status.Healthy = err == nil
	s.status.LastError = ""
	if err != nil {
		s.status.LastError = err.Error()
	}
	status := s.status
	s.mutex.Unlock()

	if err != nil {
		logrus.WithError(err).Warn("Banco de dados não respondeu ao ping")
	} else {
		logrus.Debug("Banco de dados respondeu ao ping")
	}

	return status
}

// GetStatus retorna o resultado da última verificação
func (s *StoreHealthService) GetStatus() StoreHealthStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.status
}
