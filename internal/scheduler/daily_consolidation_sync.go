// Package scheduler contém o agendador interno que dispara a consolidação
// diária sem depender de crontab externo.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/freshkart/sales-etl/internal/config"
	"github.com/freshkart/sales-etl/internal/usecases/consolidating"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type DailyConsolidationConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// DailyConsolidationSyncService agenda uma execução do pipeline por dia,
// processando a data de negócio de N dias atrás (por padrão, ontem). Um
// mutex garante uma execução por vez — o pipeline não suporta invocações
// concorrentes para a mesma data.
type DailyConsolidationSyncService struct {
	scheduler           *gocron.Scheduler
	consolidation       *consolidating.Service
	config              DailyConsolidationConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailyConsolidationSyncService(
	consolidation *consolidating.Service,
	cfg *config.Config,
) *DailyConsolidationSyncService {
	syncConfig := DailyConsolidationConfig{
		CronSchedule: cfg.DailyConsolidationSync.CronSchedule,
		LookbackDays: cfg.DailyConsolidationSync.LookbackDays,
		SyncEnabled:  cfg.DailyConsolidationSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuração do agendador de consolidação diária carregada")

	return &DailyConsolidationSyncService{
		scheduler:     scheduler,
		consolidation: consolidation,
		config:        syncConfig,
	}
}

func (s *DailyConsolidationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de consolidação diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de consolidação diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduledConsolidation()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a consolidação diária: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de consolidação diária")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailyConsolidationSyncService) runScheduledConsolidation() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Consolidação diária já está em execução")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	date := s.businessDate()

	result, err := s.consolidation.Run(context.Background(), date)
	if err != nil {
		logrus.WithError(err).WithField("date", date).Error("Erro na consolidação diária agendada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":      result.RunID,
		"date":        result.Date,
		"orders_kept": result.OrdersKept,
	}).Info("Consolidação diária agendada concluída")
}

// TriggerManualSync inicia manualmente uma consolidação da data de negócio
// corrente do agendador (ontem, na configuração padrão).
func (s *DailyConsolidationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação diária já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação diária manual")
	go s.runScheduledConsolidation()
}

// GetStatus retorna o status atual do agendador
func (s *DailyConsolidationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *DailyConsolidationSyncService) businessDate() string {
	return time.Now().AddDate(0, 0, -s.config.LookbackDays).Format(time.DateOnly)
}
