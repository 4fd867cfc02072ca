package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/report"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/crossing"
	"github.com/wearenalytics/site-profit-monitor/pkg/utils"
)

type TrafficCrossingSyncConfig struct {
	CronSchedule string
	Enabled      bool
	LookbackDays int
}

// TrafficCrossingSyncService roda o cruzamento periódico de requests do
// warehouse com visitors do Plausible.
type TrafficCrossingSyncService struct {
	scheduler *gocron.Scheduler
	crosser   crossing.Crosser
	sink      *report.CSVSink
	location  *time.Location
	config    TrafficCrossingSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewTrafficCrossingSyncService(
	crosser crossing.Crosser,
	sink *report.CSVSink,
	location *time.Location,
	cfg *config.Config,
) *TrafficCrossingSyncService {
	syncConfig := TrafficCrossingSyncConfig{
		CronSchedule: cfg.TrafficCrossingSync.CronSchedule,
		Enabled:      cfg.TrafficCrossingSync.Enabled,
		LookbackDays: cfg.TrafficCrossingSync.LookbackDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuração do agendador de requests x visitors carregada")

	return &TrafficCrossingSyncService{
		scheduler: gocron.NewScheduler(location),
		crosser:   crosser,
		sink:      sink,
		location:  location,
		config:    syncConfig,
	}
}

func (s *TrafficCrossingSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de requests x visitors desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de requests x visitors")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunWindow(ctx); err != nil {
			logrus.WithError(err).Error("Erro no cruzamento de requests x visitors agendado")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar cruzamento de requests x visitors: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de requests x visitors")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara o cruzamento fora do horário da cron.
func (s *TrafficCrossingSyncService) TriggerManualSync() {
	go func() {
		if err := s.RunWindow(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no cruzamento de requests x visitors manual")
		}
	}()
}

// RunWindow cruza a janela que termina ontem e começa lookback_days antes.
func (s *TrafficCrossingSyncService) RunWindow(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Cruzamento de requests x visitors já está em execução")
		return nil
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

	end := utils.YesterdayIn(s.location)
	start := end.AddDate(0, 0, -s.config.LookbackDays)

	rows, err := s.crosser.CrossForWindow(ctx, start, end, nil)
	if err != nil {
		s.setLastError(err)
		return err
	}

	timestamp := time.Now().In(s.location).Format("20060102_150405")
	path, err := s.sink.WriteTrafficCrossing(rows, timestamp)
	if err != nil {
		s.setLastError(err)
		return err
	}

	logrus.WithFields(logrus.Fields{
		"rows": len(rows),
		"csv":  path,
	}).Info("Ciclo de requests x visitors concluído")

	s.setLastError(nil)
	return nil
}

func (s *TrafficCrossingSyncService) setLastError(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	if err != nil {
		s.lastSyncError = err.Error()
		return
	}
	s.lastSyncError = ""
}

func (s *TrafficCrossingSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return SyncStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.syncRunning,
		LastStartedAt:   s.lastSyncStartedAt,
		LastCompletedAt: s.lastSyncCompletedAt,
		LastError:       s.lastSyncError,
	}
}
