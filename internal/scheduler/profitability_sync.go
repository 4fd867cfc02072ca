package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/notifier/discord"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/report"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/reconciling"
	"github.com/wearenalytics/site-profit-monitor/pkg/utils"
)

type ProfitabilitySyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// ProfitabilitySyncService roda a reconciliação diária: reconcilia ontem,
// grava o CSV e dispara o alerta quando há sites problemáticos.
type ProfitabilitySyncService struct {
	scheduler  *gocron.Scheduler
	reconciler reconciling.Reconciler
	sink       *report.CSVSink
	notifier   discord.Notifier
	location   *time.Location
	config     ProfitabilitySyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewProfitabilitySyncService(
	reconciler reconciling.Reconciler,
	sink *report.CSVSink,
	notifier discord.Notifier,
	location *time.Location,
	cfg *config.Config,
) *ProfitabilitySyncService {
	syncConfig := ProfitabilitySyncConfig{
		CronSchedule: cfg.ProfitabilitySync.CronSchedule,
		Enabled:      cfg.ProfitabilitySync.Enabled,
	}

	logrus.WithField("cron_schedule", syncConfig.CronSchedule).
		Info("Configuração do agendador de rentabilidade carregada")

	return &ProfitabilitySyncService{
		scheduler:  gocron.NewScheduler(location),
		reconciler: reconciler,
		sink:       sink,
		notifier:   notifier,
		location:   location,
		config:     syncConfig,
	}
}

func (s *ProfitabilitySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de reconciliação de rentabilidade desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reconciliação de rentabilidade")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunYesterday(ctx); err != nil {
			logrus.WithError(err).Error("Erro na reconciliação de rentabilidade agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de rentabilidade: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reconciliação de rentabilidade")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a reconciliação fora do horário da cron.
func (s *ProfitabilitySyncService) TriggerManualSync() {
	go func() {
		if err := s.RunYesterday(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na reconciliação de rentabilidade manual")
		}
	}()
}

// RunYesterday executa a reconciliação para ontem no fuso do relatório.
func (s *ProfitabilitySyncService) RunYesterday(ctx context.Context) error {
	return s.RunForDate(ctx, utils.YesterdayIn(s.location))
}

// RunForDate executa o ciclo completo para uma data: reconciliação, CSV e
// alerta. O CSV sai mesmo quando a reconciliação falha (só com cabeçalho),
// para não quebrar automações que dependem do arquivo. Falha de notificação
// não falha a execução: o CSV é o artefato principal.
func (s *ProfitabilitySyncService) RunForDate(ctx context.Context, date time.Time) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Reconciliação de rentabilidade já está em execução")
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

	profitability, err := s.reconciler.ReportForDate(ctx, date, nil)
	if err != nil {
		s.setLastError(err)
		s.sink.WriteProfitabilityPlaceholder()
		return err
	}

	path, err := s.sink.WriteProfitability(profitability.Sites)
	if err != nil {
		s.setLastError(err)
		return err
	}

	if len(profitability.Sites) == 0 {
		logrus.Info("Nenhum site encontrado com os critérios definidos. Nenhum alerta enviado.")
		s.setLastError(nil)
		return nil
	}

	if err := s.notifier.SendLowRevenueAlert(*profitability, report.ProfitabilityCSVName); err != nil {
		logrus.WithError(err).Error("Falha ao enviar alerta para o Discord")
	}

	logrus.WithFields(logrus.Fields{
		"report_date": profitability.ReportDate,
		"sites":       len(profitability.Sites),
		"csv":         path,
	}).Info("Ciclo de rentabilidade concluído")

	s.setLastError(nil)
	return nil
}

func (s *ProfitabilitySyncService) setLastError(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	if err != nil {
		s.lastSyncError = err.Error()
		return
	}
	s.lastSyncError = ""
}

func (s *ProfitabilitySyncService) Status() SyncStatus {
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
