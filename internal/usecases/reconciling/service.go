// Package reconciling implementa a reconciliação de custo x receita por site:
// para uma data de relatório, encontra os sites que gastaram em anúncios mas
// geraram receita desprezível.
//
// Atenção à assimetria das janelas de agregação: o CUSTO soma o dia inteiro,
// a RECEITA soma apenas as linhas do último timestamp do dia. A receita do GAM
// é reportada em snapshots cumulativos dentro do dia; o custo do Google Ads é
// incremental. Portar essa lógica tratando os dois lados igual é o erro mais
// fácil de cometer aqui.
package reconciling

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/repository"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

// Reconciler produz o relatório de rentabilidade de uma data.
type Reconciler interface {
	// ReportForDate reconcilia custo e receita da data informada. siteFilter
	// restringe a análise a sites específicos; vazio analisa todos.
	ReportForDate(ctx context.Context, date time.Time, siteFilter []int64) (*domain.ProfitabilityReport, error)
}

type Service struct {
	costRepo    repository.CostRepository
	revenueRepo repository.RevenueRepository
	report      config.Report
	timeout     time.Duration
}

func NewService(cfg *config.Config, costRepo repository.CostRepository, revenueRepo repository.RevenueRepository) Reconciler {
	return &Service{
		costRepo:    costRepo,
		revenueRepo: revenueRepo,
		report:      cfg.Report,
		timeout:     cfg.Warehouse.QueryTimeout,
	}
}

func (s *Service) ReportForDate(ctx context.Context, date time.Time, siteFilter []int64) (*domain.ProfitabilityReport, error) {
	lookbackStart := date.AddDate(0, 0, -s.report.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"report_date":    date.Format("2006-01-02"),
		"lookback_start": lookbackStart.Format("2006-01-02"),
		"site_filter":    len(siteFilter),
	}).Info("Iniciando reconciliação de rentabilidade")

	// As três consultas são independentes entre si; só o join precisa de
	// todas. Cada uma carrega seu próprio timeout.
	var (
		wg        sync.WaitGroup
		costs     map[int64]float64
		revenues  map[int64]domain.RevenueAggregate
		fallbacks map[int64]string

		costErr     error
		revenueErr  error
		fallbackErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		costs, costErr = s.costRepo.TotalCostBySite(queryCtx, date, siteFilter)
	}()

	go func() {
		defer wg.Done()
		queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		revenues, revenueErr = s.revenueRepo.LatestRevenueBySite(queryCtx, date)
	}()

	go func() {
		defer wg.Done()
		queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		fallbacks, fallbackErr = s.revenueRepo.LatestDomainBySite(queryCtx, lookbackStart, date)
	}()

	wg.Wait()

	if costErr != nil {
		return nil, NewDataSourceError(QueryCost, costErr)
	}
	if revenueErr != nil {
		return nil, NewDataSourceError(QueryRevenue, revenueErr)
	}
	if fallbackErr != nil {
		return nil, NewDataSourceError(QueryDomainFallback, fallbackErr)
	}

	sites := Reconcile(costs, revenues, fallbacks, Options{
		RevenueThreshold: s.report.RevenueThreshold,
		ExcludeSiteZero:  s.report.ExcludeSiteZero,
	})

	logrus.WithFields(logrus.Fields{
		"report_date": date.Format("2006-01-02"),
		"sites_found": len(sites),
	}).Info("Reconciliação concluída")

	return &domain.ProfitabilityReport{
		ReportDate:       date.Format("2006-01-02"),
		RevenueThreshold: s.report.RevenueThreshold,
		Sites:            sites,
	}, nil
}
