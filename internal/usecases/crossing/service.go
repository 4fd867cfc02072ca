// Package crossing cruza o volume de requests de ad exchange do warehouse com
// os visitors medidos pelo Plausible, por domínio, dentro de uma janela.
package crossing

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/repository"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

type Crosser interface {
	// CrossForWindow junta requests por site/domínio com visitors por domínio
	// no período [start, end]. siteFilter vazio analisa todos os sites.
	CrossForWindow(ctx context.Context, start, end time.Time, siteFilter []int64) ([]domain.TrafficCrossing, error)

	// CrossTopSites restringe o cruzamento aos N sites com maior volume de
	// requests no período.
	CrossTopSites(ctx context.Context, start, end time.Time, limit uint64) ([]domain.TrafficCrossing, error)
}

type Service struct {
	trafficRepo repository.TrafficRepository
	analytics   plausible.PlausibleIntegrator
}

func NewService(trafficRepo repository.TrafficRepository, analytics plausible.PlausibleIntegrator) Crosser {
	return &Service{
		trafficRepo: trafficRepo,
		analytics:   analytics,
	}
}

func (s *Service) CrossForWindow(ctx context.Context, start, end time.Time, siteFilter []int64) ([]domain.TrafficCrossing, error) {
	requests, err := s.trafficRepo.RequestVolume(ctx, start, end, siteFilter)
	if err != nil {
		return nil, err
	}

	visitors, err := s.analytics.VisitorsByDomain(start, end)
	if err != nil {
		return nil, err
	}

	// Agrega os requests por site+domínio; o detalhe diário não entra no
	// cruzamento porque o breakdown do Plausible cobre a janela inteira.
	type key struct {
		siteID     int64
		domainName string
	}
	totals := make(map[key]int64)
	for _, r := range requests {
		totals[key{r.SiteID, r.Domain}] += r.TotalRequests
	}

	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	rows := make([]domain.TrafficCrossing, 0, len(totals))
	for k, totalRequests := range totals {
		row := domain.TrafficCrossing{
			SiteID:        k.siteID,
			Domain:        k.domainName,
			StartDate:     startStr,
			EndDate:       endStr,
			TotalRequests: totalRequests,
			Visitors:      visitors[k.domainName],
		}

		if row.Visitors > 0 {
			ratio := float64(row.TotalRequests) / float64(row.Visitors)
			row.RequestsPerVisitor = &ratio
		}
		if row.TotalRequests > 0 {
			ratio := float64(row.Visitors) / float64(row.TotalRequests)
			row.VisitorsPerRequest = &ratio
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRequests != rows[j].TotalRequests {
			return rows[i].TotalRequests > rows[j].TotalRequests
		}
		if rows[i].SiteID != rows[j].SiteID {
			return rows[i].SiteID < rows[j].SiteID
		}
		return rows[i].Domain < rows[j].Domain
	})

	logrus.WithFields(logrus.Fields{
		"rows":     len(rows),
		"domains":  len(visitors),
		"requests": len(requests),
	}).Info("Cruzamento de requests x visitors concluído")

	return rows, nil
}

func (s *Service) CrossTopSites(ctx context.Context, start, end time.Time, limit uint64) ([]domain.TrafficCrossing, error) {
	topSites, err := s.trafficRepo.TopSitesByRequests(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}

	if len(topSites) == 0 {
		return []domain.TrafficCrossing{}, nil
	}

	siteFilter := make([]int64, 0, len(topSites))
	for _, site := range topSites {
		siteFilter = append(siteFilter, site.SiteID)
	}

	logrus.WithFields(logrus.Fields{
		"limit": limit,
		"sites": len(siteFilter),
	}).Info("Cruzamento restrito aos sites com maior volume de requests")

	return s.CrossForWindow(ctx, start, end, siteFilter)
}
