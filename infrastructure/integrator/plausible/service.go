package plausible

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	plausibledomain "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/domain"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/plausibleclient"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
)

// PlausibleIntegrator expõe as consultas de analytics usadas pelos relatórios.
type PlausibleIntegrator interface {
	ListSites() ([]plausibledomain.Site, error)
	VisitorsByDomain(start, end time.Time) (map[string]int64, error)
	DailyVisitors(siteID string, start, end time.Time) ([]plausibledomain.VisitorPoint, error)
}

type Integrator struct {
	cfg    *config.Config
	Client plausibleclient.Client
}

func New(cfg *config.Config, client plausibleclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) ListSites() ([]plausibledomain.Site, error) {
	return s.Client.ListSites()
}

// VisitorsByDomain agrega o breakdown de páginas por domínio. O Plausible
// devolve paths completos, então o domínio é o primeiro segmento da página.
func (s *Integrator) VisitorsByDomain(start, end time.Time) (map[string]int64, error) {
	pages, err := s.Client.VisitorsByPage(
		s.cfg.Plausible.SiteID,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar breakdown de visitors do Plausible")
		return nil, err
	}

	visitors := make(map[string]int64)
	for _, page := range pages {
		domainName := extractDomain(page.Page)
		if domainName == "" {
			continue
		}
		visitors[domainName] += page.Visitors
	}

	logrus.WithField("domains", len(visitors)).Debug("Visitors agregados por domínio")
	return visitors, nil
}

func (s *Integrator) DailyVisitors(siteID string, start, end time.Time) ([]plausibledomain.VisitorPoint, error) {
	return s.Client.VisitorsTimeseries(siteID, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// extractDomain tira o domínio de um path de página do Plausible.
func extractDomain(page string) string {
	page = strings.TrimPrefix(page, "/")
	if idx := strings.Index(page, "/"); idx >= 0 {
		return page[:idx]
	}
	return page
}
