package plausibleclient

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	plausibledomain "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/domain"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	DetectAPIBase() (string, error)
	ListSites() ([]plausibledomain.Site, error)
	VisitorsTimeseries(siteID, startDate, endDate string) ([]plausibledomain.VisitorPoint, error)
	VisitorsByPage(siteID, startDate, endDate string) ([]plausibledomain.PageVisitors, error)
}

type PlausibleClient struct {
	httpClient *http.Client
	cfg        *config.Plausible

	mu      sync.Mutex
	apiBase string
}

func NewClient(cfg *config.Plausible) Client {
	return &PlausibleClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

// DetectAPIBase testa os candidatos configurados com GET /sites e devolve o
// primeiro que responde 200. Instalações self-hosted e o plausible.io expõem
// versões diferentes da API, então a URL certa varia por conta.
func (c *PlausibleClient) DetectAPIBase() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.apiBase != "" {
		return c.apiBase, nil
	}

	probe := &http.Client{Timeout: 10 * time.Second}

	for _, candidate := range c.cfg.APIBases {
		req, err := http.NewRequest(http.MethodGet, candidate+"/sites", nil)
		if err != nil {
			continue
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

		resp, err := probe.Do(req)
		if err != nil {
			logrus.WithError(err).WithField("api_base", candidate).Debug("Candidato de API do Plausible inacessível")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			logrus.WithField("api_base", candidate).Info("API do Plausible detectada")
			c.apiBase = candidate
			return candidate, nil
		}

		logrus.WithFields(logrus.Fields{
			"api_base": candidate,
			"status":   resp.StatusCode,
		}).Debug("Candidato de API do Plausible rejeitado")
	}

	return "", fmt.Errorf("nenhuma API válida do Plausible encontrada entre os candidatos configurados")
}

// get executa uma requisição autenticada contra a API detectada.
func (c *PlausibleClient) get(path string, out interface{}) error {
	base, err := c.DetectAPIBase()
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodGet, base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erro na API do Plausible: status %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
