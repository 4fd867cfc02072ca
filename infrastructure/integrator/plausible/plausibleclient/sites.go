package plausibleclient

import (
	plausibledomain "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/domain"
)

type sitesResponse struct {
	Sites []plausibledomain.Site `json:"sites"`
}

func (c *PlausibleClient) ListSites() ([]plausibledomain.Site, error) {
	var response sitesResponse
	if err := c.get("/sites", &response); err != nil {
		return nil, err
	}

	return response.Sites, nil
}
