package plausibleclient

import (
	"fmt"
	"net/url"

	plausibledomain "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/domain"
)

type breakdownResponse struct {
	Results []plausibledomain.PageVisitors `json:"results"`
}

// VisitorsByPage busca o breakdown de visitors por página no período.
func (c *PlausibleClient) VisitorsByPage(siteID, startDate, endDate string) ([]plausibledomain.PageVisitors, error) {
	params := url.Values{}
	params.Set("site_id", siteID)
	params.Set("period", "custom")
	params.Set("date", fmt.Sprintf("%s,%s", startDate, endDate))
	params.Set("property", "event:page")
	params.Set("metrics", "visitors")
	params.Set("limit", "1000")

	var response breakdownResponse
	if err := c.get("/stats/breakdown?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}
