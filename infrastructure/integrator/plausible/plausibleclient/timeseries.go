package plausibleclient

import (
	"fmt"
	"net/url"

	plausibledomain "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/domain"
)

type timeseriesResponse struct {
	Results []plausibledomain.VisitorPoint `json:"results"`
}

// VisitorsTimeseries busca a série diária de visitors para um site no período.
func (c *PlausibleClient) VisitorsTimeseries(siteID, startDate, endDate string) ([]plausibledomain.VisitorPoint, error) {
	params := url.Values{}
	params.Set("site_id", siteID)
	params.Set("period", "custom")
	params.Set("date", fmt.Sprintf("%s,%s", startDate, endDate))
	params.Set("metrics", "visitors")
	params.Set("interval", "date")

	var response timeseriesResponse
	if err := c.get("/stats/timeseries?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}
