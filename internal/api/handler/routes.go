package handler

import (
	"net/http"
	"time"

	"github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/repository"
	"github.com/wearenalytics/site-profit-monitor/internal/api/handler/router"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/crossing"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/reconciling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(reconciler reconciling.Reconciler, crosser crossing.Crosser, location *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/profitability",
			Method:  http.MethodGet,
			Handler: GetProfitabilityReport(reconciler, location),
		},
		{
			Path:    "/v1/reports/traffic-crossing",
			Method:  http.MethodGet,
			Handler: GetTrafficCrossing(crosser, location),
		},
	}
}

func Schema(service repository.SchemaRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/schema/tables",
			Method:  http.MethodGet,
			Handler: ListTables(service),
		},
		{
			Path:    "/v1/schema/tables/:name",
			Method:  http.MethodGet,
			Handler: DescribeTable(service),
		},
		{
			Path:    "/v1/schema/columns",
			Method:  http.MethodGet,
			Handler: SearchColumns(service),
		},
	}
}

func Analytics(service plausible.PlausibleIntegrator, defaultSiteID string, location *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/sites",
			Method:  http.MethodGet,
			Handler: ListAnalyticsSites(service),
		},
		{
			Path:    "/v1/analytics/visitors",
			Method:  http.MethodGet,
			Handler: GetDailyVisitors(service, defaultSiteID, location),
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunJob(services),
		},
		{
			Path:    "/v1/jobs/status",
			Method:  http.MethodGet,
			Handler: GetJobStatus(services),
		},
	}
}
