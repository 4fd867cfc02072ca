package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible"
	"github.com/wearenalytics/site-profit-monitor/pkg/apiErrors"
	"github.com/wearenalytics/site-profit-monitor/pkg/log"
	"github.com/wearenalytics/site-profit-monitor/pkg/utils"
)

// ListAnalyticsSites devolve os sites cadastrados na conta do Plausible.
func ListAnalyticsSites(service plausible.PlausibleIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sites, err := service.ListSites()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to list Plausible sites")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar os sites do Plausible", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sites); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
		}
	})
}

// GetDailyVisitors devolve a série diária de visitors no período pedido.
// Sem o parâmetro site_id, usa o site configurado para os relatórios.
func GetDailyVisitors(service plausible.PlausibleIntegrator, defaultSiteID string, location *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteID := r.URL.Query().Get("site_id")
		if siteID == "" {
			siteID = defaultSiteID
		}

		start, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil || start.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date é obrigatório no formato YYYY-MM-DD", nil)
			return
		}

		end, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate := *end
		if endDate.IsZero() {
			endDate = utils.YesterdayIn(location)
		}

		if endDate.Before(*start) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date não pode ser anterior a start_date", nil)
			return
		}

		points, err := service.DailyVisitors(siteID, *start, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"site_id":    siteID,
				"start_date": start.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("analytics: failed to fetch daily visitors")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar visitors do Plausible", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
		}
	})
}
