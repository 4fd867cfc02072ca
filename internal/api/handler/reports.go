package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wearenalytics/site-profit-monitor/internal/domain"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/crossing"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/reconciling"
	"github.com/wearenalytics/site-profit-monitor/pkg/apiErrors"
	"github.com/wearenalytics/site-profit-monitor/pkg/log"
	"github.com/wearenalytics/site-profit-monitor/pkg/utils"
)

// GetProfitabilityReport reconcilia custo x receita da data pedida e devolve
// o relatório em JSON. Sem o parâmetro date, usa ontem no fuso do relatório.
func GetProfitabilityReport(service reconciling.Reconciler, location *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  r.URL.Query().Get("date"),
				"error": err.Error(),
			}).Warn("reports: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		reportDate := *date
		if reportDate.IsZero() {
			reportDate = utils.YesterdayIn(location)
		}

		siteFilter, err := parseSiteFilter(r.URL.Query().Get("site_ids"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "site_ids deve ser uma lista de inteiros separados por vírgula", nil)
			return
		}

		report, err := service.ReportForDate(r.Context(), reportDate, siteFilter)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_date": reportDate.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("reports: failed to reconcile profitability")

			code := apiErrors.ErrInternalServer
			if errors.Is(err, reconciling.ErrDataSource) {
				code = apiErrors.ErrWarehouseQuery
			}

			apiErrors.WriteError(w, code, "Erro ao gerar o relatório de rentabilidade", nil)
			return
		}

		logger.WithFields(log.Fields{
			"report_date": reportDate.Format(time.DateOnly),
			"sites":       len(report.Sites),
		}).Info("reports: profitability report generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	})
}

// GetTrafficCrossing cruza requests do warehouse com visitors do Plausible no
// período [start_date, end_date].
func GetTrafficCrossing(service crossing.Crosser, location *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

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

		var top uint64
		if rawTop := r.URL.Query().Get("top"); rawTop != "" {
			top, err = strconv.ParseUint(rawTop, 10, 64)
			if err != nil || top == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "top deve ser um inteiro positivo", nil)
				return
			}
		}

		var rows []domain.TrafficCrossing
		if top > 0 {
			rows, err = service.CrossTopSites(r.Context(), *start, endDate, top)
		} else {
			rows, err = service.CrossForWindow(r.Context(), *start, endDate, nil)
		}
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": start.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("reports: failed to cross requests with visitors")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao cruzar requests com visitors", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	})
}

func parseSiteFilter(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
