package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wearenalytics/site-profit-monitor/internal/scheduler"
	"github.com/wearenalytics/site-profit-monitor/pkg/apiErrors"
	"github.com/wearenalytics/site-profit-monitor/pkg/log"
)

// Tipos de job aceitos pelo disparo manual
const (
	JobTypeProfitability   = "profitability"
	JobTypeTrafficCrossing = "traffic-crossing"
	JobTypeAll             = "all"
)

// JobServices agrupa os agendadores expostos para disparo manual via API.
type JobServices struct {
	ProfitabilitySyncService   *scheduler.ProfitabilitySyncService
	TrafficCrossingSyncService *scheduler.TrafficCrossingSyncService
}

// RunJob dispara manualmente um job fora do horário da cron.
func RunJob(services JobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job não especificado", nil)
			return
		}

		logger.WithField("job_type", jobType).Info("jobs: manual trigger requested")

		switch jobType {
		case JobTypeProfitability:
			if services.ProfitabilitySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconciliação de rentabilidade não disponível", nil)
				return
			}
			services.ProfitabilitySyncService.TriggerManualSync()

		case JobTypeTrafficCrossing:
			if services.TrafficCrossingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cruzamento de requests x visitors não disponível", nil)
				return
			}
			services.TrafficCrossingSyncService.TriggerManualSync()

		case JobTypeAll:
			if services.ProfitabilitySyncService != nil {
				services.ProfitabilitySyncService.TriggerManualSync()
			}
			if services.TrafficCrossingSyncService != nil {
				services.TrafficCrossingSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: profitability, traffic-crossing, all", nil)
			return
		}

		response := map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    jobType,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("jobs: failed to encode response")
		}
	})
}

// GetJobStatus retorna o status dos jobs agendados.
func GetJobStatus(services JobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.ProfitabilitySyncService != nil {
			status[JobTypeProfitability] = services.ProfitabilitySyncService.Status()
		}
		if services.TrafficCrossingSyncService != nil {
			status[JobTypeTrafficCrossing] = services.TrafficCrossingSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("jobs: failed to encode response")
		}
	})
}
