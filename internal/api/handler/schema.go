package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/repository"
	"github.com/wearenalytics/site-profit-monitor/pkg/apiErrors"
	"github.com/wearenalytics/site-profit-monitor/pkg/log"
)

func ListTables(service repository.SchemaRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tables, err := service.ListTables(r.Context())
		if err != nil {
			logger.WithError(err).Error("schema: failed to list warehouse tables")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao listar as tabelas do warehouse", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tables); err != nil {
			logger.WithError(err).Error("schema: failed to encode response")
		}
	})
}

func DescribeTable(service repository.SchemaRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		table := httprouter.ParamsFromContext(r.Context()).ByName("name")

		detail, err := service.DescribeTable(r.Context(), table)
		if err != nil {
			logger.WithFields(log.Fields{
				"table": table,
				"error": err.Error(),
			}).Error("schema: failed to describe warehouse table")

			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao descrever a tabela do warehouse", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logger.WithError(err).Error("schema: failed to encode response")
		}
	})
}

func SearchColumns(service repository.SchemaRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		keyword := r.URL.Query().Get("keyword")
		if keyword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "keyword é obrigatório", nil)
			return
		}

		columns, err := service.SearchColumns(r.Context(), keyword)
		if err != nil {
			logger.WithFields(log.Fields{
				"keyword": keyword,
				"error":   err.Error(),
			}).Error("schema: failed to search warehouse columns")

			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao buscar colunas do warehouse", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(columns); err != nil {
			logger.WithError(err).Error("schema: failed to encode response")
		}
	})
}
