package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repositorymocks "github.com/wearenalytics/site-profit-monitor/infrastructure/repository/mocks"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
	"github.com/wearenalytics/site-profit-monitor/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repositorymocks.NewMockSchemaRepository(ctrl)
	mockRepo.EXPECT().
		ListTables(gomock.Any()).
		Return([]domain.TableInfo{
			{Name: "gads_costs", Engine: "MergeTree", RowCount: 1200},
		}, nil)

	handler := ListTables(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/v1/schema/tables", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var tables []domain.TableInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tables))
	require.Len(t, tables, 1)
	assert.Equal(t, "gads_costs", tables[0].Name)
}

func TestListTablesWarehouseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repositorymocks.NewMockSchemaRepository(ctrl)
	mockRepo.EXPECT().
		ListTables(gomock.Any()).
		Return(nil, errors.New("connection reset"))

	handler := ListTables(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/v1/schema/tables", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrWarehouseQuery, apiErr.Code)
}

func TestDescribeTableHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repositorymocks.NewMockSchemaRepository(ctrl)
	mockRepo.EXPECT().
		DescribeTable(gomock.Any(), "gads_costs").
		Return(&domain.TableDetail{
			Name:     "gads_costs",
			Engine:   "MergeTree",
			RowCount: 1200,
			Columns: []domain.ColumnInfo{
				{Table: "gads_costs", Name: "site_id", Type: "Int64"},
			},
		}, nil)

	handler := DescribeTable(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/v1/schema/tables/gads_costs", nil)
	params := httprouter.Params{{Key: "name", Value: "gads_costs"}}
	req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var detail domain.TableDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "gads_costs", detail.Name)
	require.Len(t, detail.Columns, 1)
	assert.Equal(t, "site_id", detail.Columns[0].Name)
}

func TestSearchColumnsRequiresKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repositorymocks.NewMockSchemaRepository(ctrl)
	handler := SearchColumns(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/v1/schema/columns", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}
