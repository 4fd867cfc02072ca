package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	plausibledomain "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/domain"
	plausiblemocks "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/mocks"
	"github.com/wearenalytics/site-profit-monitor/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListAnalyticsSites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)
	mockAnalytics.EXPECT().
		ListSites().
		Return([]plausibledomain.Site{
			{Domain: "a.com", Timezone: "America/Sao_Paulo"},
		}, nil)

	handler := ListAnalyticsSites(mockAnalytics)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/sites", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var sites []plausibledomain.Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sites))
	require.Len(t, sites, 1)
	assert.Equal(t, "a.com", sites[0].Domain)
}

func TestListAnalyticsSitesUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)
	mockAnalytics.EXPECT().
		ListSites().
		Return(nil, errors.New("api indisponível"))

	handler := ListAnalyticsSites(mockAnalytics)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/sites", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
}

func TestGetDailyVisitors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)
	mockAnalytics.EXPECT().
		DailyVisitors("portal.example.com", start, end).
		Return([]plausibledomain.VisitorPoint{
			{Date: "2025-03-03", Visitors: 120},
			{Date: "2025-03-04", Visitors: 98},
		}, nil)

	handler := GetDailyVisitors(mockAnalytics, "portal.example.com", time.UTC)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/visitors?start_date=2025-03-03&end_date=2025-03-09", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var points []plausibledomain.VisitorPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 2)
	assert.Equal(t, int64(120), points[0].Visitors)
}

func TestGetDailyVisitorsRequiresStartDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)
	handler := GetDailyVisitors(mockAnalytics, "portal.example.com", time.UTC)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/visitors", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}
