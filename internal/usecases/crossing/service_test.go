package crossing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	plausiblemocks "github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/mocks"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/repository/mocks"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCrossForWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrafficRepo := mocks.NewMockTrafficRepository(ctrl)
	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)

	service := NewService(mockTrafficRepo, mockAnalytics)

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	day1 := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	mockTrafficRepo.EXPECT().
		RequestVolume(gomock.Any(), start, end, nil).
		Return([]domain.RequestVolume{
			{SiteID: 101, Date: day1, Domain: "a.com", TotalRequests: 600},
			{SiteID: 101, Date: day2, Domain: "a.com", TotalRequests: 400},
			{SiteID: 202, Date: day1, Domain: "b.com", TotalRequests: 50},
		}, nil)

	mockAnalytics.EXPECT().
		VisitorsByDomain(start, end).
		Return(map[string]int64{"a.com": 500}, nil)

	rows, err := service.CrossForWindow(context.Background(), start, end, nil)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Dias agregados por site+domínio, ordenado por requests decrescente
	assert.Equal(t, int64(101), rows[0].SiteID)
	assert.Equal(t, "a.com", rows[0].Domain)
	assert.Equal(t, "2025-03-03", rows[0].StartDate)
	assert.Equal(t, "2025-03-09", rows[0].EndDate)
	assert.Equal(t, int64(1000), rows[0].TotalRequests)
	assert.Equal(t, int64(500), rows[0].Visitors)
	assert.NotNil(t, rows[0].RequestsPerVisitor)
	assert.Equal(t, 2.0, *rows[0].RequestsPerVisitor)
	assert.NotNil(t, rows[0].VisitorsPerRequest)
	assert.Equal(t, 0.5, *rows[0].VisitorsPerRequest)

	// Domínio sem visitors no Plausible: razão requests/visitor fica nula em
	// vez de dividir por zero
	assert.Equal(t, int64(202), rows[1].SiteID)
	assert.Equal(t, int64(0), rows[1].Visitors)
	assert.Nil(t, rows[1].RequestsPerVisitor)
	assert.NotNil(t, rows[1].VisitorsPerRequest)
	assert.Equal(t, 0.0, *rows[1].VisitorsPerRequest)
}

func TestCrossForWindowWarehouseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrafficRepo := mocks.NewMockTrafficRepository(ctrl)
	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)

	service := NewService(mockTrafficRepo, mockAnalytics)

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mockTrafficRepo.EXPECT().
		RequestVolume(gomock.Any(), start, end, nil).
		Return(nil, errors.New("connection refused"))

	rows, err := service.CrossForWindow(context.Background(), start, end, nil)

	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestCrossForWindowAnalyticsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrafficRepo := mocks.NewMockTrafficRepository(ctrl)
	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)

	service := NewService(mockTrafficRepo, mockAnalytics)

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mockTrafficRepo.EXPECT().
		RequestVolume(gomock.Any(), start, end, nil).
		Return([]domain.RequestVolume{}, nil)

	mockAnalytics.EXPECT().
		VisitorsByDomain(start, end).
		Return(nil, errors.New("api indisponível"))

	rows, err := service.CrossForWindow(context.Background(), start, end, nil)

	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestCrossTopSites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrafficRepo := mocks.NewMockTrafficRepository(ctrl)
	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)

	service := NewService(mockTrafficRepo, mockAnalytics)

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mockTrafficRepo.EXPECT().
		TopSitesByRequests(gomock.Any(), start, end, uint64(2)).
		Return([]domain.SiteRequestTotal{
			{SiteID: 101, Domain: "a.com", TotalRequests: 1000, DaysWithData: 7},
			{SiteID: 202, Domain: "b.com", TotalRequests: 50, DaysWithData: 3},
		}, nil)

	mockTrafficRepo.EXPECT().
		RequestVolume(gomock.Any(), start, end, []int64{101, 202}).
		Return([]domain.RequestVolume{
			{SiteID: 101, Date: start, Domain: "a.com", TotalRequests: 1000},
			{SiteID: 202, Date: start, Domain: "b.com", TotalRequests: 50},
		}, nil)

	mockAnalytics.EXPECT().
		VisitorsByDomain(start, end).
		Return(map[string]int64{"a.com": 500}, nil)

	rows, err := service.CrossTopSites(context.Background(), start, end, 2)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(101), rows[0].SiteID)
	assert.Equal(t, int64(202), rows[1].SiteID)
}

func TestCrossTopSitesSemSitesNoPeriodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrafficRepo := mocks.NewMockTrafficRepository(ctrl)
	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)

	service := NewService(mockTrafficRepo, mockAnalytics)

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mockTrafficRepo.EXPECT().
		TopSitesByRequests(gomock.Any(), start, end, uint64(10)).
		Return([]domain.SiteRequestTotal{}, nil)

	rows, err := service.CrossTopSites(context.Background(), start, end, 10)

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCrossTopSitesErroNoRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrafficRepo := mocks.NewMockTrafficRepository(ctrl)
	mockAnalytics := plausiblemocks.NewMockPlausibleIntegrator(ctrl)

	service := NewService(mockTrafficRepo, mockAnalytics)

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mockTrafficRepo.EXPECT().
		TopSitesByRequests(gomock.Any(), start, end, uint64(10)).
		Return(nil, errors.New("connection refused"))

	rows, err := service.CrossTopSites(context.Background(), start, end, 10)

	assert.Error(t, err)
	assert.Nil(t, rows)
}
