package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

func TestRequestVolume(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTrafficRepository(&clickhouse.Connection{DB: db})
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("sum(ad_exchange_total_requests) AS total_requests FROM gam_ecpms")).
		WithArgs("2025-03-03", "2025-03-09").
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "date", "domain", "total_requests"}).
			AddRow(int64(101), day, "example.com", int64(5400)))

	volumes, err := repo.RequestVolume(context.Background(), start, end, nil)

	assert.NoError(t, err)
	assert.Equal(t, []domain.RequestVolume{
		{SiteID: 101, Date: day, Domain: "example.com", TotalRequests: 5400},
	}, volumes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopSitesByRequests(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTrafficRepository(&clickhouse.Connection{DB: db})
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("count(DISTINCT date) AS days_with_data FROM gam_ecpms")).
		WithArgs("2025-03-03", "2025-03-09").
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "domain", "total_requests", "days_with_data"}).
			AddRow(int64(101), "example.com", int64(99000), int64(7)).
			AddRow(int64(202), "other.com", int64(1200), int64(3)))

	totals, err := repo.TopSitesByRequests(context.Background(), start, end, 10)

	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, int64(101), totals[0].SiteID)
	assert.Equal(t, int64(99000), totals[0].TotalRequests)
	assert.Equal(t, 7, totals[0].DaysWithData)
	assert.NoError(t, mock.ExpectationsWereMet())
}
