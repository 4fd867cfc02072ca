package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
)

func testReportConfig() config.Report {
	return config.Report{
		Timezone:       "America/Sao_Paulo",
		CostDivisor:    1.0,
		RevenueDivisor: 1_000_000.0,
	}
}

func TestTotalCostBySite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCostRepository(&clickhouse.Connection{DB: db}, testReportConfig())
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("sum(metrics_cost) / ? AS total_cost FROM gads_costs")).
		WithArgs(1.0, "2025-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "total_cost"}).
			AddRow(int64(101), 12.5).
			AddRow(int64(102), 0.42))

	costs, err := repo.TotalCostBySite(context.Background(), date, nil)

	assert.NoError(t, err)
	assert.Equal(t, map[int64]float64{101: 12.5, 102: 0.42}, costs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalCostBySiteAppliesSiteFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCostRepository(&clickhouse.Connection{DB: db}, testReportConfig())
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("site_id IN (?,?)")).
		WithArgs(1.0, "2025-03-10", int64(101), int64(202)).
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "total_cost"}).
			AddRow(int64(101), 3.3))

	costs, err := repo.TotalCostBySite(context.Background(), date, []int64{101, 202})

	assert.NoError(t, err)
	assert.Equal(t, map[int64]float64{101: 3.3}, costs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalCostBySiteQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCostRepository(&clickhouse.Connection{DB: db}, testReportConfig())
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM gads_costs").
		WillReturnError(errors.New("connection refused"))

	costs, err := repo.TotalCostBySite(context.Background(), date, nil)

	assert.Error(t, err)
	assert.Nil(t, costs)
}
