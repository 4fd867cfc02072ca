package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

func TestListTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchemaRepository(&clickhouse.Connection{DB: db})

	mock.ExpectQuery(regexp.QuoteMeta("FROM system.tables WHERE database = currentDatabase()")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "engine", "total_rows"}).
			AddRow("gads_costs", "MergeTree", uint64(1200)).
			AddRow("gam_impressions", "MergeTree", uint64(98000)))

	tables, err := repo.ListTables(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.TableInfo{
		{Name: "gads_costs", Engine: "MergeTree", RowCount: 1200},
		{Name: "gam_impressions", Engine: "MergeTree", RowCount: 98000},
	}, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchemaRepository(&clickhouse.Connection{DB: db})

	mock.ExpectQuery(regexp.QuoteMeta("FROM system.tables WHERE database = currentDatabase() AND name = ?")).
		WithArgs("gads_costs").
		WillReturnRows(sqlmock.NewRows([]string{"name", "engine", "total_rows"}).
			AddRow("gads_costs", "MergeTree", uint64(1200)))

	mock.ExpectQuery(regexp.QuoteMeta("FROM system.columns WHERE database = currentDatabase() AND table = ? ORDER BY position")).
		WithArgs("gads_costs").
		WillReturnRows(sqlmock.NewRows([]string{"table", "name", "type"}).
			AddRow("gads_costs", "site_id", "Int64").
			AddRow("gads_costs", "metrics_cost", "Float64"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM gads_costs LIMIT 5")).
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "metrics_cost"}).
			AddRow(int64(101), 12.5))

	detail, err := repo.DescribeTable(context.Background(), "gads_costs")

	require.NoError(t, err)
	assert.Equal(t, "gads_costs", detail.Name)
	assert.Equal(t, uint64(1200), detail.RowCount)
	require.Len(t, detail.Columns, 2)
	assert.Equal(t, "metrics_cost", detail.Columns[1].Name)
	require.Len(t, detail.SampleRows, 1)
	assert.Equal(t, "101", detail.SampleRows[0]["site_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeTableRejeitaNomeInvalido(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchemaRepository(&clickhouse.Connection{DB: db})

	detail, err := repo.DescribeTable(context.Background(), "gads_costs; DROP TABLE x")

	assert.Error(t, err)
	assert.Nil(t, detail)
}

func TestSearchColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchemaRepository(&clickhouse.Connection{DB: db})

	mock.ExpectQuery(regexp.QuoteMeta("FROM system.columns WHERE database = currentDatabase() AND name LIKE ?")).
		WithArgs("%revenue%").
		WillReturnRows(sqlmock.NewRows([]string{"table", "name", "type"}).
			AddRow("gam_impressions", "ad_exchange_line_item_level_revenue", "Int64"))

	columns, err := repo.SearchColumns(context.Background(), "revenue")

	assert.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, "gam_impressions", columns[0].Table)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchColumnsPropagaErroDaQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchemaRepository(&clickhouse.Connection{DB: db})

	queryErr := errors.New("connection reset")
	mock.ExpectQuery("system.columns").WillReturnError(queryErr)

	columns, err := repo.SearchColumns(context.Background(), "revenue")

	assert.Nil(t, columns)
	assert.ErrorIs(t, err, queryErr)
}
