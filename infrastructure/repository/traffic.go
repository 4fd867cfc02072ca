package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

const trafficTable = "gam_ecpms"

type TrafficRepository interface {
	// RequestVolume retorna requests de ad exchange por site/data/domínio no
	// período, somente linhas com requests positivos.
	RequestVolume(ctx context.Context, start, end time.Time, siteIDs []int64) ([]domain.RequestVolume, error)

	// TopSitesByRequests agrega requests por site no período, ordenado do
	// maior para o menor volume.
	TopSitesByRequests(ctx context.Context, start, end time.Time, limit uint64) ([]domain.SiteRequestTotal, error)
}

type trafficRepository struct {
	conn *clickhouse.Connection
}

func NewTrafficRepository(conn *clickhouse.Connection) TrafficRepository {
	return &trafficRepository{conn: conn}
}

func (r *trafficRepository) RequestVolume(ctx context.Context, start, end time.Time, siteIDs []int64) ([]domain.RequestVolume, error) {
	builder := squirrel.
		Select("site_id", "date", "domain").
		Column(squirrel.Expr("sum(ad_exchange_total_requests) AS total_requests")).
		From(trafficTable).
		Where(squirrel.Expr("date >= ? AND date <= ?", start.Format("2006-01-02"), end.Format("2006-01-02"))).
		Where("ad_exchange_total_requests > 0").
		GroupBy("site_id", "date", "domain").
		OrderBy("site_id", "date")

	if len(siteIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"site_id": siteIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	volumes := make([]domain.RequestVolume, 0)
	for rows.Next() {
		v := domain.RequestVolume{}
		if err := rows.Scan(&v.SiteID, &v.Date, &v.Domain, &v.TotalRequests); err != nil {
			return nil, fmt.Errorf("erro ao escanear volume de requests: %w", err)
		}
		volumes = append(volumes, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return volumes, nil
}

func (r *trafficRepository) TopSitesByRequests(ctx context.Context, start, end time.Time, limit uint64) ([]domain.SiteRequestTotal, error) {
	builder := squirrel.
		Select("site_id", "domain").
		Column(squirrel.Expr("sum(ad_exchange_total_requests) AS total_requests")).
		Column(squirrel.Expr("count(DISTINCT date) AS days_with_data")).
		From(trafficTable).
		Where(squirrel.Expr("date >= ? AND date <= ?", start.Format("2006-01-02"), end.Format("2006-01-02"))).
		Where("ad_exchange_total_requests > 0").
		GroupBy("site_id", "domain").
		OrderBy("total_requests DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.SiteRequestTotal, 0)
	for rows.Next() {
		t := domain.SiteRequestTotal{}
		if err := rows.Scan(&t.SiteID, &t.Domain, &t.TotalRequests, &t.DaysWithData); err != nil {
			return nil, fmt.Errorf("erro ao escanear total de requests: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}
