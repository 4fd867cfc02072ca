package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

const revenueTable = "gam_impressions"

type RevenueRepository interface {
	// LatestRevenueBySite soma a receita por site restrita às linhas do último
	// timestamp do dia. Os relatórios de receita do GAM são cumulativos dentro
	// do dia: cada timestamp substitui os anteriores, então somar o dia inteiro
	// contaria a mesma receita várias vezes.
	LatestRevenueBySite(ctx context.Context, date time.Time) (map[int64]domain.RevenueAggregate, error)

	// LatestDomainBySite resolve o domínio mais recente de cada site dentro da
	// janela [start, end], para sites sem domínio na data do relatório.
	LatestDomainBySite(ctx context.Context, start, end time.Time) (map[int64]string, error)
}

type revenueRepository struct {
	conn     *clickhouse.Connection
	timezone string
	divisor  float64
}

func NewRevenueRepository(conn *clickhouse.Connection, cfg config.Report) RevenueRepository {
	return &revenueRepository{
		conn:     conn,
		timezone: cfg.Timezone,
		divisor:  cfg.RevenueDivisor,
	}
}

func (r *revenueRepository) LatestRevenueBySite(ctx context.Context, date time.Time) (map[int64]domain.RevenueAggregate, error) {
	dateStr := date.Format("2006-01-02")
	localTS := fmt.Sprintf("toTimeZone(toDateTime(timestamp), '%s')", r.timezone)
	localTSOuter := fmt.Sprintf("toTimeZone(toDateTime(rv.timestamp), '%s')", r.timezone)

	latestTS := squirrel.
		Select("site_id").
		Column(squirrel.Expr(fmt.Sprintf("max(%s) AS ts_latest", localTS))).
		From(revenueTable).
		Where(squirrel.Expr("toDate(date) = toDate(?)", dateStr)).
		GroupBy("site_id")

	// O desempate do argMax usa a tupla (timestamp, domínio): em timestamps
	// iguais vence o domínio lexicograficamente maior, que é estável entre
	// execuções e entre engines.
	builder := squirrel.
		Select("rv.site_id").
		Column(squirrel.Expr(fmt.Sprintf("argMax(rv.domain, (%s, rv.domain)) AS domain_latest", localTSOuter))).
		Column(squirrel.Expr("sum(rv.ad_exchange_line_item_level_revenue) / ? AS revenue_latest", r.divisor)).
		From(revenueTable + " AS rv").
		JoinClause(latestTS.
			Prefix("INNER JOIN (").
			Suffix(fmt.Sprintf(") AS rl ON rv.site_id = rl.site_id AND %s = rl.ts_latest", localTSOuter))).
		Where(squirrel.Expr("toDate(rv.date) = toDate(?)", dateStr)).
		GroupBy("rv.site_id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	revenues := make(map[int64]domain.RevenueAggregate)
	for rows.Next() {
		agg := domain.RevenueAggregate{}
		if err := rows.Scan(&agg.SiteID, &agg.Domain, &agg.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita: %w", err)
		}
		revenues[agg.SiteID] = agg
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenues, nil
}

func (r *revenueRepository) LatestDomainBySite(ctx context.Context, start, end time.Time) (map[int64]string, error) {
	localTS := fmt.Sprintf("toTimeZone(toDateTime(timestamp), '%s')", r.timezone)

	builder := squirrel.
		Select("site_id").
		Column(squirrel.Expr(fmt.Sprintf("argMax(domain, (%s, domain)) AS domain_recent", localTS))).
		From(revenueTable).
		Where(squirrel.Expr("toDate(date) >= toDate(?) AND toDate(date) <= toDate(?)",
			start.Format("2006-01-02"), end.Format("2006-01-02"))).
		GroupBy("site_id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	domains := make(map[int64]string)
	for rows.Next() {
		var siteID int64
		var recentDomain string
		if err := rows.Scan(&siteID, &recentDomain); err != nil {
			return nil, fmt.Errorf("erro ao escanear domínio: %w", err)
		}
		domains[siteID] = recentDomain
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return domains, nil
}
