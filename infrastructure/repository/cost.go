package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
)

const costTable = "gads_costs"

type CostRepository interface {
	// TotalCostBySite soma o custo de anúncios por site na data do relatório.
	// A soma cobre TODAS as linhas do dia, sem restrição ao último timestamp,
	// ao contrário da receita. Sites com custo zero não entram no resultado.
	TotalCostBySite(ctx context.Context, date time.Time, siteIDs []int64) (map[int64]float64, error)
}

type costRepository struct {
	conn     *clickhouse.Connection
	timezone string
	divisor  float64
}

func NewCostRepository(conn *clickhouse.Connection, cfg config.Report) CostRepository {
	return &costRepository{
		conn:     conn,
		timezone: cfg.Timezone,
		divisor:  cfg.CostDivisor,
	}
}

func (r *costRepository) TotalCostBySite(ctx context.Context, date time.Time, siteIDs []int64) (map[int64]float64, error) {
	// A tabela de custos só tem timestamp UTC; a data do relatório é definida
	// no fuso local, então a conversão acontece dentro do predicado.
	localTS := fmt.Sprintf("toTimeZone(toDateTime(timestamp), '%s')", r.timezone)

	builder := squirrel.
		Select("site_id").
		Column(squirrel.Expr("sum(metrics_cost) / ? AS total_cost", r.divisor)).
		From(costTable).
		Where(squirrel.Expr(fmt.Sprintf("toDate(%s) = toDate(?)", localTS), date.Format("2006-01-02"))).
		GroupBy("site_id").
		Having("total_cost > 0")

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

	costs := make(map[int64]float64)
	for rows.Next() {
		var siteID int64
		var totalCost float64
		if err := rows.Scan(&siteID, &totalCost); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo: %w", err)
		}
		costs[siteID] = totalCost
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}
