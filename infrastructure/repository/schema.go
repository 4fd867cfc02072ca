package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

const sampleRowLimit = 5

// Nomes de tabela entram direto no FROM, então só identificadores simples
// são aceitos.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SchemaRepository expõe a exploração do catálogo do warehouse usada pela API
// operacional para investigar tabelas e colunas sem acesso direto ao banco.
type SchemaRepository interface {
	ListTables(ctx context.Context) ([]domain.TableInfo, error)
	DescribeTable(ctx context.Context, table string) (*domain.TableDetail, error)
	SearchColumns(ctx context.Context, keyword string) ([]domain.ColumnInfo, error)
}

type schemaRepository struct {
	conn *clickhouse.Connection
}

func NewSchemaRepository(conn *clickhouse.Connection) SchemaRepository {
	return &schemaRepository{conn: conn}
}

func (r *schemaRepository) ListTables(ctx context.Context) ([]domain.TableInfo, error) {
	query, args, err := squirrel.
		Select("name", "engine", "total_rows").
		From("system.tables").
		Where("database = currentDatabase()").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tables := make([]domain.TableInfo, 0)
	for rows.Next() {
		t := domain.TableInfo{}
		if err := rows.Scan(&t.Name, &t.Engine, &t.RowCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear tabela: %w", err)
		}
		tables = append(tables, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tables, nil
}

func (r *schemaRepository) DescribeTable(ctx context.Context, table string) (*domain.TableDetail, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("nome de tabela inválido: %q", table)
	}

	query, args, err := squirrel.
		Select("name", "engine", "total_rows").
		From("system.tables").
		Where("database = currentDatabase()").
		Where(squirrel.Eq{"name": table}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	detail := &domain.TableDetail{}
	if err := r.conn.QueryRowContext(ctx, query, args...).
		Scan(&detail.Name, &detail.Engine, &detail.RowCount); err != nil {
		return nil, fmt.Errorf("erro ao consultar a tabela %s: %w", table, err)
	}

	detail.Columns, err = r.tableColumns(ctx, table)
	if err != nil {
		return nil, err
	}

	detail.SampleRows, err = r.sampleRows(ctx, table)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *schemaRepository) tableColumns(ctx context.Context, table string) ([]domain.ColumnInfo, error) {
	query, args, err := squirrel.
		Select("table", "name", "type").
		From("system.columns").
		Where("database = currentDatabase()").
		Where(squirrel.Eq{"table": table}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	columns := make([]domain.ColumnInfo, 0)
	for rows.Next() {
		c := domain.ColumnInfo{}
		if err := rows.Scan(&c.Table, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("erro ao escanear coluna: %w", err)
		}
		columns = append(columns, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return columns, nil
}

func (r *schemaRepository) sampleRows(ctx context.Context, table string) ([]map[string]string, error) {
	rows, err := r.conn.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, sampleRowLimit))
	if err != nil {
		return nil, fmt.Errorf("erro ao coletar amostra da tabela %s: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler colunas da amostra: %w", err)
	}

	samples := make([]map[string]string, 0, sampleRowLimit)
	for rows.Next() {
		values := make([]sql.NullString, len(names))
		targets := make([]interface{}, len(names))
		for i := range values {
			targets[i] = &values[i]
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("erro ao escanear amostra: %w", err)
		}

		sample := make(map[string]string, len(names))
		for i, name := range names {
			sample[name] = values[i].String
		}
		samples = append(samples, sample)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return samples, nil
}

func (r *schemaRepository) SearchColumns(ctx context.Context, keyword string) ([]domain.ColumnInfo, error) {
	query, args, err := squirrel.
		Select("table", "name", "type").
		From("system.columns").
		Where("database = currentDatabase()").
		Where(squirrel.Like{"name": "%" + keyword + "%"}).
		OrderBy("table", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	columns := make([]domain.ColumnInfo, 0)
	for rows.Next() {
		c := domain.ColumnInfo{}
		if err := rows.Scan(&c.Table, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("erro ao escanear coluna: %w", err)
		}
		columns = append(columns, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return columns, nil
}
