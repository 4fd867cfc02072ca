package clickhouse

import (
	"context"
	"database/sql"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pkg/errors"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre uma conexão somente leitura com o warehouse via protocolo
// HTTP do ClickHouse. O DSN já carrega readonly=1 montado pela configuração.
func NewConnection(
	ctx context.Context,
	cfg config.Warehouse,
) (*Connection, error) {
	db, err := sql.Open("clickhouse", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a conexão com o ClickHouse")
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao validar a conexão com o ClickHouse")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
