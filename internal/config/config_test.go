package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarehouseValidate(t *testing.T) {
	tests := []struct {
		name      string
		warehouse Warehouse
		wantErr   string
	}{
		{
			name: "Configuração completa passa",
			warehouse: Warehouse{
				URL:      "https://ch.example.com:8443",
				Database: "warehouse",
				User:     "leitor",
				Password: "segredo",
			},
		},
		{
			name: "Falta a senha",
			warehouse: Warehouse{
				URL:      "https://ch.example.com:8443",
				Database: "warehouse",
				User:     "leitor",
			},
			wantErr: "CLICKHOUSE_PASSWORD",
		},
		{
			name:      "Faltam todas as variáveis",
			warehouse: Warehouse{},
			wantErr:   "CLICKHOUSE_URL, CLICKHOUSE_DATABASE, CLICKHOUSE_USER, CLICKHOUSE_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.warehouse.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildWarehouseDSN(t *testing.T) {
	dsn := buildWarehouseDSN(Warehouse{
		URL:      "https://ch.example.com:8443/",
		Database: "warehouse",
		User:     "leitor",
		Password: "segredo",
	})

	assert.Equal(t, "https://ch.example.com:8443/warehouse?username=leitor&password=segredo&readonly=1", dsn)
}
