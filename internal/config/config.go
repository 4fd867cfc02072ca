package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Warehouse           Warehouse           `mapstructure:",squash"`
	Report              Report              `mapstructure:",squash"`
	Plausible           Plausible           `mapstructure:",squash"`
	Discord             Discord             `mapstructure:",squash"`
	ProfitabilitySync   ProfitabilitySync   `mapstructure:",squash"`
	TrafficCrossingSync TrafficCrossingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Enabled  bool   `mapstructure:"server_enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	APIToken string `mapstructure:"api_token"`
}

type Warehouse struct {
	DSN          string        `mapstructure:"-"`
	URL          string        `mapstructure:"clickhouse_url"`
	Database     string        `mapstructure:"clickhouse_database"`
	User         string        `mapstructure:"clickhouse_user"`
	Password     string        `mapstructure:"clickhouse_password"`
	QueryTimeout time.Duration `mapstructure:"clickhouse_query_timeout"`
}

type Report struct {
	Timezone         string  `mapstructure:"report_timezone"`
	RevenueThreshold float64 `mapstructure:"revenue_threshold"`
	RevenueDivisor   float64 `mapstructure:"revenue_divisor"`
	CostDivisor      float64 `mapstructure:"cost_divisor"`
	LookbackDays     int     `mapstructure:"lookback_days"`
	ExcludeSiteZero  bool    `mapstructure:"exclude_site_zero"`
	PreviewRowLimit  int     `mapstructure:"preview_row_limit"`
	OutputDir        string  `mapstructure:"output_dir"`
}

type Plausible struct {
	Token    string        `mapstructure:"plausible_api_token"`
	SiteID   string        `mapstructure:"plausible_site_id"`
	APIBases []string      `mapstructure:"plausible_api_bases"`
	Timeout  time.Duration `mapstructure:"plausible_timeout"`
}

type Discord struct {
	WebhookURL string `mapstructure:"discord_webhook_url"`
	MentionIDs string `mapstructure:"mention_ids"`
}

type ProfitabilitySync struct {
	CronSchedule string `mapstructure:"profitability_sync_cron"`
	Enabled      bool   `mapstructure:"profitability_sync_enabled"`
}

type TrafficCrossingSync struct {
	CronSchedule string `mapstructure:"traffic_crossing_sync_cron"`
	Enabled      bool   `mapstructure:"traffic_crossing_sync_enabled"`
	LookbackDays int    `mapstructure:"traffic_crossing_lookback_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_ENABLED", false)
	viper.SetDefault("API_TOKEN", "")

	viper.SetDefault("CLICKHOUSE_QUERY_TIMEOUT", "30s")

	viper.SetDefault("REPORT_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("REVENUE_THRESHOLD", 1.0)
	viper.SetDefault("REVENUE_DIVISOR", 1_000_000.0) // receita do GAM vem em micros
	viper.SetDefault("COST_DIVISOR", 1.0)
	viper.SetDefault("LOOKBACK_DAYS", 1)
	viper.SetDefault("EXCLUDE_SITE_ZERO", true)
	viper.SetDefault("PREVIEW_ROW_LIMIT", 10)
	viper.SetDefault("OUTPUT_DIR", ".")

	viper.SetDefault("PLAUSIBLE_API_BASES", "https://wearenalytics.com/api/v1,https://wearenalytics.com/api/v2,https://plausible.io/api/v1,https://plausible.io/api/v2")
	viper.SetDefault("PLAUSIBLE_TIMEOUT", "30s")

	// Defaults das crons de sincronização
	viper.SetDefault("PROFITABILITY_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("PROFITABILITY_SYNC_ENABLED", false)

	viper.SetDefault("TRAFFIC_CROSSING_SYNC_CRON", "0 8 * * 1") // Segundas-feiras às 8h
	viper.SetDefault("TRAFFIC_CROSSING_SYNC_ENABLED", false)
	viper.SetDefault("TRAFFIC_CROSSING_LOOKBACK_DAYS", 7)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Warehouse.validate(); err != nil {
		return nil, err
	}

	config.Warehouse.DSN = buildWarehouseDSN(config.Warehouse)

	return config, nil
}

// validate garante que as variáveis obrigatórias do warehouse estão presentes
// antes de qualquer query rodar.
func (w Warehouse) validate() error {
	missing := make([]string, 0, 4)
	if w.URL == "" {
		missing = append(missing, "CLICKHOUSE_URL")
	}
	if w.Database == "" {
		missing = append(missing, "CLICKHOUSE_DATABASE")
	}
	if w.User == "" {
		missing = append(missing, "CLICKHOUSE_USER")
	}
	if w.Password == "" {
		missing = append(missing, "CLICKHOUSE_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("faltam variáveis no .env: %s", strings.Join(missing, ", "))
	}

	return nil
}

// buildWarehouseDSN monta o DSN do driver clickhouse-go a partir da URL
// http(s) do warehouse, mantendo a sessão em modo somente leitura.
func buildWarehouseDSN(w Warehouse) string {
	return fmt.Sprintf(
		"%s/%s?username=%s&password=%s&readonly=1",
		strings.TrimRight(w.URL, "/"),
		w.Database,
		w.User,
		w.Password,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	locations := []string{".env", "../.env", "../../.env"}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
