package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/database/clickhouse"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible/plausibleclient"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/notifier/discord"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/repository"
	"github.com/wearenalytics/site-profit-monitor/internal/api"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/report"
	"github.com/wearenalytics/site-profit-monitor/internal/scheduler"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/crossing"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/reconciling"
	"github.com/wearenalytics/site-profit-monitor/pkg/utils"
)

func main() {
	dateFlag := flag.String("date", "", "data do relatório no formato YYYY-MM-DD (padrão: ontem)")
	jobFlag := flag.String("job", "profitability", "job a executar no modo one-shot: profitability ou traffic-crossing")
	serveFlag := flag.Bool("serve", false, "sobe o servidor HTTP e as crons em vez de rodar uma única vez")
	flag.Parse()

	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	location, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("Fuso horário inválido: %s", cfg.Report.Timezone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chConn := chconn(ctx, cfg.Warehouse)
	defer chConn.Close()

	costRepo := repository.NewCostRepository(chConn, cfg.Report)
	revenueRepo := repository.NewRevenueRepository(chConn, cfg.Report)
	trafficRepo := repository.NewTrafficRepository(chConn)
	schemaRepo := repository.NewSchemaRepository(chConn)

	plausibleClient := plausibleclient.NewClient(&cfg.Plausible)
	analytics := plausible.New(cfg, plausibleClient)

	reconciler := reconciling.NewService(cfg, costRepo, revenueRepo)
	crosser := crossing.NewService(trafficRepo, analytics)

	sink := report.NewCSVSink(cfg.Report.OutputDir)
	notifier := discord.NewNotifier(cfg)

	profitabilitySyncService := scheduler.NewProfitabilitySyncService(reconciler, sink, notifier, location, cfg)
	trafficCrossingSyncService := scheduler.NewTrafficCrossingSyncService(crosser, sink, location, cfg)

	if !*serveFlag && !cfg.Server.Enabled {
		runOnce(ctx, *jobFlag, *dateFlag, location, profitabilitySyncService, trafficCrossingSyncService)
		return
	}

	if err := profitabilitySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de rentabilidade")
	} else {
		logrus.Info("Agendador de reconciliação de rentabilidade iniciado com sucesso")
	}

	if err := trafficCrossingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de requests x visitors")
	} else {
		logrus.Info("Agendador de requests x visitors iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reconciler,
		crosser,
		schemaRepo,
		analytics,
		location,
		profitabilitySyncService,
		trafficCrossingSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// runOnce executa um único ciclo do job pedido e encerra o processo.
func runOnce(
	ctx context.Context,
	job string,
	dateStr string,
	location *time.Location,
	profitabilitySyncService *scheduler.ProfitabilitySyncService,
	trafficCrossingSyncService *scheduler.TrafficCrossingSyncService,
) {
	switch job {
	case "profitability":
		date := utils.YesterdayIn(location)
		if dateStr != "" {
			parsed, err := utils.ParseDate(dateStr)
			if err != nil {
				logrus.WithError(err).Fatalf("Data inválida: %s, use o formato YYYY-MM-DD", dateStr)
			}
			date = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, location)
		}

		if err := profitabilitySyncService.RunForDate(ctx, date); err != nil {
			logrus.WithError(err).Fatal("Erro na reconciliação de rentabilidade")
		}

	case "traffic-crossing":
		if err := trafficCrossingSyncService.RunWindow(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro no cruzamento de requests x visitors")
		}

	default:
		logrus.Fatalf("Job inválido: %s, use profitability ou traffic-crossing", job)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// chconn cria e valida a conexão com o ClickHouse
func chconn(ctx context.Context, cfg config.Warehouse) *clickhouse.Connection {
	conn, err := clickhouse.NewConnection(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao ClickHouse")
	}

	logrus.Info("Conexão com ClickHouse estabelecida com sucesso")
	return conn
}
