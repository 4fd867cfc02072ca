package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/integrator/plausible"
	"github.com/wearenalytics/site-profit-monitor/infrastructure/repository"
	"github.com/wearenalytics/site-profit-monitor/internal/api/handler"
	"github.com/wearenalytics/site-profit-monitor/internal/api/handler/router"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/scheduler"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/crossing"
	"github.com/wearenalytics/site-profit-monitor/internal/usecases/reconciling"
	"github.com/wearenalytics/site-profit-monitor/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reconciler reconciling.Reconciler,
	crosser crossing.Crosser,
	schemaRepo repository.SchemaRepository,
	analytics plausible.PlausibleIntegrator,
	location *time.Location,
	profitabilitySyncService *scheduler.ProfitabilitySyncService,
	trafficCrossingSyncService *scheduler.TrafficCrossingSyncService,
) (*Server, error) {
	jobServices := handler.JobServices{
		ProfitabilitySyncService:   profitabilitySyncService,
		TrafficCrossingSyncService: trafficCrossingSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Reports(reconciler, crosser, location)...),
		router.WithRoutes(handler.Schema(schemaRepo)...),
		router.WithRoutes(handler.Analytics(analytics, config.Plausible.SiteID, location)...),
		router.WithRoutes(handler.Jobs(jobServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.TokenMiddleware(config.Server.APIToken),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
