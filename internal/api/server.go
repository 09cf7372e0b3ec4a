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
	"github.com/vfg2006/sequencer-stats-api/internal/api/handler"
	"github.com/vfg2006/sequencer-stats-api/internal/api/handler/router"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
	"github.com/vfg2006/sequencer-stats-api/internal/scheduler"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/account"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/aggregating"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/authenticating"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/sharing"
	"github.com/vfg2006/sequencer-stats-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Runner     ingesting.Runner
	Aggregator aggregating.Aggregator
	Sharer     sharing.Sharer
	Accounts   account.AccountService
	Validator  authenticating.TokenValidator
	StatsSync  scheduler.Syncer
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Campaigns(services.Runner, services.Aggregator)...),
		router.WithRoutes(handler.Shares(services.Sharer)...),
		router.WithRoutes(handler.APIKeys(services.Accounts)...),
		router.WithRoutes(handler.CronJobs(services.StatsSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Validator),
	}

	return alice.New(middlewares...).Then(rt)
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

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
