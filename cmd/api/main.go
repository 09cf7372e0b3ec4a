package main

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/instantly"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/instantly/instantlyclient"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/pipl"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/pipl/piplclient"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/smartlead"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/smartlead/smartleadclient"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/sequencer-stats-api/internal/api"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
	"github.com/vfg2006/sequencer-stats-api/internal/scheduler"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/account"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/aggregating"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/authenticating"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/sharing"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	analyticsRepo := repository.NewCampaignAnalyticsRepository(pgConn)
	apiKeyRepo := repository.NewAPIKeyRepository(pgConn)
	sharedCampaignRepo := repository.NewSharedCampaignRepository(pgConn)

	httpClient := &http.Client{Timeout: cfg.Fetch.Timeout}

	registry := integrator.NewRegistry(
		smartlead.New(smartleadclient.NewClient(cfg.Smartlead, httpClient)),
		pipl.New(piplclient.NewClient(cfg.Pipl, httpClient), cfg.Fetch.PiplLookbackDays),
		instantly.New(instantlyclient.NewClient(cfg.Instantly, httpClient)),
	)

	engine := aggregating.NewEngine(analyticsRepo)
	ingestService := ingesting.NewService(registry, apiKeyRepo, engine, cfg.Fetch)
	shareService := sharing.NewService(sharedCampaignRepo)
	accountService := account.NewService(apiKeyRepo, registry)
	validator := authenticating.NewTokenValidator(cfg.Auth.Secret)

	statsSyncService := scheduler.NewStatsSyncService(apiKeyRepo, ingestService, cfg.StatsSync)
	if err := statsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de estatísticas")
	}

	server, err := api.New(cfg, api.Services{
		Runner:     ingestService,
		Aggregator: engine,
		Sharer:     shareService,
		Accounts:   accountService,
		Validator:  validator,
		StatsSync:  statsSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
