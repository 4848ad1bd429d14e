package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/google"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/meta"
	"github.com/vfg2006/budget-review-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/budget-review-api/infrastructure/migration"
	"github.com/vfg2006/budget-review-api/infrastructure/repository"
	"github.com/vfg2006/budget-review-api/internal/api"
	"github.com/vfg2006/budget-review-api/internal/config"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/monitoring"
	"github.com/vfg2006/budget-review-api/internal/scheduler"
	"github.com/vfg2006/budget-review-api/internal/usecases/aggregating"
	"github.com/vfg2006/budget-review-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-review-api/internal/usecases/budgeting"
	"github.com/vfg2006/budget-review-api/internal/usecases/reviewing"
	"github.com/vfg2006/budget-review-api/pkg/log"
)

func main() {
	log.Setup("info", nil)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel, nil)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := migration.Migrate(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	repos := reviewing.Repositories{
		Clients:        repository.NewClientRepository(pgConn),
		Accounts:       repository.NewAdAccountRepository(pgConn),
		Reviews:        repository.NewReviewRepository(pgConn),
		CustomBudgets:  repository.NewCustomBudgetRepository(pgConn),
		CampaignHealth: repository.NewCampaignHealthRepository(pgConn),
		BatchLogs:      repository.NewBatchLogRepository(pgConn),
		BatchProgress:  repository.NewBatchProgressRepository(pgConn),
	}

	platforms := platformClients(ctx, cfg)

	metrics := monitoring.New(cfg.App.MetricsEnabled)
	aggregator := aggregating.NewAggregator(
		aggregating.WithPolicy(budgeting.NewPolicy(cfg.BudgetReview.AdjustmentThresholdPercent)),
	)

	reviewService := reviewing.NewService(
		repos,
		platforms,
		cfg.BudgetReview.RequestDelay,
		metrics,
		reviewing.WithRunner(aggregating.NewRunner(aggregator, metrics)),
	)

	syncService := scheduler.NewBudgetReviewSyncService(repos.Clients, reviewService, platforms, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de revisão de orçamentos")
	} else {
		logrus.Info("Agendador de revisão de orçamentos iniciado com sucesso")
	}

	authenticator := authenticating.NewService(cfg)

	server, err := api.New(cfg, reviewService, authenticator, syncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// platformClients registra apenas as plataformas com credenciais configuradas
func platformClients(ctx context.Context, cfg *config.Config) reviewing.PlatformClients {
	platforms := reviewing.PlatformClients{}

	var storage config.SecretStorage
	if renderClient := config.NewRenderClient(cfg); renderClient != nil {
		storage = renderClient
	}

	if err := config.LoadSecrets(ctx, cfg, storage); err != nil {
		logrus.WithError(err).Warn("Erro ao carregar segredos do Render")
	}

	if cfg.Meta.HasCredentials() {
		tokenManager := metaclient.NewTokenManager(cfg.Meta, &metaclient.LongLivedTokenExchanger{
			BaseURL:   cfg.Meta.BaseURL,
			Version:   cfg.Meta.Version,
			AppID:     cfg.Meta.AppID,
			AppSecret: cfg.Meta.AppSecret,
		}, storage)
		go tokenManager.StartAutoRefresh(ctx)

		platforms[domain.PlatformMeta] = meta.New(metaclient.NewClient(cfg.Meta.URL, tokenManager, nil))
	} else {
		logrus.Warn("Credenciais do Meta ausentes, plataforma desabilitada")
	}

	if cfg.Google.HasCredentials() {
		platforms[domain.PlatformGoogle] = google.New(googleclient.NewClient(ctx, cfg.Google, nil))
	} else {
		logrus.Warn("Credenciais do Google Ads ausentes, plataforma desabilitada")
	}

	return platforms
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
