package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/infrastructure/database/postgres"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/sheets/sheetclient"
	"github.com/vfg2006/spendsphere-api/infrastructure/repository"
	"github.com/vfg2006/spendsphere-api/internal/api"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/config"
	"github.com/vfg2006/spendsphere-api/internal/scheduler"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/internal/usecases/resolving"
	"github.com/vfg2006/spendsphere-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	masterBudgetRepo := repository.NewMasterBudgetRepository(pgConn)
	allocationRepo := repository.NewAllocationRepository(pgConn)
	rolloverRepo := repository.NewRolloverRepository(pgConn)
	accelerationRepo := repository.NewAccelerationRepository(pgConn)

	tenantProvider := tenant.NewFileProvider(cfg.Tenants.Dir)

	store := cache.NewFileStore(cfg.Cache.Dir)
	loader := cache.NewLoader(store)

	adsClient := gadsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	sheetClient := sheetclient.NewClient(cfg)
	sheetIntegrator := sheets.New(cfg, sheetClient)

	resolverService := resolving.NewService(loader, adsIntegrator, sheetIntegrator)

	rowBuilder := syncing.NewRowBuilder(
		loader,
		adsIntegrator,
		sheetIntegrator,
		masterBudgetRepo,
		allocationRepo,
		rolloverRepo,
		accelerationRepo,
	)

	syncService := syncing.NewService(
		resolverService,
		rowBuilder,
		syncing.NewDeduper(store),
		syncing.NewExecutor(adsIntegrator),
		store,
	)

	// Inicializa o agendador de sincronização automática de orçamentos
	budgetSyncService := scheduler.NewBudgetSyncService(tenantProvider, syncService, cfg)

	if err := budgetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de orçamentos")
	} else {
		logrus.Info("Agendador de sincronização de orçamentos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		tenantProvider,
		syncService,
		resolverService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
