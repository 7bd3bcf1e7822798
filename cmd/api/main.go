package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/infrastructure/database/postgres"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/integrator/sheets"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/integrator/sheets/sheetsclient"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/repository"
	"github.com/larscobian/Pizzana-Dashboard/internal/api"
	"github.com/larscobian/Pizzana-Dashboard/internal/config"
	"github.com/larscobian/Pizzana-Dashboard/internal/scheduler"
	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding"
	"github.com/sirupsen/logrus"
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

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(cfg, sheetsClient).WithCache(cfg.GoogleSheets.CacheTTL)

	dashboardService := dashboarding.NewService(cfg, sheetsIntegrator)

	// O histórico de KPIs é opcional; sem banco o dashboard usa apenas a planilha
	var kpiRepo repository.PeriodKPIRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		kpiRepo = repository.NewPeriodKPIRepository(pgConn)
		dashboardService = dashboardService.(*dashboarding.Service).WithKPIHistory(kpiRepo)
	}

	datasetSyncService := scheduler.NewDatasetSyncService(sheetsIntegrator, cfg)
	kpiHistorySyncService := scheduler.NewKPIHistorySyncService(sheetsIntegrator, kpiRepo, cfg)

	if err := datasetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de leitura da planilha")
	} else {
		logrus.Info("Agendador de leitura da planilha iniciado com sucesso")
	}

	if err := kpiHistorySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do histórico de KPIs")
	} else {
		logrus.Info("Agendador do histórico de KPIs iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		datasetSyncService,
		kpiHistorySyncService,
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

// pgconn cria a conexão com o banco e aplica as migrations pendentes
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	applied, err := postgres.Migrate(ctx, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrations")
	}

	logrus.WithField("migrations", len(applied)).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
