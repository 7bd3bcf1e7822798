package main

import (
	"context"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/infrastructure/database/postgres"
	"github.com/larscobian/Pizzana-Dashboard/internal/config"
	"github.com/sirupsen/logrus"
)

const migrationTimeout = time.Minute

// Aplica as migrations do histórico de KPIs sem subir a API
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	applied, err := postgres.Migrate(ctx, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrations")
	}

	logrus.WithFields(logrus.Fields{
		"applied":  len(applied),
		"duration": time.Since(startTime).String(),
	}).Info("Migração concluída")
}
