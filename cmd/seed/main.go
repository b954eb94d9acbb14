// Comando seed popula o banco com um catálogo de demonstração e o administrador inicial.
//
//	SEED_ADMIN_EMAIL=admin@exemplo.com SEED_ADMIN_PASSWORD=trocar123 go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/migrations"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
	"github.com/vfg2006/crm-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migrations.RunMigrations(conn.DB, true); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	catalogService := catalog.NewService(
		repository.NewProductRepository(conn),
		repository.NewCategoryRepository(conn),
		repository.NewCustomerRepository(conn),
		repository.NewCustomerProductRepository(conn),
		repository.NewActivityRepository(conn),
	)
	seeder := NewSeeder(catalogService, repository.NewUserRepository(conn))

	if email, password := os.Getenv("SEED_ADMIN_EMAIL"), os.Getenv("SEED_ADMIN_PASSWORD"); email != "" && password != "" {
		if err := seeder.EnsureAdmin(ctx, "Administrador", email, password); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar administrador")
		}
	}

	if err := seeder.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao popular banco")
	}
}
