package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/infrastructure/database/redisdb"
	"github.com/vfg2006/crm-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/crm-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/api"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/migrations"
	"github.com/vfg2006/crm-api/internal/scheduler"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
	"github.com/vfg2006/crm-api/internal/usecases/chatting"
	"github.com/vfg2006/crm-api/internal/usecases/exporting"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	level := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migrations.RunMigrations(pgConn.DB, cfg.Database.AutoMigrate); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	productRepo := repository.NewProductRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	customerProductRepo := repository.NewCustomerProductRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	source := repository.NewReportingSource(productRepo, categoryRepo, customerRepo, activityRepo, customerProductRepo)

	reporter := reporting.NewService(source)
	exporter := exporting.NewService(source)
	catalogService := catalog.NewService(productRepo, categoryRepo, customerRepo, customerProductRepo, activityRepo)
	authenticator := authenticating.NewService(userRepo, cfg)

	history := chatHistory(ctx, cfg)
	integrator := n8n.New(n8nclient.NewClient(&cfg.Chat))
	limiter := chatting.NewSessionLimiter(cfg.Chat.RateLimitPerSecond, cfg.Chat.RateLimitBurst)
	chatter := chatting.NewService(integrator, history, limiter)

	chatMonitor := scheduler.NewChatHealthMonitor(chatter, cfg)
	if err := chatMonitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor do webhook do chat")
	} else {
		logrus.Info("Monitor do webhook do chat iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:      reporter,
		Catalog:       catalogService,
		Exporter:      exporter,
		Chatter:       chatter,
		Authenticator: authenticator,
		ChatMonitor:   chatMonitor,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar de diretório")
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

// chatHistory usa o Redis quando REDIS_URL está definido. Sem ele, ou se a
// conexão falhar, o histórico fica em memória.
func chatHistory(ctx context.Context, cfg *config.Config) repository.ChatHistoryRepository {
	if cfg.Redis.URL == "" {
		logrus.Info("REDIS_URL não definido, histórico do chat em memória")
		return repository.NewMemoryChatHistory(cfg.Chat.HistoryLimit, cfg.Chat.HistoryTTL)
	}

	client, err := redisdb.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, histórico do chat em memória")
		return repository.NewMemoryChatHistory(cfg.Chat.HistoryLimit, cfg.Chat.HistoryTTL)
	}

	logrus.Info("Histórico do chat no Redis")
	return repository.NewRedisChatHistory(client, cfg.Chat.HistoryLimit, cfg.Chat.HistoryTTL)
}
