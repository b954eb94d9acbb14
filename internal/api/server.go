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
	"github.com/vfg2006/crm-api/internal/api/handler"
	"github.com/vfg2006/crm-api/internal/api/handler/router"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/scheduler"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
	"github.com/vfg2006/crm-api/internal/usecases/chatting"
	"github.com/vfg2006/crm-api/internal/usecases/exporting"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Reporter      reporting.Reporter
	Catalog       catalog.Catalog
	Exporter      exporting.Exporter
	Chatter       chatting.Chatter
	Authenticator authenticating.Authenticator
	ChatMonitor   *scheduler.ChatHealthMonitor
}

func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Reporter, cfg.Dashboard.TopLimit)...),
		router.WithRoutes(handler.Catalog(services.Catalog)...),
		router.WithRoutes(handler.Purchases(services.Catalog)...),
		router.WithRoutes(handler.Activities(services.Catalog)...),
		router.WithRoutes(handler.Export(services.Exporter)...),
		router.WithRoutes(handler.Chat(services.Chatter, services.ChatMonitor)...),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
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

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
