// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/chatting"
)

const (
	checkTimeout    = 10 * time.Second
	pruneEveryMins  = 10
	limiterIdleTime = 30 * time.Minute
)

type ChatHealthConfig struct {
	CronSchedule string
	Enabled      bool
}

// ChatHealthStatus é o estado exposto em GET /v1/chat/status
type ChatHealthStatus struct {
	Enabled      bool                  `json:"enabled"`
	CronSchedule string                `json:"cron_schedule"`
	Checking     bool                  `json:"checking"`
	LastCheckAt  *time.Time            `json:"last_check_at,omitempty"`
	Health       *domain.WebhookHealth `json:"health,omitempty"`
}

type ChatHealthMonitor struct {
	scheduler *gocron.Scheduler
	chatter   chatting.Chatter
	config    ChatHealthConfig

	mu          sync.Mutex
	checking    bool
	lastCheckAt time.Time
	lastHealth  *domain.WebhookHealth
}

func NewChatHealthMonitor(chatter chatting.Chatter, cfg *config.Config) *ChatHealthMonitor {
	monitorConfig := ChatHealthConfig{
		CronSchedule: cfg.ChatHealth.CronSchedule,
		Enabled:      cfg.ChatHealth.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
		"enabled":       monitorConfig.Enabled,
	}).Info("Configuração do monitor do webhook do chat carregada")

	return &ChatHealthMonitor{
		scheduler: gocron.NewScheduler(time.Local),
		chatter:   chatter,
		config:    monitorConfig,
	}
}

// Start agenda a verificação de saúde (quando habilitada) e a limpeza dos
// limitadores de sessões ociosas, que roda sempre.
func (m *ChatHealthMonitor) Start(ctx context.Context) error {
	if m.config.Enabled {
		logrus.WithField("cron", m.config.CronSchedule).Info("Iniciando monitor do webhook do chat")

		_, err := m.scheduler.Cron(m.config.CronSchedule).Do(func() {
			m.check(ctx)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar verificação do webhook do chat: %w", err)
		}
	} else {
		logrus.Info("Monitor do webhook do chat desabilitado por configuração")
	}

	_, err := m.scheduler.Every(pruneEveryMins).Minutes().Do(func() {
		if removed := m.chatter.PruneIdleSessions(limiterIdleTime); removed > 0 {
			logrus.WithField("sessions", removed).Debug("Limitadores de sessões ociosas removidos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões do chat: %w", err)
	}

	m.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor do webhook do chat")
		m.scheduler.Stop()
	}()

	return nil
}

// TriggerManualCheck executa a verificação imediatamente e devolve o resultado.
// Se outra verificação estiver em andamento devolve o último estado conhecido.
func (m *ChatHealthMonitor) TriggerManualCheck(ctx context.Context) domain.WebhookHealth {
	logrus.Info("Verificação manual do webhook do chat solicitada")

	if health, ran := m.check(ctx); ran {
		return health
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastHealth != nil {
		return *m.lastHealth
	}
	return domain.WebhookHealth{Error: "Verificação em andamento", CheckedAt: time.Now().UTC()}
}

func (m *ChatHealthMonitor) GetStatus() ChatHealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := ChatHealthStatus{
		Enabled:      m.config.Enabled,
		CronSchedule: m.config.CronSchedule,
		Checking:     m.checking,
	}
	if !m.lastCheckAt.IsZero() {
		lastCheckAt := m.lastCheckAt
		status.LastCheckAt = &lastCheckAt
	}
	if m.lastHealth != nil {
		health := *m.lastHealth
		status.Health = &health
	}

	return status
}

func (m *ChatHealthMonitor) check(ctx context.Context) (domain.WebhookHealth, bool) {
	m.mu.Lock()
	if m.checking {
		m.mu.Unlock()
		logrus.Info("Verificação do webhook do chat já em andamento, ignorando")
		return domain.WebhookHealth{}, false
	}
	m.checking = true
	m.mu.Unlock()

	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	health := m.chatter.Health(checkCtx)
	if health.CheckedAt.IsZero() {
		health.CheckedAt = time.Now().UTC()
	}

	m.mu.Lock()
	m.checking = false
	m.lastCheckAt = health.CheckedAt
	m.lastHealth = &health
	m.mu.Unlock()

	entry := logrus.WithField("online", health.IsOnline)
	if health.IsOnline {
		entry.Debug("Webhook do chat online")
	} else {
		entry.WithField("error", health.Error).Warn("Webhook do chat offline")
	}

	return health, true
}
