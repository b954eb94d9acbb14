package n8n

import (
	"context"
	"errors"
	"strings"
	"time"

	n8ndomain "github.com/vfg2006/crm-api/infrastructure/integrator/n8n/domain"
	"github.com/vfg2006/crm-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/crm-api/internal/domain"
)

const noResponse = "No response received"

var ErrWebhookNotConfigured = n8nclient.ErrWebhookNotConfigured

type N8NIntegrator interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
	CheckHealth(ctx context.Context) domain.WebhookHealth
}

type N8NService struct {
	Client n8nclient.Client
	now    func() time.Time
}

func New(client n8nclient.Client) N8NIntegrator {
	return &N8NService{
		Client: client,
		now:    time.Now,
	}
}

// Chat devolve output.chatOutput, senão message, senão um texto padrão
func (s *N8NService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	resp, err := s.Client.SendMessage(ctx, n8ndomain.ChatRequest{
		SessionID: sessionID,
		ChatInput: message,
	})
	if err != nil {
		return "", err
	}

	if resp.Output != nil && strings.TrimSpace(resp.Output.ChatOutput) != "" {
		return resp.Output.ChatOutput, nil
	}

	if strings.TrimSpace(resp.Message) != "" {
		return resp.Message, nil
	}

	return noResponse, nil
}

// CheckHealth considera online apenas HTTP 200 com {"status":"ok"}
func (s *N8NService) CheckHealth(ctx context.Context) domain.WebhookHealth {
	health := domain.WebhookHealth{CheckedAt: s.now()}

	resp, err := s.Client.CheckHealth(ctx)
	switch {
	case errors.Is(err, n8nclient.ErrWebhookNotConfigured):
		health.Error = "Webhook de saúde não configurado"
	case err != nil:
		health.Error = err.Error()
	case resp.Status != "ok":
		health.Error = "Status inesperado: " + resp.Status
	default:
		health.IsOnline = true
	}

	return health
}
