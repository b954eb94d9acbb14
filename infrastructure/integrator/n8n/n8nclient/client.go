package n8nclient

import (
	"context"
	"net/http"
	"time"

	n8ndomain "github.com/vfg2006/crm-api/infrastructure/integrator/n8n/domain"
	"github.com/vfg2006/crm-api/internal/config"
)

const healthTimeout = 5 * time.Second

type Client interface {
	SendMessage(ctx context.Context, request n8ndomain.ChatRequest) (*n8ndomain.ChatResponse, error)
	CheckHealth(ctx context.Context) (*n8ndomain.HealthResponse, error)
}

type N8NClient struct {
	httpClient *http.Client
	config     *config.Chat
}

func NewClient(cfg *config.Chat) Client {
	return &N8NClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
