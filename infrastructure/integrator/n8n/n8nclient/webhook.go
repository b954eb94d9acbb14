package n8nclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	n8ndomain "github.com/vfg2006/crm-api/infrastructure/integrator/n8n/domain"
	"github.com/vfg2006/crm-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrWebhookNotConfigured = errors.New("webhook do n8n não configurado")

func (c *N8NClient) SendMessage(ctx context.Context, request n8ndomain.ChatRequest) (*n8ndomain.ChatResponse, error) {
	if c.config.WebhookURL == "" {
		return nil, ErrWebhookNotConfigured
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a mensagem: %w", err)
	}

	data, err := utils.MakeRequest(ctx, c.httpClient, http.MethodPost, c.config.WebhookURL, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar o webhook: %w", err)
	}

	logrus.Debugf("Resposta do webhook n8n: %s", utils.PrettyJson(data))

	var response n8ndomain.ChatResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

// CheckHealth consulta o endpoint de saúde com timeout de 5 segundos
func (c *N8NClient) CheckHealth(ctx context.Context) (*n8ndomain.HealthResponse, error) {
	if c.config.HealthURL == "" {
		return nil, ErrWebhookNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	data, err := utils.MakeRequest(ctx, c.httpClient, http.MethodGet, c.config.HealthURL, nil)
	if err != nil {
		return nil, err
	}

	var response n8ndomain.HealthResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
