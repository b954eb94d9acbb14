package chatting

import (
	"errors"

	"github.com/vfg2006/crm-api/infrastructure/integrator/n8n"
)

var (
	ErrEmptyMessage         = errors.New("a mensagem não pode ser vazia")
	ErrRateLimited          = errors.New("muitas mensagens em pouco tempo")
	ErrWebhookNotConfigured = n8n.ErrWebhookNotConfigured
	ErrWebhookFailure       = errors.New("falha ao comunicar com o assistente")
	ErrHistoryUnavailable   = errors.New("histórico do chat indisponível")
)
