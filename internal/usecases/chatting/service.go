// Package chatting encaminha as mensagens do usuário ao assistente no n8n e guarda o histórico
package chatting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/utils"
)

type Chatter interface {
	SendMessage(ctx context.Context, sessionID, message string) (*domain.ChatReply, error)
	History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	Health(ctx context.Context) domain.WebhookHealth
	PruneIdleSessions(maxIdle time.Duration) int
}

type Service struct {
	integrator n8n.N8NIntegrator
	history    repository.ChatHistoryRepository
	limiter    *SessionLimiter

	newID func() (string, error)
	now   func() time.Time
}

func NewService(integrator n8n.N8NIntegrator, history repository.ChatHistoryRepository, limiter *SessionLimiter) Chatter {
	return &Service{
		integrator: integrator,
		history:    history,
		limiter:    limiter,
		newID:      utils.GenerateID,
		now:        time.Now,
	}
}

// SendMessage envia a mensagem e grava pergunta e resposta no histórico.
// Em caso de falha nada é gravado.
func (s *Service) SendMessage(ctx context.Context, sessionID, message string) (*domain.ChatReply, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if !s.limiter.Allow(sessionID) {
		return nil, ErrRateLimited
	}

	userMessage, err := s.newMessage(sessionID, text, true)
	if err != nil {
		return nil, err
	}

	reply, err := s.integrator.Chat(ctx, sessionID, text)
	if err != nil {
		if errors.Is(err, ErrWebhookNotConfigured) {
			return nil, ErrWebhookNotConfigured
		}
		logrus.WithError(err).Errorf("Falha no webhook do chat para a sessão %s", sessionID)
		return nil, fmt.Errorf("%w: %w", ErrWebhookFailure, err)
	}

	botMessage, err := s.newMessage(sessionID, reply, false)
	if err != nil {
		return nil, err
	}

	if err := s.history.AppendMessages(ctx, sessionID, *userMessage, *botMessage); err != nil {
		logrus.WithError(err).Warnf("Falha ao gravar histórico da sessão %s", sessionID)
	}

	return &domain.ChatReply{
		Success: true,
		Message: reply,
		Reply:   botMessage,
	}, nil
}

func (s *Service) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	messages, err := s.history.ListMessages(ctx, sessionID)
	if err != nil {
		logrus.WithError(err).Errorf("Falha ao ler histórico da sessão %s", sessionID)
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}
	return messages, nil
}

func (s *Service) Health(ctx context.Context) domain.WebhookHealth {
	return s.integrator.CheckHealth(ctx)
}

func (s *Service) PruneIdleSessions(maxIdle time.Duration) int {
	return s.limiter.PruneIdle(maxIdle)
}

func (s *Service) newMessage(sessionID, text string, isUser bool) (*domain.ChatMessage, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate message id: %w", err)
	}

	return &domain.ChatMessage{
		ID:        id,
		SessionID: sessionID,
		Message:   text,
		Timestamp: s.now().UTC(),
		IsUser:    isUser,
	}, nil
}
