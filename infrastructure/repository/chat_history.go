package repository

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const chatHistoryKeyPrefix = "chat:history:"

// ChatHistoryRepository guarda as últimas mensagens de cada sessão, da mais antiga para a mais nova
type ChatHistoryRepository interface {
	AppendMessages(ctx context.Context, sessionID string, messages ...domain.ChatMessage) error
	ListMessages(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
}

type redisChatHistory struct {
	client *redis.Client
	limit  int
	ttl    time.Duration
}

func NewRedisChatHistory(client *redis.Client, limit int, ttl time.Duration) ChatHistoryRepository {
	return &redisChatHistory{
		client: client,
		limit:  limit,
		ttl:    ttl,
	}
}

func chatHistoryKey(sessionID string) string {
	return chatHistoryKeyPrefix + sessionID
}

// AppendMessages grava, corta a lista no limite e renova o TTL numa única transação
func (r *redisChatHistory) AppendMessages(ctx context.Context, sessionID string, messages ...domain.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]any, 0, len(messages))
	for _, message := range messages {
		encoded, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("failed to encode chat message: %w", err)
		}
		values = append(values, encoded)
	}

	key := chatHistoryKey(sessionID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, int64(-r.limit), -1)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append chat history: %w", err)
	}

	return nil
}

func (r *redisChatHistory) ListMessages(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	raw, err := r.client.LRange(ctx, chatHistoryKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	messages := make([]domain.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var message domain.ChatMessage
		if err := json.Unmarshal([]byte(item), &message); err != nil {
			logrus.WithError(err).Warnf("Mensagem inválida no histórico da sessão %s", sessionID)
			continue
		}
		messages = append(messages, message)
	}

	return messages, nil
}
