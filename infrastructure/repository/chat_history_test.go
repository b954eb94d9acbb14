package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

func chatMessages(sessionID string, from, to int) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, to-from)
	for i := from; i < to; i++ {
		messages = append(messages, domain.ChatMessage{
			ID:        fmt.Sprintf("M%d", i),
			SessionID: sessionID,
			Message:   fmt.Sprintf("mensagem %d", i),
			IsUser:    i%2 == 0,
		})
	}
	return messages
}

func TestMemoryChatHistory_KeepsNewestMessages(t *testing.T) {
	ctx := context.Background()
	history := NewMemoryChatHistory(3, time.Hour)

	require.NoError(t, history.AppendMessages(ctx, "S1", chatMessages("S1", 0, 2)...))
	require.NoError(t, history.AppendMessages(ctx, "S1", chatMessages("S1", 2, 5)...))
	require.NoError(t, history.AppendMessages(ctx, "S2", chatMessages("S2", 0, 1)...))

	messages, err := history.ListMessages(ctx, "S1")
	require.NoError(t, err)

	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}
	assert.Equal(t, []string{"M2", "M3", "M4"}, ids)

	other, err := history.ListMessages(ctx, "S2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestMemoryChatHistory_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)

	history := &memoryChatHistory{
		sessions: make(map[string]*memorySession),
		limit:    100,
		ttl:      24 * time.Hour,
		now:      func() time.Time { return now },
	}

	require.NoError(t, history.AppendMessages(ctx, "S1", chatMessages("S1", 0, 1)...))

	now = now.Add(23 * time.Hour)
	messages, err := history.ListMessages(ctx, "S1")
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	now = now.Add(time.Hour)
	messages, err = history.ListMessages(ctx, "S1")
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.NotContains(t, history.sessions, "S1")
}

func TestMemoryChatHistory_UnknownSession(t *testing.T) {
	messages, err := NewMemoryChatHistory(100, time.Hour).ListMessages(context.Background(), "nada")

	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

// Executado apenas com REDIS_TEST_URL definido, ex.: redis://localhost:6379/15
func TestRedisChatHistory(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL não definido")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opt)
	defer client.Close()

	ctx := context.Background()
	sessionID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	defer client.Del(ctx, chatHistoryKey(sessionID))

	history := NewRedisChatHistory(client, 2, time.Minute)

	require.NoError(t, history.AppendMessages(ctx, sessionID, chatMessages(sessionID, 0, 3)...))

	messages, err := history.ListMessages(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "M1", messages[0].ID)
	assert.Equal(t, "M2", messages[1].ID)

	ttl, err := client.TTL(ctx, chatHistoryKey(sessionID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
