package repository

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/crm-api/internal/domain"
)

type memorySession struct {
	messages  []domain.ChatMessage
	expiresAt time.Time
}

// memoryChatHistory é usado quando não há Redis configurado. O conteúdo se perde ao reiniciar.
type memoryChatHistory struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	limit    int
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryChatHistory(limit int, ttl time.Duration) ChatHistoryRepository {
	return &memoryChatHistory{
		sessions: make(map[string]*memorySession),
		limit:    limit,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *memoryChatHistory) AppendMessages(_ context.Context, sessionID string, messages ...domain.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	session := m.live(sessionID, now)
	if session == nil {
		session = &memorySession{}
		m.sessions[sessionID] = session
	}

	session.messages = append(session.messages, messages...)
	if overflow := len(session.messages) - m.limit; overflow > 0 {
		session.messages = append([]domain.ChatMessage(nil), session.messages[overflow:]...)
	}
	session.expiresAt = now.Add(m.ttl)

	return nil
}

func (m *memoryChatHistory) ListMessages(_ context.Context, sessionID string) ([]domain.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := m.live(sessionID, m.now())
	if session == nil {
		return []domain.ChatMessage{}, nil
	}

	messages := make([]domain.ChatMessage, len(session.messages))
	copy(messages, session.messages)

	return messages, nil
}

// live descarta a sessão expirada. Chamar com o mutex travado.
func (m *memoryChatHistory) live(sessionID string, now time.Time) *memorySession {
	session, exists := m.sessions[sessionID]
	if !exists {
		return nil
	}

	if !now.Before(session.expiresAt) {
		delete(m.sessions, sessionID)
		return nil
	}

	return session
}
