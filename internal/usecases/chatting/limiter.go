package chatting

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type sessionLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SessionLimiter aplica um token bucket independente para cada sessão de chat
type SessionLimiter struct {
	mu       sync.Mutex
	sessions map[string]*sessionLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewSessionLimiter(perSecond float64, burst int) *SessionLimiter {
	return &SessionLimiter{
		sessions: make(map[string]*sessionLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *SessionLimiter) Allow(sessionID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	s, exists := l.sessions[sessionID]
	if !exists {
		s = &sessionLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.sessions[sessionID] = s
	}
	s.lastSeen = now

	return s.limiter.AllowN(now, 1)
}

// PruneIdle remove as sessões sem mensagens há mais de maxIdle e devolve quantas saíram
func (l *SessionLimiter) PruneIdle(maxIdle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	now := l.now()
	for sessionID, s := range l.sessions {
		if now.Sub(s.lastSeen) > maxIdle {
			delete(l.sessions, sessionID)
			removed++
		}
	}

	return removed
}
