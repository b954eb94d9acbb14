package domain

import "time"

type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsUser    bool      `json:"is_user"`
}

// ChatInput é o payload enviado ao webhook do n8n
type ChatInput struct {
	SessionID string `json:"sessionId"`
	ChatInput string `json:"chatInput"`
}

type ChatReply struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Reply   *ChatMessage `json:"reply,omitempty"`
}

type WebhookHealth struct {
	IsOnline  bool      `json:"is_online"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
