package n8ndomain

type ChatRequest struct {
	SessionID string `json:"sessionId"`
	ChatInput string `json:"chatInput"`
}

type ChatOutput struct {
	ChatOutput string `json:"chatOutput"`
}

// ChatResponse aceita os dois formatos devolvidos pelos workflows do n8n
type ChatResponse struct {
	Output  *ChatOutput `json:"output,omitempty"`
	Message string      `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
