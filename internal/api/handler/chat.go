package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/scheduler"
	"github.com/vfg2006/crm-api/internal/usecases/chatting"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/middleware"
)

type ChatRequest struct {
	Message string `json:"message"`
}

// SendChatMessage encaminha a mensagem ao assistente na sessão do usuário logado
func SendChatMessage(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ChatRequest
		if !decodeBody(w, r, &req) {
			return
		}

		reply, err := service.SendMessage(r.Context(), claims.SessionID(), req.Message)
		if err != nil {
			writeChatError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reply)
	}
}

func GetChatHistory(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		messages, err := service.History(r.Context(), claims.SessionID())
		if err != nil {
			writeChatError(w, err)
			return
		}
		if messages == nil {
			messages = []domain.ChatMessage{}
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

func GetChatStatus(monitor *scheduler.ChatHealthMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, monitor.GetStatus())
	}
}

func CheckChatStatus(monitor *scheduler.ChatHealthMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, monitor.TriggerManualCheck(r.Context()))
	}
}

func writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatting.ErrEmptyMessage):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A mensagem não pode ser vazia", nil)
	case errors.Is(err, chatting.ErrRateLimited):
		apiErrors.WriteError(w, apiErrors.ErrChatRateLimited, "Muitas mensagens, aguarde um instante", nil)
	case errors.Is(err, chatting.ErrWebhookNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrChatNotConfigured, "Assistente não configurado", nil)
	case errors.Is(err, chatting.ErrWebhookFailure):
		apiErrors.WriteError(w, apiErrors.ErrChatWebhookFailure, "Falha ao comunicar com o assistente", nil)
	case errors.Is(err, chatting.ErrHistoryUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Histórico do chat indisponível", nil)
	default:
		logrus.WithError(err).Error("Erro no chat")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar mensagem", nil)
	}
}
