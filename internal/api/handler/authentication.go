package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.Register(r.Context(), &req)
		if err != nil {
			writeAuthError(w, err, "Erro ao cadastrar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			writeAuthError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func writeAuthError(w http.ResponseWriter, err error, fallback string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
