package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/api/handler/router"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/middleware"
)

var (
	adminClaims = &domain.Claims{
		UserID:           1,
		UserRoleID:       domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}
	userClaims = &domain.Claims{
		UserID:           7,
		UserRoleID:       domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
	}
)

// serve monta as rotas e executa a requisição como o usuário informado
func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)

	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
}
