package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logrus.WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// queryLimit lê ?limit=N. Ausente usa o padrão; valores não numéricos são rejeitados.
func queryLimit(r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return limit, true
}

func writeCatalogError(w http.ResponseWriter, err error, fallback string) {
	var catalogErr *catalog.CatalogError
	if errors.As(err, &catalogErr) {
		var details any
		if len(catalogErr.Fields) > 0 {
			details = map[string]any{"fields": catalogErr.Fields}
		}
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), details)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func writeReportingError(w http.ResponseWriter, err error) {
	if errors.Is(err, reporting.ErrDataSourceUnavailable) {
		logrus.WithError(err).Error("Fonte de dados do painel indisponível")
		apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Não foi possível carregar os dados do painel", nil)
		return
	}

	logrus.WithError(err).Error("Erro ao calcular métricas")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas", nil)
}
