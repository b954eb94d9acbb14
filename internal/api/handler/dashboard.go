package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

// GetDashboard devolve todas as métricas do painel em uma única leitura dos dados
func GetDashboard(service reporting.Reporter, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryLimit(r, defaultLimit)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		summary, err := service.Dashboard(r.Context(), limit)
		if err != nil {
			writeReportingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// metric adapta uma métrica escalar do Reporter para {"<key>": valor}
func metric[T any](key string, compute func(ctx context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := compute(r.Context())
		if err != nil {
			writeReportingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{key: value})
	}
}

func ranking[T any](defaultLimit int, compute func(ctx context.Context, limit int) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryLimit(r, defaultLimit)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		items, err := compute(r.Context(), limit)
		if err != nil {
			writeReportingError(w, err)
			return
		}
		if items == nil {
			items = []T{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func GetRevenueByProduct(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.RevenueByProduct(r.Context())
		if err != nil {
			writeReportingError(w, err)
			return
		}
		if items == nil {
			items = []domain.ProductRevenue{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}
