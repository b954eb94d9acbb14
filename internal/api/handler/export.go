package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/usecases/exporting"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

type exportFunc func(ctx context.Context) (*exporting.File, error)

// download envia o arquivo gerado como anexo CSV
func download(export exportFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := export(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, exporting.ErrNothingToExport):
				apiErrors.WriteError(w, apiErrors.ErrNothingToExport, "Não há dados para exportar", nil)
			case errors.Is(err, reporting.ErrDataSourceUnavailable):
				logrus.WithError(err).Error("Fonte de dados da exportação indisponível")
				apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Não foi possível carregar os dados", nil)
			default:
				logrus.WithError(err).Error("Erro ao gerar exportação")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar arquivo", nil)
			}
			return
		}

		w.Header().Set("Content-Type", exporting.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(file.Data); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar arquivo exportado")
		}
	}
}

func ExportProducts(service exporting.Exporter) http.HandlerFunc {
	return download(service.ExportProducts)
}

func ExportCustomers(service exporting.Exporter) http.HandlerFunc {
	return download(service.ExportCustomers)
}

func ExportReport(service exporting.Exporter) http.HandlerFunc {
	return download(service.ExportReport)
}
