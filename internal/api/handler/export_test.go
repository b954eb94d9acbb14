package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-api/internal/usecases/exporting"
	"github.com/vfg2006/crm-api/internal/usecases/exporting/mocks"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestExportRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockExporter(ctrl)
	routes := Export(service)

	t.Run("download do relatório", func(t *testing.T) {
		data := []byte("\ufeffTipo,Descrição\r\n")
		service.EXPECT().ExportReport(gomock.Any()).Return(&exporting.File{
			Name: "relatorio_completo_2025-04-02.csv",
			Data: data,
		}, nil)

		rec := serve(t, routes, userClaims, http.MethodGet, "/v1/export/report", "")

		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, exporting.ContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="relatorio_completo_2025-04-02.csv"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, data, rec.Body.Bytes())
	})

	t.Run("nada a exportar", func(t *testing.T) {
		service.EXPECT().ExportProducts(gomock.Any()).Return(nil, exporting.ErrNothingToExport)

		rec := serve(t, routes, userClaims, http.MethodGet, "/v1/export/products", "")

		requireStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, apiErrors.ErrNothingToExport, decodeAPIError(t, rec).Code)
	})

	t.Run("fonte indisponível", func(t *testing.T) {
		service.EXPECT().ExportCustomers(gomock.Any()).
			Return(nil, fmt.Errorf("%w: customers: %w", reporting.ErrDataSourceUnavailable, assert.AnError))

		rec := serve(t, routes, userClaims, http.MethodGet, "/v1/export/customers", "")

		requireStatus(t, rec, http.StatusServiceUnavailable)
		assert.Equal(t, apiErrors.ErrDataSourceUnavailable, decodeAPIError(t, rec).Code)
	})
}
