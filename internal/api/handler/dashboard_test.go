package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(reporter *mocks.MockReporter)
		wantStatus int
		validate   func(t *testing.T, body []byte)
	}{
		{
			name:   "limite padrão",
			target: "/v1/dashboard",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().Dashboard(gomock.Any(), 5).Return(&domain.DashboardSummary{
					TotalProducts: 2,
					TotalRevenue:  decimal.NewFromInt(50),
					TopProducts:   []domain.ProductSales{{Product: domain.ProductSnapshot{ID: "P1"}, SalesCount: 3}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var summary domain.DashboardSummary
				require.NoError(t, json.Unmarshal(body, &summary))
				assert.Equal(t, 2, summary.TotalProducts)
				assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(50)))
				require.Len(t, summary.TopProducts, 1)
				assert.Equal(t, 3, summary.TopProducts[0].SalesCount)
			},
		},
		{
			name:   "limite informado",
			target: "/v1/dashboard?limit=10",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().Dashboard(gomock.Any(), 10).Return(&domain.DashboardSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "limite não numérico",
			target:     "/v1/dashboard?limit=cinco",
			setup:      func(*mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), apiErrors.ErrInvalidFormat)
			},
		},
		{
			name:   "fonte de dados indisponível",
			target: "/v1/dashboard",
			setup: func(reporter *mocks.MockReporter) {
				reporter.EXPECT().Dashboard(gomock.Any(), 5).
					Return(nil, fmt.Errorf("%w: products: %w", reporting.ErrDataSourceUnavailable, errors.New("timeout")))
			},
			wantStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), apiErrors.ErrDataSourceUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := mocks.NewMockReporter(ctrl)
			tt.setup(reporter)

			rec := serve(t, Dashboard(reporter, 5), userClaims, http.MethodGet, tt.target, "")

			requireStatus(t, rec, tt.wantStatus)
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}

func TestDashboardMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().CountProducts(gomock.Any()).Return(4, nil)
	reporter.EXPECT().CountCustomers(gomock.Any()).Return(0, nil)
	reporter.EXPECT().TotalRevenue(gomock.Any()).Return(decimal.RequireFromString("50.5"), nil)
	reporter.EXPECT().RevenuePerCustomer(gomock.Any()).Return(decimal.Zero, nil)
	reporter.EXPECT().AverageProductsPerCustomer(gomock.Any()).Return(decimal.RequireFromString("1.5"), nil)

	routes := Dashboard(reporter, 5)

	tests := []struct {
		target string
		want   string
	}{
		{"/v1/dashboard/products/count", `{"total_products":4}`},
		{"/v1/dashboard/customers/count", `{"total_customers":0}`},
		{"/v1/dashboard/revenue", `{"total_revenue":"50.5"}`},
		{"/v1/dashboard/revenue/per-customer", `{"revenue_per_customer":"0"}`},
		{"/v1/dashboard/products/per-customer", `{"average_products_per_customer":"1.5"}`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(t, routes, userClaims, http.MethodGet, tt.target, "")

			requireStatus(t, rec, http.StatusOK)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestDashboardRankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockReporter(ctrl)
	routes := Dashboard(reporter, 5)

	t.Run("top produtos com limite", func(t *testing.T) {
		reporter.EXPECT().TopProductsBySales(gomock.Any(), 2).Return([]domain.ProductSales{
			{Product: domain.ProductSnapshot{ID: "P1", Name: "Notebook"}, SalesCount: 3},
			{Product: domain.ProductSnapshot{ID: "P2", Name: "Mouse"}, SalesCount: 1},
		}, nil)

		rec := serve(t, routes, userClaims, http.MethodGet, "/v1/dashboard/top-products?limit=2", "")

		requireStatus(t, rec, http.StatusOK)
		var items []domain.ProductSales
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 2)
		assert.Equal(t, "P1", items[0].Product.ID)
	})

	t.Run("top categorias vazio vira lista", func(t *testing.T) {
		reporter.EXPECT().TopCategoriesBySales(gomock.Any(), 5).Return(nil, nil)

		rec := serve(t, routes, userClaims, http.MethodGet, "/v1/dashboard/top-categories", "")

		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("receita por produto", func(t *testing.T) {
		reporter.EXPECT().RevenueByProduct(gomock.Any()).Return(nil, nil)

		rec := serve(t, routes, userClaims, http.MethodGet, "/v1/dashboard/revenue-by-product", "")

		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestDashboard_RequiresAuthenticatedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := serve(t, Dashboard(mocks.NewMockReporter(ctrl), 5), nil, http.MethodGet, "/v1/dashboard", "")

	requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
}
