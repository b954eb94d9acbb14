package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/catalog/mocks"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAddProductToCustomer(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *mocks.MockCatalog)
		wantStatus int
		wantCode   string
	}{
		{
			name: "registra compra",
			body: `{"product_id":"P1"}`,
			setup: func(service *mocks.MockCatalog) {
				service.EXPECT().AddProductToCustomer(gomock.Any(), "C1", "P1").
					Return(&domain.Activity{ID: "A1", Type: domain.ActivityPurchase}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "produto já vinculado",
			body: `{"product_id":"P1"}`,
			setup: func(service *mocks.MockCatalog) {
				service.EXPECT().AddProductToCustomer(gomock.Any(), "C1", "P1").Return(nil, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem product_id",
			body:       `{}`,
			setup:      func(*mocks.MockCatalog) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCatalog(ctrl)
			tt.setup(service)

			rec := serve(t, Purchases(service), userClaims, http.MethodPost, "/v1/customers/C1/products", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestListActivities_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCatalog(ctrl)
	service.EXPECT().ListActivities(gomock.Any(), domain.ActivityFilters{CustomerID: "C1", Type: domain.ActivityPurchase}).Return([]*domain.Activity{{ID: "A1"}}, nil)

	rec := serve(t, Activities(service), userClaims, http.MethodGet, "/v1/activities?customer_id=C1&type=purchase", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"A1"`)
}
