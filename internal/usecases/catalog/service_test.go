package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	products         *mocks.MockProductRepository
	categories       *mocks.MockCategoryRepository
	customers        *mocks.MockCustomerRepository
	customerProducts *mocks.MockCustomerProductRepository
	activities       *mocks.MockActivityRepository
}

var fixedNow = time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)

func newTestCatalog(ctrl *gomock.Controller) (*Service, catalogMocks) {
	m := catalogMocks{
		products:         mocks.NewMockProductRepository(ctrl),
		categories:       mocks.NewMockCategoryRepository(ctrl),
		customers:        mocks.NewMockCustomerRepository(ctrl),
		customerProducts: mocks.NewMockCustomerProductRepository(ctrl),
		activities:       mocks.NewMockActivityRepository(ctrl),
	}

	sequence := 0
	service := &Service{
		products:         m.products,
		categories:       m.categories,
		customers:        m.customers,
		customerProducts: m.customerProducts,
		activities:       m.activities,
		newID: func() string {
			sequence++
			return fmt.Sprintf("ID%d", sequence)
		},
		now: func() time.Time { return fixedNow },
	}

	return service, m
}

func assertCatalogError(t *testing.T, err error, base error, code string) *CatalogError {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, base)

	var catalogErr *CatalogError
	require.True(t, errors.As(err, &catalogErr))
	assert.Equal(t, code, catalogErr.Code)

	return catalogErr
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	categoryID := "CAT1"

	tests := []struct {
		name     string
		input    domain.ProductInput
		setup    func(m catalogMocks)
		validate func(t *testing.T, product *domain.Product, err error)
	}{
		{
			name:  "sucesso com categoria",
			input: domain.ProductInput{Name: "  Notebook ", Price: decimalPtr("3500"), CategoryID: &categoryID},
			setup: func(m catalogMocks) {
				m.products.EXPECT().FindProductByName(ctx, "Notebook").Return(nil, nil)
				m.categories.EXPECT().GetCategoryByID(ctx, "CAT1").Return(&domain.Category{ID: "CAT1", Name: "Eletrônicos"}, nil)
				m.products.EXPECT().CreateProduct(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Product) (*domain.Product, error) {
						p.CreatedAt = fixedNow
						return p, nil
					})
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ID1", product.ID)
				assert.Equal(t, "Notebook", product.Name)
				assert.True(t, decimal.NewFromInt(3500).Equal(product.Price))
				assert.Equal(t, "Eletrônicos", *product.CategoryName)
			},
		},
		{
			name:  "validação falha antes de consultar o banco",
			input: domain.ProductInput{Name: "A", Price: decimalPtr("10.999")},
			setup: func(m catalogMocks) {},
			validate: func(t *testing.T, product *domain.Product, err error) {
				catalogErr := assertCatalogError(t, err, ErrValidation, apiErrors.ErrValidationFailed)
				assert.Len(t, catalogErr.Fields, 2)
				assert.Nil(t, product)
			},
		},
		{
			name:  "nome duplicado sem diferenciar maiúsculas",
			input: domain.ProductInput{Name: "NOTEBOOK", Price: decimalPtr("10")},
			setup: func(m catalogMocks) {
				m.products.EXPECT().FindProductByName(ctx, "NOTEBOOK").Return(&domain.Product{ID: "P1", Name: "Notebook"}, nil)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				catalogErr := assertCatalogError(t, err, ErrDuplicate, apiErrors.ErrDuplicateResource)
				assert.Equal(t, "name", catalogErr.Fields[0].Field)
			},
		},
		{
			name:  "categoria inexistente",
			input: domain.ProductInput{Name: "Notebook", Price: decimalPtr("10"), CategoryID: &categoryID},
			setup: func(m catalogMocks) {
				m.products.EXPECT().FindProductByName(ctx, "Notebook").Return(nil, nil)
				m.categories.EXPECT().GetCategoryByID(ctx, "CAT1").Return(nil, nil)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				catalogErr := assertCatalogError(t, err, ErrValidation, apiErrors.ErrValidationFailed)
				assert.Equal(t, "category_id", catalogErr.Fields[0].Field)
			},
		},
		{
			name:  "índice único rejeita em corrida",
			input: domain.ProductInput{Name: "Notebook", Price: decimalPtr("10")},
			setup: func(m catalogMocks) {
				m.products.EXPECT().FindProductByName(ctx, "Notebook").Return(nil, nil)
				m.products.EXPECT().CreateProduct(ctx, gomock.Any()).Return(nil, repository.ErrUniqueViolation)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assertCatalogError(t, err, ErrDuplicate, apiErrors.ErrDuplicateResource)
			},
		},
		{
			name:  "erro de banco",
			input: domain.ProductInput{Name: "Notebook", Price: decimalPtr("10")},
			setup: func(m catalogMocks) {
				m.products.EXPECT().FindProductByName(ctx, "Notebook").Return(nil, errors.New("conn reset"))
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assertCatalogError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestCatalog(ctrl)
			tt.setup(m)

			product, err := service.CreateProduct(ctx, &tt.input)
			tt.validate(t, product, err)
		})
	}
}

func TestService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("manter o próprio nome não é duplicidade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)
		current := &domain.Product{ID: "P1", Name: "Notebook", Price: decimal.NewFromInt(10)}

		m.products.EXPECT().GetProductByID(ctx, "P1").Return(current, nil)
		m.products.EXPECT().FindProductByName(ctx, "notebook").Return(current, nil)
		m.products.EXPECT().UpdateProduct(ctx, current).Return(nil)

		updated, err := service.UpdateProduct(ctx, "P1", &domain.ProductInput{Name: "notebook", Price: decimalPtr("12.50")})

		require.NoError(t, err)
		assert.Equal(t, "notebook", updated.Name)
		assert.True(t, decimal.RequireFromString("12.5").Equal(updated.Price))
		assert.Nil(t, updated.CategoryID)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)
		m.products.EXPECT().GetProductByID(ctx, "P9").Return(nil, nil)

		_, err := service.UpdateProduct(ctx, "P9", &domain.ProductInput{Name: "Notebook", Price: decimalPtr("1")})

		assertCatalogError(t, err, ErrNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_DeleteEntities(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestCatalog(ctrl)

	m.products.EXPECT().DeleteProduct(ctx, "P1").Return(nil)
	m.products.EXPECT().DeleteProduct(ctx, "P9").Return(sql.ErrNoRows)
	m.categories.EXPECT().DeleteCategory(ctx, "CAT9").Return(sql.ErrNoRows)
	m.customers.EXPECT().DeleteCustomer(ctx, "C1").Return(errors.New("timeout"))

	assert.NoError(t, service.DeleteProduct(ctx, "P1"))
	assertCatalogError(t, service.DeleteProduct(ctx, "P9"), ErrNotFound, apiErrors.ErrResourceNotFound)
	assertCatalogError(t, service.DeleteCategory(ctx, "CAT9"), ErrNotFound, apiErrors.ErrResourceNotFound)
	assertCatalogError(t, service.DeleteCustomer(ctx, "C1"), ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
}

func TestService_Categories(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestCatalog(ctrl)
	color := "#ff0000"

	m.categories.EXPECT().CreateCategory(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.Category) (*domain.Category, error) {
			return c, nil
		})

	created, err := service.CreateCategory(ctx, &domain.CategoryInput{Name: " Livros ", Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "ID1", created.ID)
	assert.Equal(t, "Livros", created.Name)
	assert.Equal(t, &color, created.Color)

	_, err = service.CreateCategory(ctx, &domain.CategoryInput{})
	assertCatalogError(t, err, ErrValidation, apiErrors.ErrValidationFailed)

	m.categories.EXPECT().GetCategoryByID(ctx, "CAT1").Return(&domain.Category{ID: "CAT1", Name: "Livros"}, nil)
	m.categories.EXPECT().UpdateCategory(ctx, gomock.Any()).Return(nil)

	updated, err := service.UpdateCategory(ctx, "CAT1", &domain.CategoryInput{Name: "Revistas"})
	require.NoError(t, err)
	assert.Equal(t, "Revistas", updated.Name)
	assert.Nil(t, updated.Color)
}

func TestService_CreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("email é normalizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)

		m.customers.EXPECT().FindCustomerByEmail(ctx, "ana@exemplo.com").Return(nil, nil)
		m.customers.EXPECT().CreateCustomer(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
				return c, nil
			})

		customer, err := service.CreateCustomer(ctx, &domain.CustomerInput{Name: " Ana ", Email: " Ana@Exemplo.COM "})

		require.NoError(t, err)
		assert.Equal(t, "Ana", customer.Name)
		assert.Equal(t, "ana@exemplo.com", customer.Email)
	})

	t.Run("email duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)
		m.customers.EXPECT().FindCustomerByEmail(ctx, "ana@exemplo.com").Return(&domain.Customer{ID: "C1"}, nil)

		_, err := service.CreateCustomer(ctx, &domain.CustomerInput{Name: "Ana", Email: "ana@exemplo.com"})

		catalogErr := assertCatalogError(t, err, ErrDuplicate, apiErrors.ErrDuplicateResource)
		assert.Equal(t, "email", catalogErr.Fields[0].Field)
	})

	t.Run("o próprio cliente pode manter o email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)
		current := &domain.Customer{ID: "C1", Name: "Ana", Email: "ana@exemplo.com"}

		m.customers.EXPECT().GetCustomerByID(ctx, "C1").Return(current, nil)
		m.customers.EXPECT().FindCustomerByEmail(ctx, "ana@exemplo.com").Return(current, nil)
		m.customers.EXPECT().UpdateCustomer(ctx, current).Return(nil)

		updated, err := service.UpdateCustomer(ctx, "C1", &domain.CustomerInput{Name: "Ana Souza", Email: "ana@exemplo.com"})

		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", updated.Name)
	})
}

func TestService_AddProductToCustomer(t *testing.T) {
	ctx := context.Background()
	categoryID := "CAT1"
	customer := &domain.Customer{ID: "C1", Name: "Ana"}
	product := &domain.Product{ID: "P1", Name: "Notebook", Price: decimal.NewFromInt(3500), CategoryID: &categoryID}

	t.Run("novo vínculo registra compra com snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)

		m.customers.EXPECT().GetCustomerByID(ctx, "C1").Return(customer, nil)
		m.products.EXPECT().GetProductByID(ctx, "P1").Return(product, nil)
		m.customerProducts.EXPECT().LinkProduct(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, link *domain.CustomerProduct, activity *domain.Activity) (bool, error) {
				assert.Equal(t, "C1", link.CustomerID)
				assert.Equal(t, "P1", link.Product.ID)
				assert.Equal(t, domain.ActivityPurchase, activity.Type)
				return true, nil
			})

		activity, err := service.AddProductToCustomer(ctx, "C1", "P1")

		require.NoError(t, err)
		require.NotNil(t, activity)
		assert.Equal(t, "Ana", activity.CustomerName)
		assert.Equal(t, "Notebook", activity.Product.Name)
		assert.True(t, activity.Product.Price.Valid)
		assert.True(t, decimal.NewFromInt(3500).Equal(activity.Product.Price.Decimal))
		assert.Equal(t, "CAT1", *activity.Product.CategoryID)
		assert.Equal(t, fixedNow, activity.Date)
	})

	t.Run("vínculo existente é ignorado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)

		m.customers.EXPECT().GetCustomerByID(ctx, "C1").Return(customer, nil)
		m.products.EXPECT().GetProductByID(ctx, "P1").Return(product, nil)
		m.customerProducts.EXPECT().LinkProduct(ctx, gomock.Any(), gomock.Any()).Return(false, nil)

		activity, err := service.AddProductToCustomer(ctx, "C1", "P1")

		require.NoError(t, err)
		assert.Nil(t, activity)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)
		m.customers.EXPECT().GetCustomerByID(ctx, "C9").Return(nil, nil)

		_, err := service.AddProductToCustomer(ctx, "C9", "P1")

		assertCatalogError(t, err, ErrNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_RemoveProductFromCustomer(t *testing.T) {
	ctx := context.Background()
	customer := &domain.Customer{ID: "C1", Name: "Ana"}
	product := &domain.Product{ID: "P1", Name: "Notebook", Price: decimal.NewFromInt(10)}

	t.Run("registra estorno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)

		m.customers.EXPECT().GetCustomerByID(ctx, "C1").Return(customer, nil)
		m.products.EXPECT().GetProductByID(ctx, "P1").Return(product, nil)
		m.customerProducts.EXPECT().UnlinkProduct(ctx, "C1", "P1", gomock.Any()).Return(true, nil)

		activity, err := service.RemoveProductFromCustomer(ctx, "C1", "P1")

		require.NoError(t, err)
		assert.Equal(t, domain.ActivityRefund, activity.Type)
		assert.False(t, activity.IsPurchase())
	})

	t.Run("produto não vinculado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)

		m.customers.EXPECT().GetCustomerByID(ctx, "C1").Return(customer, nil)
		m.products.EXPECT().GetProductByID(ctx, "P1").Return(product, nil)
		m.customerProducts.EXPECT().UnlinkProduct(ctx, "C1", "P1", gomock.Any()).Return(false, nil)

		_, err := service.RemoveProductFromCustomer(ctx, "C1", "P1")

		assertCatalogError(t, err, ErrNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_ListCustomerProducts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestCatalog(ctrl)

	m.customers.EXPECT().GetCustomerByID(ctx, "C1").Return(&domain.Customer{ID: "C1"}, nil)
	m.customerProducts.EXPECT().ListCustomerProducts(ctx, "C1").Return([]*domain.CustomerProduct{{ID: "L1"}}, nil)

	links, err := service.ListCustomerProducts(ctx, "C1")

	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestService_Activities(t *testing.T) {
	ctx := context.Background()

	t.Run("filtro com tipo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestCatalog(ctrl)

		_, err := service.ListActivities(ctx, domain.ActivityFilters{Type: "venda"})

		assertCatalogError(t, err, ErrValidation, apiErrors.ErrValidationFailed)
	})

	t.Run("filtros repassados ao repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)
		filters := domain.ActivityFilters{CustomerID: "C1", Type: domain.ActivityPurchase}

		m.activities.EXPECT().ListActivities(ctx, filters).Return([]*domain.Activity{{ID: "A1"}}, nil)

		activities, err := service.ListActivities(ctx, filters)

		require.NoError(t, err)
		assert.Len(t, activities, 1)
	})

	t.Run("atividade manual sem produto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestCatalog(ctrl)
		notes := "ligação de acompanhamento"
		date := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

		m.customers.EXPECT().GetCustomerByID(ctx, "C1").Return(&domain.Customer{ID: "C1", Name: "Ana"}, nil)
		m.activities.EXPECT().CreateActivity(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
				return a, nil
			})

		activity, err := service.CreateActivity(ctx, &domain.ActivityInput{
			CustomerID: "C1",
			Type:       domain.ActivityOther,
			Date:       &date,
			Notes:      &notes,
		})

		require.NoError(t, err)
		assert.Equal(t, date, activity.Date)
		assert.Empty(t, activity.Product.ID)
		assert.False(t, activity.Product.Price.Valid)
		assert.Equal(t, &notes, activity.Notes)
	})

	t.Run("compra sem produto é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestCatalog(ctrl)

		_, err := service.CreateActivity(ctx, &domain.ActivityInput{
			CustomerID: "C1",
			Type:       domain.ActivityPurchase,
			ProductID:  "  ",
		})

		catalogErr := assertCatalogError(t, err, ErrValidation, apiErrors.ErrValidationFailed)
		require.Len(t, catalogErr.Fields, 1)
		assert.Equal(t, "product_id", catalogErr.Fields[0].Field)
	})

	t.Run("tipo e cliente obrigatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestCatalog(ctrl)

		_, err := service.CreateActivity(ctx, &domain.ActivityInput{Type: "bonus"})

		catalogErr := assertCatalogError(t, err, ErrValidation, apiErrors.ErrValidationFailed)
		assert.Len(t, catalogErr.Fields, 2)
	})
}
