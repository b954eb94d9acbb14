package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/crm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/catalog/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestSeeder_RunSkipsPopulatedDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCatalog(ctrl)
	service.EXPECT().ListProducts(gomock.Any()).Return([]*domain.Product{{ID: "P1"}}, nil)

	require.NoError(t, NewSeeder(service, nil).Run(context.Background()))
}

func TestSeeder_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCatalog(ctrl)
	service.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)

	service.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Times(len(demoCategories)).DoAndReturn(
		func(_ context.Context, input *domain.CategoryInput) (*domain.Category, error) {
			return &domain.Category{ID: "cat-" + input.Name, Name: input.Name}, nil
		})

	service.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Times(len(demoProducts)).DoAndReturn(
		func(_ context.Context, input *domain.ProductInput) (*domain.Product, error) {
			require.NotNil(t, input.CategoryID)
			assert.Contains(t, *input.CategoryID, "cat-")
			return &domain.Product{ID: "prod-" + input.Name, Name: input.Name, Price: *input.Price}, nil
		})

	service.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Times(len(demoCustomers)).DoAndReturn(
		func(_ context.Context, input *domain.CustomerInput) (*domain.Customer, error) {
			return &domain.Customer{ID: "cli-" + input.Email, Name: input.Name, Email: input.Email}, nil
		})

	service.EXPECT().AddProductToCustomer(gomock.Any(), "cli-ana.souza@exemplo.com", "prod-Notebook").
		Return(&domain.Activity{Type: domain.ActivityPurchase}, nil)
	service.EXPECT().AddProductToCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(len(demoSales) - 1).
		Return(&domain.Activity{Type: domain.ActivityPurchase}, nil)

	require.NoError(t, NewSeeder(service, nil).Run(context.Background()))
}

func TestSeeder_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("cria administrador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := repomocks.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByEmail(ctx, "admin@exemplo.com").Return(nil, nil)
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, domain.RoleAdmin, user.RoleID)
				assert.True(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("segredo123")))
				user.ID = 1
				return user, nil
			})

		require.NoError(t, NewSeeder(nil, users).EnsureAdmin(ctx, "Administrador", "admin@exemplo.com", "segredo123"))
	})

	t.Run("já existe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := repomocks.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByEmail(ctx, "admin@exemplo.com").Return(&domain.User{ID: 1}, nil)

		require.NoError(t, NewSeeder(nil, users).EnsureAdmin(ctx, "Administrador", "admin@exemplo.com", "segredo123"))
	})
}
