// Package catalog mantém produtos, categorias, clientes e o livro de atividades
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

type Catalog interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input *domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input *domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input *domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, input *domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, input *domain.CustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, input *domain.CustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListCustomerProducts(ctx context.Context, customerID string) ([]*domain.CustomerProduct, error)
	AddProductToCustomer(ctx context.Context, customerID, productID string) (*domain.Activity, error)
	RemoveProductFromCustomer(ctx context.Context, customerID, productID string) (*domain.Activity, error)

	ListActivities(ctx context.Context, filters domain.ActivityFilters) ([]*domain.Activity, error)
	CreateActivity(ctx context.Context, input *domain.ActivityInput) (*domain.Activity, error)
}

type Service struct {
	products         repository.ProductRepository
	categories       repository.CategoryRepository
	customers        repository.CustomerRepository
	customerProducts repository.CustomerProductRepository
	activities       repository.ActivityRepository

	newID func() string
	now   func() time.Time
}

func NewService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	customers repository.CustomerRepository,
	customerProducts repository.CustomerProductRepository,
	activities repository.ActivityRepository,
) Catalog {
	return &Service{
		products:         products,
		categories:       categories,
		customers:        customers,
		customerProducts: customerProducts,
		activities:       activities,
		newID:            uuid.NewString,
		now:              time.Now,
	}
}

func notFound(details string) error {
	return NewCatalogError(ErrNotFound, apiErrors.ErrResourceNotFound, details)
}

func duplicate(field, message string) error {
	return &CatalogError{
		Err:     ErrDuplicate,
		Code:    apiErrors.ErrDuplicateResource,
		Details: message,
		Fields:  []ValidationError{{Field: field, Message: message}},
	}
}

func databaseError(err error, details string) error {
	logrus.WithError(err).Error(details)
	return NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, details)
}

func invalid(fields []ValidationError) error {
	return NewValidationError(apiErrors.ErrValidationFailed, fields)
}

// isMissing indica que o repositório não encontrou a linha a alterar
func isMissing(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
