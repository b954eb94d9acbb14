package repository

import (
	"context"

	"github.com/vfg2006/crm-api/internal/domain"
)

// ReportingSource expõe os repositórios no formato lido pelo motor de relatórios
type ReportingSource struct {
	products   ProductRepository
	categories CategoryRepository
	customers  CustomerRepository
	activities ActivityRepository
	links      CustomerProductRepository
}

func NewReportingSource(
	products ProductRepository,
	categories CategoryRepository,
	customers CustomerRepository,
	activities ActivityRepository,
	links CustomerProductRepository,
) *ReportingSource {
	return &ReportingSource{
		products:   products,
		categories: categories,
		customers:  customers,
		activities: activities,
		links:      links,
	}
}

func (s *ReportingSource) FetchAllProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *ReportingSource) FetchAllCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

func (s *ReportingSource) FetchAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.ListCustomers(ctx)
}

func (s *ReportingSource) FetchAllPurchaseActivities(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.ListPurchaseActivities(ctx)
}

func (s *ReportingSource) FetchAllCustomerProducts(ctx context.Context) ([]*domain.CustomerProduct, error) {
	return s.links.ListAllCustomerProducts(ctx)
}
