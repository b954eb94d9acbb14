package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/crm-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DataSource é a entrada do motor de agregação
type DataSource interface {
	FetchAllProducts(ctx context.Context) ([]*domain.Product, error)
	FetchAllCategories(ctx context.Context) ([]*domain.Category, error)
	FetchAllCustomers(ctx context.Context) ([]*domain.Customer, error)
	FetchAllPurchaseActivities(ctx context.Context) ([]*domain.Activity, error)
	// vínculos atuais cliente-produto, usados na exportação de clientes
	FetchAllCustomerProducts(ctx context.Context) ([]*domain.CustomerProduct, error)
}

type Reporter interface {
	CountProducts(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	TopProductsBySales(ctx context.Context, limit int) ([]domain.ProductSales, error)
	TopCategoriesBySales(ctx context.Context, limit int) ([]domain.CategorySales, error)
	RevenuePerCustomer(ctx context.Context) (decimal.Decimal, error)
	AverageProductsPerCustomer(ctx context.Context) (decimal.Decimal, error)
	RevenueByProduct(ctx context.Context) ([]domain.ProductRevenue, error)
	Dashboard(ctx context.Context, limit int) (*domain.DashboardSummary, error)
}

type collection uint8

const (
	products collection = 1 << iota
	categories
	customers
	activities
)

type Service struct {
	source DataSource
	now    func() time.Time
}

func NewService(source DataSource) Reporter {
	return &Service{
		source: source,
		now:    time.Now,
	}
}

func (s *Service) CountProducts(ctx context.Context) (int, error) {
	snapshot, err := s.load(ctx, products)
	if err != nil {
		return 0, err
	}
	return snapshot.CountProducts(), nil
}

func (s *Service) CountCustomers(ctx context.Context) (int, error) {
	snapshot, err := s.load(ctx, customers)
	if err != nil {
		return 0, err
	}
	return snapshot.CountCustomers(), nil
}

func (s *Service) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	snapshot, err := s.load(ctx, activities)
	if err != nil {
		return decimal.Zero, err
	}
	return snapshot.TotalRevenue(), nil
}

func (s *Service) TopProductsBySales(ctx context.Context, limit int) ([]domain.ProductSales, error) {
	if limit <= 0 {
		return []domain.ProductSales{}, nil
	}

	snapshot, err := s.load(ctx, activities)
	if err != nil {
		return nil, err
	}
	return snapshot.TopProductsBySales(limit), nil
}

func (s *Service) TopCategoriesBySales(ctx context.Context, limit int) ([]domain.CategorySales, error) {
	if limit <= 0 {
		return []domain.CategorySales{}, nil
	}

	snapshot, err := s.load(ctx, products|categories|activities)
	if err != nil {
		return nil, err
	}
	return snapshot.TopCategoriesBySales(limit), nil
}

func (s *Service) RevenuePerCustomer(ctx context.Context) (decimal.Decimal, error) {
	snapshot, err := s.load(ctx, customers|activities)
	if err != nil {
		return decimal.Zero, err
	}
	return snapshot.RevenuePerCustomer(), nil
}

func (s *Service) AverageProductsPerCustomer(ctx context.Context) (decimal.Decimal, error) {
	snapshot, err := s.load(ctx, customers|activities)
	if err != nil {
		return decimal.Zero, err
	}
	return snapshot.AverageProductsPerCustomer(), nil
}

func (s *Service) RevenueByProduct(ctx context.Context) ([]domain.ProductRevenue, error) {
	snapshot, err := s.load(ctx, activities)
	if err != nil {
		return nil, err
	}
	return snapshot.RevenueByProduct(), nil
}

// Dashboard busca as quatro coleções em paralelo e monta o resumo completo
func (s *Service) Dashboard(ctx context.Context, limit int) (*domain.DashboardSummary, error) {
	snapshot, err := s.load(ctx, products|categories|customers|activities)
	if err != nil {
		return nil, err
	}

	summary := snapshot.Summary(limit)
	summary.GeneratedAt = s.now()

	return &summary, nil
}

// load busca apenas as coleções pedidas. Qualquer falha descarta o snapshot inteiro.
func (s *Service) load(ctx context.Context, wanted collection) (*Snapshot, error) {
	snapshot := &Snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	if wanted&products != 0 {
		g.Go(func() error {
			result, err := s.source.FetchAllProducts(ctx)
			if err != nil {
				return unavailable("products", err)
			}
			snapshot.Products = result
			return nil
		})
	}

	if wanted&categories != 0 {
		g.Go(func() error {
			result, err := s.source.FetchAllCategories(ctx)
			if err != nil {
				return unavailable("categories", err)
			}
			snapshot.Categories = result
			return nil
		})
	}

	if wanted&customers != 0 {
		g.Go(func() error {
			result, err := s.source.FetchAllCustomers(ctx)
			if err != nil {
				return unavailable("customers", err)
			}
			snapshot.Customers = result
			return nil
		})
	}

	if wanted&activities != 0 {
		g.Go(func() error {
			result, err := s.source.FetchAllPurchaseActivities(ctx)
			if err != nil {
				return unavailable("activities", err)
			}
			snapshot.Activities = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataSourceUnavailable, name, err)
}
