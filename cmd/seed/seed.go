package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
	"golang.org/x/crypto/bcrypt"
)

type demoProduct struct {
	Name     string
	Price    string
	Category string
}

type demoSale struct {
	Customer string
	Product  string
}

var (
	demoCategories = []domain.CategoryInput{
		{Name: "Eletrônicos", Color: strPtr("#3b82f6")},
		{Name: "Escritório", Color: strPtr("#10b981")},
		{Name: "Livros", Color: strPtr("#f59e0b")},
	}

	demoProducts = []demoProduct{
		{Name: "Notebook", Price: "3500.00", Category: "Eletrônicos"},
		{Name: "Monitor 27", Price: "1299.90", Category: "Eletrônicos"},
		{Name: "Mouse sem fio", Price: "89.90", Category: "Eletrônicos"},
		{Name: "Cadeira ergonômica", Price: "899.00", Category: "Escritório"},
		{Name: "Caderno", Price: "24.50", Category: "Escritório"},
		{Name: "Go na prática", Price: "79.00", Category: "Livros"},
	}

	demoCustomers = []domain.CustomerInput{
		{Name: "Ana Souza", Email: "ana.souza@exemplo.com"},
		{Name: "Bruno Lima", Email: "bruno.lima@exemplo.com"},
		{Name: "Carla Dias", Email: "carla.dias@exemplo.com"},
	}

	demoSales = []demoSale{
		{Customer: "ana.souza@exemplo.com", Product: "Notebook"},
		{Customer: "ana.souza@exemplo.com", Product: "Mouse sem fio"},
		{Customer: "bruno.lima@exemplo.com", Product: "Mouse sem fio"},
		{Customer: "bruno.lima@exemplo.com", Product: "Caderno"},
		{Customer: "carla.dias@exemplo.com", Product: "Go na prática"},
		{Customer: "carla.dias@exemplo.com", Product: "Mouse sem fio"},
	}
)

type Seeder struct {
	catalog catalog.Catalog
	users   repository.UserRepository
}

func NewSeeder(catalogService catalog.Catalog, users repository.UserRepository) *Seeder {
	return &Seeder{catalog: catalogService, users: users}
}

// Run popula o banco com dados de demonstração. Não faz nada se já existirem produtos.
func (s *Seeder) Run(ctx context.Context) error {
	startTime := time.Now()

	existing, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar produtos existentes: %w", err)
	}
	if len(existing) > 0 {
		logrus.WithField("products", len(existing)).Info("Banco já possui produtos, seed ignorado")
		return nil
	}

	categoryIDs := make(map[string]string, len(demoCategories))
	for i := range demoCategories {
		category, err := s.catalog.CreateCategory(ctx, &demoCategories[i])
		if err != nil {
			return fmt.Errorf("erro ao criar categoria %s: %w", demoCategories[i].Name, err)
		}
		categoryIDs[category.Name] = category.ID
	}

	productIDs := make(map[string]string, len(demoProducts))
	for _, p := range demoProducts {
		price := decimal.RequireFromString(p.Price)
		categoryID := categoryIDs[p.Category]

		product, err := s.catalog.CreateProduct(ctx, &domain.ProductInput{
			Name:       p.Name,
			Price:      &price,
			CategoryID: &categoryID,
		})
		if err != nil {
			return fmt.Errorf("erro ao criar produto %s: %w", p.Name, err)
		}
		productIDs[product.Name] = product.ID
	}

	customerIDs := make(map[string]string, len(demoCustomers))
	for i := range demoCustomers {
		customer, err := s.catalog.CreateCustomer(ctx, &demoCustomers[i])
		if err != nil {
			return fmt.Errorf("erro ao criar cliente %s: %w", demoCustomers[i].Email, err)
		}
		customerIDs[customer.Email] = customer.ID
	}

	for _, sale := range demoSales {
		if _, err := s.catalog.AddProductToCustomer(ctx, customerIDs[sale.Customer], productIDs[sale.Product]); err != nil {
			return fmt.Errorf("erro ao registrar venda de %s para %s: %w", sale.Product, sale.Customer, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"categories": len(categoryIDs),
		"products":   len(productIDs),
		"customers":  len(customerIDs),
		"sales":      len(demoSales),
		"elapsed":    time.Since(startTime).String(),
	}).Info("Seed concluído")

	return nil
}

// EnsureAdmin cria o administrador inicial caso o email ainda não exista
func (s *Seeder) EnsureAdmin(ctx context.Context, name, email, password string) error {
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("erro ao buscar administrador: %w", err)
	}
	if existing != nil {
		logrus.WithField("email", email).Info("Administrador já existe")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	_, err = s.users.CreateUser(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}

	logrus.WithField("email", email).Info("Administrador criado")
	return nil
}

func strPtr(s string) *string {
	return &s
}
