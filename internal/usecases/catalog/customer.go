package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
)

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, databaseError(err, "Falha ao listar clientes")
	}
	return customers, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customers.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, databaseError(err, "Falha ao buscar cliente")
	}
	if customer == nil {
		return nil, notFound("Cliente não encontrado")
	}
	return customer, nil
}

func (s *Service) CreateCustomer(ctx context.Context, input *domain.CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{ID: s.newID()}
	if err := s.applyCustomerInput(ctx, customer, input); err != nil {
		return nil, err
	}

	created, err := s.customers.CreateCustomer(ctx, customer)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, duplicate("email", "Já existe um cliente com este email")
		}
		return nil, databaseError(err, "Falha ao criar cliente")
	}

	return created, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, input *domain.CustomerInput) (*domain.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyCustomerInput(ctx, customer, input); err != nil {
		return nil, err
	}

	if err := s.customers.UpdateCustomer(ctx, customer); err != nil {
		switch {
		case isMissing(err):
			return nil, notFound("Cliente não encontrado")
		case errors.Is(err, repository.ErrUniqueViolation):
			return nil, duplicate("email", "Já existe um cliente com este email")
		}
		return nil, databaseError(err, "Falha ao atualizar cliente")
	}

	return customer, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.customers.DeleteCustomer(ctx, id); err != nil {
		if isMissing(err) {
			return notFound("Cliente não encontrado")
		}
		return databaseError(err, "Falha ao remover cliente")
	}
	return nil
}

func (s *Service) applyCustomerInput(ctx context.Context, customer *domain.Customer, input *domain.CustomerInput) error {
	if fields := ValidateCustomer(input); len(fields) > 0 {
		return invalid(fields)
	}

	email := normalizeEmail(input.Email)

	existing, err := s.customers.FindCustomerByEmail(ctx, email)
	if err != nil {
		return databaseError(err, "Falha ao verificar email do cliente")
	}
	if existing != nil && existing.ID != customer.ID {
		return duplicate("email", "Já existe um cliente com este email")
	}

	customer.Name = strings.TrimSpace(input.Name)
	customer.Email = email

	return nil
}
