package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const (
	customersTable = "customers"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func selectCustomers() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "name", "email", "created_at").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	query, args, err := selectCustomers().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar cliente: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *customerRepository) getOne(ctx context.Context, pred any) (*domain.Customer, error) {
	query, args, err := selectCustomers().Where(pred).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var customer domain.Customer
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &customer, nil
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query, args, err := squirrel.
		Insert(customersTable).
		Columns("id", "name", "email").
		Values(customer.ID, customer.Name, customer.Email).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	return customer, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	query, args, err := squirrel.
		Update(customersTable).
		Set("name", customer.Name).
		Set("email", customer.Email).
		Where(squirrel.Eq{"id": customer.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(result)
}

// DeleteCustomer remove o cliente e seus vínculos; o histórico de atividades é preservado
func (r *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}

	return expectAffected(result)
}
