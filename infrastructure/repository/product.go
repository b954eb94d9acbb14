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
	productsTable = "products p"
)

var productColumns = []string{
	"p.id",
	"p.name",
	"p.price",
	"p.category_id",
	"c.name",
	"p.created_at",
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	FindProductByName(ctx context.Context, name string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) selectProducts() squirrel.SelectBuilder {
	return squirrel.
		Select(productColumns...).
		From(productsTable).
		LeftJoin("categories c ON c.id = p.category_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := r.selectProducts().OrderBy("p.created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar produto: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Eq{"p.id": id})
}

// FindProductByName compara o nome sem diferenciar maiúsculas
func (r *productRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(p.name) = LOWER(?)", name))
}

func (r *productRepository) getOne(ctx context.Context, pred any) (*domain.Product, error) {
	query, args, err := r.selectProducts().Where(pred).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query, args, err := squirrel.
		Insert("products").
		Columns("id", "name", "price", "category_id").
		Values(product.ID, product.Name, product.Price, nullString(product.CategoryID)).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query, args, err := squirrel.
		Update("products").
		Set("name", product.Name).
		Set("price", product.Price).
		Set("category_id", nullString(product.CategoryID)).
		Where(squirrel.Eq{"id": product.ID}).
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

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("products").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	return expectAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		product      domain.Product
		categoryID   sql.NullString
		categoryName sql.NullString
	)

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&categoryID,
		&categoryName,
		&product.CreatedAt,
	); err != nil {
		return nil, err
	}

	product.CategoryID = stringPtr(categoryID)
	product.CategoryName = stringPtr(categoryName)

	return &product, nil
}

// expectAffected devolve sql.ErrNoRows quando nenhuma linha foi alterada
func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
