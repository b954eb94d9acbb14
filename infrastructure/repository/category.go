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
	categoriesTable = "categories"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "name", "description", "color", "created_at").
		From(categoriesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "name", "description", "color", "created_at").
		From(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	category, err := scanCategory(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query, args, err := squirrel.
		Insert(categoriesTable).
		Columns("id", "name", "description", "color").
		Values(category.ID, category.Name, nullString(category.Description), nullString(category.Color)).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&category.CreatedAt); err != nil {
		return nil, translateError(err)
	}

	return category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	query, args, err := squirrel.
		Update(categoriesTable).
		Set("name", category.Name).
		Set("description", nullString(category.Description)).
		Set("color", nullString(category.Color)).
		Where(squirrel.Eq{"id": category.ID}).
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

// DeleteCategory remove a categoria; os produtos vinculados ficam sem categoria (ON DELETE SET NULL)
func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover categoria: %w", err)
	}

	return expectAffected(result)
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var (
		category    domain.Category
		description sql.NullString
		color       sql.NullString
	)

	if err := row.Scan(
		&category.ID,
		&category.Name,
		&description,
		&color,
		&category.CreatedAt,
	); err != nil {
		return nil, err
	}

	category.Description = stringPtr(description)
	category.Color = stringPtr(color)

	return &category, nil
}
