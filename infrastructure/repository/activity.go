package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const (
	activitiesTable = "activities"
)

var activityColumns = []string{
	"id",
	"customer_id",
	"customer_name",
	"product_id",
	"product_name",
	"product_price",
	"product_category_id",
	"date",
	"type",
	"notes",
	"created_at",
}

// ActivityRepository acessa o livro de vendas. Não há update nem delete.
type ActivityRepository interface {
	ListActivities(ctx context.Context, filters domain.ActivityFilters) ([]*domain.Activity, error)
	ListPurchaseActivities(ctx context.Context) ([]*domain.Activity, error)
	CreateActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

// ListActivities devolve as atividades mais recentes primeiro
func (r *activityRepository) ListActivities(ctx context.Context, filters domain.ActivityFilters) ([]*domain.Activity, error) {
	queryBuilder := squirrel.
		Select(activityColumns...).
		From(activitiesTable).
		OrderBy("date DESC", "created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.CustomerID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"customer_id": filters.CustomerID})
	}

	if filters.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"type": string(filters.Type)})
	}

	return r.query(ctx, queryBuilder)
}

// ListPurchaseActivities devolve as compras na ordem em que foram registradas
func (r *activityRepository) ListPurchaseActivities(ctx context.Context) ([]*domain.Activity, error) {
	queryBuilder := squirrel.
		Select(activityColumns...).
		From(activitiesTable).
		Where(squirrel.Eq{"type": string(domain.ActivityPurchase)}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, queryBuilder)
}

func (r *activityRepository) CreateActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if err := insertActivity(ctx, r.conn, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (r *activityRepository) query(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Activity, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar atividades: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar atividade: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return activities, nil
}

// insertActivity grava a atividade usando a conexão ou a transação recebida
func insertActivity(ctx context.Context, q postgres.Queryer, activity *domain.Activity) error {
	query, args, err := squirrel.
		Insert(activitiesTable).
		Columns(
			"id",
			"customer_id",
			"customer_name",
			"product_id",
			"product_name",
			"product_price",
			"product_category_id",
			"date",
			"type",
			"notes",
		).
		Values(
			activity.ID,
			activity.CustomerID,
			activity.CustomerName,
			nullString(&activity.Product.ID),
			activity.Product.Name,
			activity.Product.Price,
			nullString(activity.Product.CategoryID),
			activity.Date,
			string(activity.Type),
			nullString(activity.Notes),
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&activity.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar atividade: %w", err)
	}

	return nil
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var (
		activity     domain.Activity
		productID    sql.NullString
		productName  sql.NullString
		productPrice decimal.NullDecimal
		categoryID   sql.NullString
		activityType string
		notes        sql.NullString
	)

	if err := row.Scan(
		&activity.ID,
		&activity.CustomerID,
		&activity.CustomerName,
		&productID,
		&productName,
		&productPrice,
		&categoryID,
		&activity.Date,
		&activityType,
		&notes,
		&activity.CreatedAt,
	); err != nil {
		return nil, err
	}

	activity.Product = domain.ProductSnapshot{
		ID:         productID.String,
		Name:       productName.String,
		Price:      productPrice,
		CategoryID: stringPtr(categoryID),
	}
	activity.Type = domain.ActivityType(activityType)
	activity.Notes = stringPtr(notes)

	return &activity, nil
}
