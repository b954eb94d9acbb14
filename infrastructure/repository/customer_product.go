package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const (
	customerProductsTable = "customer_products"
)

// CustomerProductRepository mantém a relação N:N entre clientes e produtos.
// Toda alteração no vínculo grava a atividade correspondente na mesma transação.
type CustomerProductRepository interface {
	ListCustomerProducts(ctx context.Context, customerID string) ([]*domain.CustomerProduct, error)
	ListAllCustomerProducts(ctx context.Context) ([]*domain.CustomerProduct, error)
	LinkProduct(ctx context.Context, link *domain.CustomerProduct, activity *domain.Activity) (bool, error)
	UnlinkProduct(ctx context.Context, customerID, productID string, activity *domain.Activity) (bool, error)
}

type customerProductRepository struct {
	conn *postgres.Connection
}

func NewCustomerProductRepository(conn *postgres.Connection) CustomerProductRepository {
	return &customerProductRepository{
		conn: conn,
	}
}

func (r *customerProductRepository) ListCustomerProducts(ctx context.Context, customerID string) ([]*domain.CustomerProduct, error) {
	return r.list(ctx, r.selectLinks().
		Where(squirrel.Eq{"cp.customer_id": customerID}).
		OrderBy("cp.created_at DESC", "cp.id DESC"))
}

// ListAllCustomerProducts devolve os vínculos atuais de todos os clientes, na ordem em que foram criados
func (r *customerProductRepository) ListAllCustomerProducts(ctx context.Context) ([]*domain.CustomerProduct, error) {
	return r.list(ctx, r.selectLinks().
		OrderBy("cp.customer_id ASC", "cp.created_at ASC", "cp.id ASC"))
}

func (r *customerProductRepository) selectLinks() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"cp.id",
			"cp.customer_id",
			"cp.created_at",
			"p.id",
			"p.name",
			"p.price",
			"p.category_id",
			"c.name",
			"p.created_at",
		).
		From("customer_products cp").
		Join("products p ON p.id = cp.product_id").
		LeftJoin("categories c ON c.id = p.category_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *customerProductRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.CustomerProduct, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos do cliente: %w", err)
	}
	defer rows.Close()

	links := make([]*domain.CustomerProduct, 0)
	for rows.Next() {
		var (
			link         domain.CustomerProduct
			categoryID   sql.NullString
			categoryName sql.NullString
		)

		if err := rows.Scan(
			&link.ID,
			&link.CustomerID,
			&link.CreatedAt,
			&link.Product.ID,
			&link.Product.Name,
			&link.Product.Price,
			&categoryID,
			&categoryName,
			&link.Product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar vínculo: %w", err)
		}

		link.Product.CategoryID = stringPtr(categoryID)
		link.Product.CategoryName = stringPtr(categoryName)
		links = append(links, &link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return links, nil
}

// LinkProduct cria o vínculo e registra a compra. Se o vínculo já existe nada é gravado e devolve false.
func (r *customerProductRepository) LinkProduct(ctx context.Context, link *domain.CustomerProduct, activity *domain.Activity) (bool, error) {
	query, args, err := squirrel.
		Insert(customerProductsTable).
		Columns("id", "customer_id", "product_id").
		Values(link.ID, link.CustomerID, link.Product.ID).
		Suffix("ON CONFLICT (customer_id, product_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	linked := false
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao vincular produto: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}

		linked = true
		return insertActivity(ctx, tx, activity)
	})
	if err != nil {
		return false, err
	}

	return linked, nil
}

// UnlinkProduct remove o vínculo e registra o estorno. Devolve false se não havia vínculo.
func (r *customerProductRepository) UnlinkProduct(ctx context.Context, customerID, productID string, activity *domain.Activity) (bool, error) {
	query, args, err := squirrel.
		Delete(customerProductsTable).
		Where(squirrel.Eq{"customer_id": customerID, "product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	unlinked := false
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao desvincular produto: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}

		unlinked = true
		return insertActivity(ctx, tx, activity)
	})
	if err != nil {
		return false, err
	}

	return unlinked, nil
}
