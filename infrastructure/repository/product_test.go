package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewFromDB(db), mock
}

var productRowColumns = []string{"id", "name", "price", "category_id", "name", "created_at"}

func TestProductRepository_ListProducts(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT p.id, p.name, p.price, p.category_id, c.name, p.created_at FROM products p LEFT JOIN categories c ON c.id = p.category_id ORDER BY p.created_at DESC",
	)).WillReturnRows(sqlmock.NewRows(productRowColumns).
		AddRow("P1", "Notebook", "3500.00", "CAT1", "Eletrônicos", now).
		AddRow("P2", "Caneta", "2.50", nil, nil, now))

	products, err := NewProductRepository(conn).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Notebook", products[0].Name)
	assert.True(t, decimal.RequireFromString("3500").Equal(products[0].Price))
	require.NotNil(t, products[0].CategoryID)
	assert.Equal(t, "CAT1", *products[0].CategoryID)
	assert.Equal(t, "Eletrônicos", *products[0].CategoryName)

	assert.Nil(t, products[1].CategoryID)
	assert.Nil(t, products[1].CategoryName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetProductByID(t *testing.T) {
	t.Run("produto inexistente devolve nil", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM products p LEFT JOIN categories c ON c.id = p.category_id WHERE p.id = $1 LIMIT 1")).
			WithArgs("P9").
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		product, err := NewProductRepository(conn).GetProductByID(context.Background(), "P9")

		require.NoError(t, err)
		assert.Nil(t, product)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("busca por nome ignora maiúsculas", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(p.name) = LOWER($1) LIMIT 1")).
			WithArgs("NOTEBOOK").
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow("P1", "Notebook", "3500.00", nil, nil, time.Now()))

		product, err := NewProductRepository(conn).FindProductByName(context.Background(), "NOTEBOOK")

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "P1", product.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_CreateProduct(t *testing.T) {
	product := &domain.Product{
		ID:    "P1",
		Name:  "Notebook",
		Price: decimal.RequireFromString("3500.00"),
	}

	t.Run("sucesso", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs("P1", "Notebook", sqlmock.AnyArg(), nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		created, err := NewProductRepository(conn).CreateProduct(context.Background(), product)

		require.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nome duplicado", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := NewProductRepository(conn).CreateProduct(context.Background(), product)

		assert.ErrorIs(t, err, ErrUniqueViolation)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_DeleteProduct(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		expectedErr error
	}{
		{name: "removido", affected: 1},
		{name: "inexistente", affected: 0, expectedErr: sql.ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
				WithArgs("P1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := NewProductRepository(conn).DeleteProduct(context.Background(), "P1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
