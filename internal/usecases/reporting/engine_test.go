package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func price(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func activity(kind domain.ActivityType, productID, amount string, categoryID *string) *domain.Activity {
	return &domain.Activity{
		ID:         "act-" + productID,
		CustomerID: "C1",
		Type:       kind,
		Product: domain.ProductSnapshot{
			ID:         productID,
			Name:       "Produto " + productID,
			Price:      price(amount),
			CategoryID: categoryID,
		},
	}
}

func purchase(productID, amount string) *domain.Activity {
	return activity(domain.ActivityPurchase, productID, amount, nil)
}

func customersFixture(n int) []*domain.Customer {
	customers := make([]*domain.Customer, 0, n)
	for i := 0; i < n; i++ {
		customers = append(customers, &domain.Customer{ID: string(rune('A' + i))})
	}
	return customers
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtido %s", expected, actual)
}

func TestSnapshot_Counts(t *testing.T) {
	tests := []struct {
		name              string
		snapshot          Snapshot
		expectedProducts  int
		expectedCustomers int
	}{
		{
			name: "catálogos vazios",
		},
		{
			name: "catálogos preenchidos",
			snapshot: Snapshot{
				Products:  []*domain.Product{{ID: "P1"}, {ID: "P2"}, {ID: "P3"}},
				Customers: customersFixture(2),
			},
			expectedProducts:  3,
			expectedCustomers: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedProducts, tt.snapshot.CountProducts())
			assert.Equal(t, tt.expectedCustomers, tt.snapshot.CountCustomers())
		})
	}
}

func TestSnapshot_TotalRevenue(t *testing.T) {
	tests := []struct {
		name       string
		activities []*domain.Activity
		expected   string
	}{
		{
			name:     "livro vazio",
			expected: "0",
		},
		{
			name: "soma apenas compras",
			activities: []*domain.Activity{
				purchase("P1", "10"),
				purchase("P1", "10"),
				purchase("P1", "10"),
				purchase("P2", "20"),
				activity(domain.ActivityOther, "P2", "20", nil),
			},
			expected: "50",
		},
		{
			name: "apenas um estorno",
			activities: []*domain.Activity{
				activity(domain.ActivityRefund, "P1", "10", nil),
			},
			expected: "0",
		},
		{
			name: "preço ausente ou negativo conta como zero",
			activities: []*domain.Activity{
				{Type: domain.ActivityPurchase, Product: domain.ProductSnapshot{ID: "P1"}},
				purchase("P2", "-5"),
				purchase("P3", "19.99"),
				nil,
			},
			expected: "19.99",
		},
		{
			name: "centavos não perdem precisão",
			activities: []*domain.Activity{
				purchase("P1", "0.10"),
				purchase("P1", "0.20"),
			},
			expected: "0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := Snapshot{Activities: tt.activities}
			assertDecimal(t, tt.expected, snapshot.TotalRevenue())
		})
	}
}

func TestSnapshot_TotalRevenueIgnoresCatalogPrice(t *testing.T) {
	snapshot := Snapshot{
		Products:   []*domain.Product{{ID: "P1", Price: decimal.NewFromInt(99)}},
		Activities: []*domain.Activity{purchase("P1", "10")},
	}

	assertDecimal(t, "10", snapshot.TotalRevenue())
}

func TestSnapshot_TotalRevenueIsOrderIndependent(t *testing.T) {
	ledger := []*domain.Activity{
		purchase("P1", "10.50"),
		activity(domain.ActivityRefund, "P1", "10.50", nil),
		purchase("P2", "3.25"),
		purchase("P3", "7"),
	}

	reversed := make([]*domain.Activity, 0, len(ledger))
	for i := len(ledger) - 1; i >= 0; i-- {
		reversed = append(reversed, ledger[i])
	}

	forward := Snapshot{Activities: ledger}.TotalRevenue()
	backward := Snapshot{Activities: reversed}.TotalRevenue()

	assert.True(t, forward.Equal(backward))
	assertDecimal(t, "20.75", forward)
}

func TestSnapshot_TopProductsBySales(t *testing.T) {
	ledger := []*domain.Activity{
		purchase("P1", "10"),
		purchase("P1", "10"),
		purchase("P1", "10"),
		purchase("P2", "20"),
	}

	tests := []struct {
		name       string
		activities []*domain.Activity
		limit      int
		expected   []string
		counts     []int
	}{
		{
			name:       "top 1",
			activities: ledger,
			limit:      1,
			expected:   []string{"P1"},
			counts:     []int{3},
		},
		{
			name:       "limite maior que a quantidade de produtos",
			activities: ledger,
			limit:      5,
			expected:   []string{"P1", "P2"},
			counts:     []int{3, 1},
		},
		{
			name:       "limite zero",
			activities: ledger,
			limit:      0,
			expected:   []string{},
			counts:     []int{},
		},
		{
			name:       "limite negativo",
			activities: ledger,
			limit:      -1,
			expected:   []string{},
			counts:     []int{},
		},
		{
			name: "empate mantém ordem de aparição",
			activities: []*domain.Activity{
				purchase("P2", "1"),
				purchase("P1", "1"),
				purchase("P3", "1"),
				purchase("P1", "1"),
				purchase("P2", "1"),
			},
			limit:    3,
			expected: []string{"P2", "P1", "P3"},
			counts:   []int{2, 2, 1},
		},
		{
			name: "ignora estornos e atividades sem produto",
			activities: []*domain.Activity{
				purchase("", "10"),
				activity(domain.ActivityRefund, "P1", "10", nil),
				activity(domain.ActivityRefund, "P1", "10", nil),
				purchase("P2", "10"),
			},
			limit:    5,
			expected: []string{"P2"},
			counts:   []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Snapshot{Activities: tt.activities}.TopProductsBySales(tt.limit)

			require.NotNil(t, result)
			require.Len(t, result, len(tt.expected))
			for i, item := range result {
				assert.Equal(t, tt.expected[i], item.Product.ID)
				assert.Equal(t, tt.counts[i], item.SalesCount)
			}

			for i := 1; i < len(result); i++ {
				assert.GreaterOrEqual(t, result[i-1].SalesCount, result[i].SalesCount)
			}
		})
	}
}

func TestSnapshot_TopCategoriesBySales(t *testing.T) {
	categories := []*domain.Category{
		{ID: "CAT1", Name: "Eletrônicos"},
		{ID: "CAT2", Name: "Livros"},
	}

	tests := []struct {
		name       string
		products   []*domain.Product
		activities []*domain.Activity
		limit      int
		expected   []string
		counts     []int
	}{
		{
			name: "categoria do snapshot",
			activities: []*domain.Activity{
				activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT1")),
				activity(domain.ActivityPurchase, "P2", "10", stringPtr("CAT2")),
				activity(domain.ActivityPurchase, "P3", "10", stringPtr("CAT2")),
			},
			limit:    5,
			expected: []string{"CAT2", "CAT1"},
			counts:   []int{2, 1},
		},
		{
			name: "sem categoria no snapshot usa o catálogo atual",
			products: []*domain.Product{
				{ID: "P1", CategoryID: stringPtr("CAT1")},
			},
			activities: []*domain.Activity{
				purchase("P1", "10"),
				purchase("P1", "10"),
			},
			limit:    5,
			expected: []string{"CAT1"},
			counts:   []int{2},
		},
		{
			name: "snapshot tem precedência sobre o catálogo",
			products: []*domain.Product{
				{ID: "P1", CategoryID: stringPtr("CAT2")},
			},
			activities: []*domain.Activity{
				activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT1")),
			},
			limit:    5,
			expected: []string{"CAT1"},
			counts:   []int{1},
		},
		{
			name: "categoria removida é ignorada",
			activities: []*domain.Activity{
				activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT_REMOVIDA")),
				activity(domain.ActivityPurchase, "P2", "10", stringPtr("CAT1")),
			},
			limit:    5,
			expected: []string{"CAT1"},
			counts:   []int{1},
		},
		{
			name: "produto sem categoria em lugar nenhum",
			products: []*domain.Product{
				{ID: "P1"},
			},
			activities: []*domain.Activity{
				purchase("P1", "10"),
			},
			limit:    5,
			expected: []string{},
			counts:   []int{},
		},
		{
			name: "limite zero",
			activities: []*domain.Activity{
				activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT1")),
			},
			limit:    0,
			expected: []string{},
			counts:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := Snapshot{
				Products:   tt.products,
				Categories: categories,
				Activities: tt.activities,
			}

			result := snapshot.TopCategoriesBySales(tt.limit)

			require.NotNil(t, result)
			require.Len(t, result, len(tt.expected))
			for i, item := range result {
				assert.Equal(t, tt.expected[i], item.Category.ID)
				assert.Equal(t, tt.counts[i], item.SalesCount)
			}
		})
	}
}

func TestSnapshot_DeletedCategoryStillCountsForProducts(t *testing.T) {
	snapshot := Snapshot{
		Categories: []*domain.Category{},
		Activities: []*domain.Activity{
			activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT_REMOVIDA")),
		},
	}

	assert.Empty(t, snapshot.TopCategoriesBySales(5))

	products := snapshot.TopProductsBySales(5)
	require.Len(t, products, 1)
	assert.Equal(t, "P1", products[0].Product.ID)
	assert.Equal(t, 1, products[0].SalesCount)
}

func TestSnapshot_RevenueByProduct(t *testing.T) {
	snapshot := Snapshot{
		Activities: []*domain.Activity{
			purchase("P1", "10"),
			purchase("P2", "25"),
			purchase("P1", "10"),
			purchase("P3", "20"),
			activity(domain.ActivityRefund, "P3", "20", nil),
		},
	}

	result := snapshot.RevenueByProduct()

	require.Len(t, result, 3)
	assert.Equal(t, "P2", result[0].Product.ID)
	assertDecimal(t, "25", result[0].Revenue)
	// P1 e P3 empatam em 20; P1 apareceu antes
	assert.Equal(t, "P1", result[1].Product.ID)
	assertDecimal(t, "20", result[1].Revenue)
	assert.Equal(t, "P3", result[2].Product.ID)
	assertDecimal(t, "20", result[2].Revenue)
}

func TestSnapshot_PerCustomerRatios(t *testing.T) {
	ledger := []*domain.Activity{
		purchase("P1", "10"),
		purchase("P1", "10"),
		purchase("P1", "10"),
		purchase("P2", "20"),
	}

	tests := []struct {
		name            string
		customers       []*domain.Customer
		expectedRevenue string
		expectedAverage string
	}{
		{
			name:            "sem clientes",
			expectedRevenue: "0",
			expectedAverage: "0",
		},
		{
			name:            "dois clientes",
			customers:       customersFixture(2),
			expectedRevenue: "25",
			expectedAverage: "2",
		},
		{
			name:            "quatro clientes",
			customers:       customersFixture(4),
			expectedRevenue: "12.5",
			expectedAverage: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := Snapshot{Customers: tt.customers, Activities: ledger}

			assertDecimal(t, tt.expectedRevenue, snapshot.RevenuePerCustomer())
			assertDecimal(t, tt.expectedAverage, snapshot.AverageProductsPerCustomer())
		})
	}
}

func TestSnapshot_PurchaseWithoutProductIsSkipped(t *testing.T) {
	orphan := &domain.Activity{ID: "act-sem-produto", CustomerID: "C1", Type: domain.ActivityPurchase}
	snapshot := Snapshot{
		Customers:  customersFixture(1),
		Activities: []*domain.Activity{purchase("P1", "10"), orphan},
	}

	rankedSales := 0
	for _, entry := range snapshot.TopProductsBySales(10) {
		rankedSales += entry.SalesCount
	}

	assert.Equal(t, 1, snapshot.TotalSales())
	assert.Equal(t, rankedSales, snapshot.TotalSales())
	assertDecimal(t, "1", snapshot.AverageProductsPerCustomer())
	assertDecimal(t, "10", snapshot.TotalRevenue())
}

func TestSnapshot_Summary(t *testing.T) {
	snapshot := Snapshot{
		Products:   []*domain.Product{{ID: "P1"}, {ID: "P2"}},
		Categories: []*domain.Category{{ID: "CAT1", Name: "Eletrônicos"}},
		Customers:  customersFixture(3),
		Activities: []*domain.Activity{
			activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT1")),
			activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT1")),
			activity(domain.ActivityPurchase, "P1", "10", stringPtr("CAT1")),
			purchase("P2", "20"),
		},
	}

	summary := snapshot.Summary(1)

	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 3, summary.TotalCustomers)
	assert.Equal(t, 4, summary.TotalSales)
	assertDecimal(t, "50", summary.TotalRevenue)
	assertDecimal(t, "16.67", summary.RevenuePerCustomer)
	assertDecimal(t, "1.33", summary.AverageProductsPerCustomer)
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "P1", summary.TopProducts[0].Product.ID)
	require.Len(t, summary.TopCategories, 1)
	assert.Equal(t, "CAT1", summary.TopCategories[0].Category.ID)
	assert.Equal(t, 3, summary.TopCategories[0].SalesCount)
}

func TestSnapshot_Idempotent(t *testing.T) {
	snapshot := Snapshot{
		Products:   []*domain.Product{{ID: "P1", CategoryID: stringPtr("CAT1")}},
		Categories: []*domain.Category{{ID: "CAT1"}},
		Customers:  customersFixture(2),
		Activities: []*domain.Activity{
			purchase("P1", "10"),
			purchase("P2", "7.5"),
		},
	}

	first := snapshot.Summary(5)
	second := snapshot.Summary(5)

	assert.Equal(t, first, second)
	assert.Len(t, snapshot.Activities, 2)
}

func link(customerID, productID, catalogPrice string) *domain.CustomerProduct {
	return &domain.CustomerProduct{
		ID:         "L-" + customerID + "-" + productID,
		CustomerID: customerID,
		Product: domain.Product{
			ID:    productID,
			Name:  "Produto " + productID,
			Price: decimal.RequireFromString(catalogPrice),
		},
	}
}

func TestSnapshot_SpendingByCustomer(t *testing.T) {
	repurchase := purchase("P1", "12")
	other := purchase("P2", "20")
	other.CustomerID = "C2"

	snapshot := Snapshot{
		Activities: []*domain.Activity{
			purchase("P1", "10"),
			purchase("P3", "5.50"),
			activity(domain.ActivityRefund, "P3", "5.50", nil),
			repurchase,
			other,
		},
		CustomerProducts: []*domain.CustomerProduct{
			link("C1", "P1", "99"),
			link("C2", "P2", "99"),
			link("C2", "P4", "7"),
		},
	}

	spending := snapshot.SpendingByCustomer()

	require.Len(t, spending, 2)

	// P3 foi estornado e não está mais vinculado; P1 usa o preço da compra mais recente
	assert.Equal(t, 1, spending["C1"].Purchases)
	assert.Equal(t, []string{"Produto P1"}, spending["C1"].Products)
	assertDecimal(t, "12", spending["C1"].Total)

	// P4 não tem compra no livro e vale o preço do catálogo
	assert.Equal(t, 2, spending["C2"].Purchases)
	assert.Equal(t, []string{"Produto P2", "Produto P4"}, spending["C2"].Products)
	assertDecimal(t, "27", spending["C2"].Total)
}
