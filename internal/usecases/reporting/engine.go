// Package reporting calcula as métricas do painel a partir dos catálogos e do livro de vendas
package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/utils"
)

// Snapshot é a fotografia dos catálogos e do livro de vendas usada em uma agregação.
// Nenhuma operação altera o snapshot; cada chamada recalcula tudo a partir dele.
type Snapshot struct {
	Products   []*domain.Product
	Categories []*domain.Category
	Customers  []*domain.Customer
	Activities []*domain.Activity
	// CustomerProducts só é preenchido pela exportação de clientes
	CustomerProducts []*domain.CustomerProduct
}

func (s Snapshot) CountProducts() int {
	return len(s.Products)
}

func (s Snapshot) CountCustomers() int {
	return len(s.Customers)
}

// TotalRevenue soma o preço gravado em cada atividade de compra.
// O preço atual do catálogo nunca é consultado.
func (s Snapshot) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, activity := range s.purchases() {
		total = total.Add(recordedPrice(activity))
	}
	return total
}

// TotalSales conta as compras com produto identificado, os mesmos registros usados nos rankings
func (s Snapshot) TotalSales() int {
	total := 0
	for _, activity := range s.purchases() {
		if activity.Product.ID != "" {
			total++
		}
	}
	return total
}

// TopProductsBySales agrupa as compras por produto e devolve as `limit` primeiras.
// Empates mantêm a ordem da primeira aparição no livro.
func (s Snapshot) TopProductsBySales(limit int) []domain.ProductSales {
	if limit <= 0 {
		return []domain.ProductSales{}
	}

	positions := make(map[string]int)
	ranking := make([]domain.ProductSales, 0)

	for _, activity := range s.purchases() {
		productID := activity.Product.ID
		if productID == "" {
			continue
		}

		if i, exists := positions[productID]; exists {
			ranking[i].SalesCount++
			continue
		}

		positions[productID] = len(ranking)
		ranking = append(ranking, domain.ProductSales{
			Product:    activity.Product,
			SalesCount: 1,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].SalesCount > ranking[j].SalesCount
	})

	return truncate(ranking, limit)
}

// TopCategoriesBySales conta as compras por categoria. Vendas cuja categoria
// não pode ser resolvida (ausente ou já removida) ficam de fora.
func (s Snapshot) TopCategoriesBySales(limit int) []domain.CategorySales {
	if limit <= 0 {
		return []domain.CategorySales{}
	}

	categoriesByID := make(map[string]*domain.Category, len(s.Categories))
	for _, category := range s.Categories {
		if category == nil || category.ID == "" {
			continue
		}
		categoriesByID[category.ID] = category
	}

	liveCategory := make(map[string]string, len(s.Products))
	for _, product := range s.Products {
		if product == nil || product.CategoryID == nil {
			continue
		}
		liveCategory[product.ID] = *product.CategoryID
	}

	positions := make(map[string]int)
	ranking := make([]domain.CategorySales, 0)

	for _, activity := range s.purchases() {
		categoryID := resolveCategoryID(activity, liveCategory)
		if categoryID == "" {
			continue
		}

		category, exists := categoriesByID[categoryID]
		if !exists {
			continue
		}

		if i, counted := positions[categoryID]; counted {
			ranking[i].SalesCount++
			continue
		}

		positions[categoryID] = len(ranking)
		ranking = append(ranking, domain.CategorySales{
			Category:   *category,
			SalesCount: 1,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].SalesCount > ranking[j].SalesCount
	})

	return truncate(ranking, limit)
}

// RevenueByProduct soma a receita de cada produto vendido, maior receita primeiro
func (s Snapshot) RevenueByProduct() []domain.ProductRevenue {
	positions := make(map[string]int)
	revenues := make([]domain.ProductRevenue, 0)

	for _, activity := range s.purchases() {
		productID := activity.Product.ID
		if productID == "" {
			continue
		}

		price := recordedPrice(activity)
		if i, exists := positions[productID]; exists {
			revenues[i].Revenue = revenues[i].Revenue.Add(price)
			continue
		}

		positions[productID] = len(revenues)
		revenues = append(revenues, domain.ProductRevenue{
			Product: activity.Product,
			Revenue: price,
		})
	}

	sort.SliceStable(revenues, func(i, j int) bool {
		return revenues[i].Revenue.GreaterThan(revenues[j].Revenue)
	})

	return revenues
}

// CustomerSpending resume os produtos atualmente vinculados a um cliente
type CustomerSpending struct {
	Purchases int
	Products  []string
	Total     decimal.Decimal
}

type purchaseKey struct {
	customerID string
	productID  string
}

// SpendingByCustomer agrupa os vínculos atuais por cliente. Produtos removidos (estornados)
// não aparecem. Cada produto vale o preço gravado na compra mais recente do cliente;
// sem compra no livro, vale o preço do catálogo.
func (s Snapshot) SpendingByCustomer() map[string]*CustomerSpending {
	paid := make(map[purchaseKey]decimal.Decimal)
	for _, activity := range s.purchases() {
		if activity.Product.ID == "" {
			continue
		}
		paid[purchaseKey{activity.CustomerID, activity.Product.ID}] = recordedPrice(activity)
	}

	spending := make(map[string]*CustomerSpending)
	for _, link := range s.CustomerProducts {
		if link == nil || link.Product.ID == "" {
			continue
		}

		current, exists := spending[link.CustomerID]
		if !exists {
			current = &CustomerSpending{Total: decimal.Zero}
			spending[link.CustomerID] = current
		}

		price, ok := paid[purchaseKey{link.CustomerID, link.Product.ID}]
		if !ok {
			price = link.Product.Price
		}

		current.Purchases++
		current.Total = current.Total.Add(price)
		current.Products = append(current.Products, link.Product.Name)
	}

	return spending
}

func (s Snapshot) RevenuePerCustomer() decimal.Decimal {
	return perCustomer(s.TotalRevenue(), s.CountCustomers())
}

func (s Snapshot) AverageProductsPerCustomer() decimal.Decimal {
	return perCustomer(decimal.NewFromInt(int64(s.TotalSales())), s.CountCustomers())
}

// Summary monta o resumo do painel. As razões são arredondadas em 2 casas.
func (s Snapshot) Summary(limit int) domain.DashboardSummary {
	return domain.DashboardSummary{
		TotalProducts:              s.CountProducts(),
		TotalCustomers:             s.CountCustomers(),
		TotalRevenue:               s.TotalRevenue(),
		TotalSales:                 s.TotalSales(),
		RevenuePerCustomer:         utils.RoundWithTwoDecimalPlace(s.RevenuePerCustomer()),
		AverageProductsPerCustomer: utils.RoundWithTwoDecimalPlace(s.AverageProductsPerCustomer()),
		TopProducts:                s.TopProductsBySales(limit),
		TopCategories:              s.TopCategoriesBySales(limit),
	}
}

func (s Snapshot) purchases() []*domain.Activity {
	purchases := make([]*domain.Activity, 0, len(s.Activities))
	for _, activity := range s.Activities {
		if activity == nil || !activity.IsPurchase() {
			continue
		}
		purchases = append(purchases, activity)
	}
	return purchases
}

// recordedPrice devolve o preço gravado na atividade; ausente ou negativo vale zero
func recordedPrice(activity *domain.Activity) decimal.Decimal {
	price := activity.Product.Price
	if !price.Valid || price.Decimal.IsNegative() {
		return decimal.Zero
	}
	return price.Decimal
}

// resolveCategoryID usa a categoria do snapshot e, se não houver, a do catálogo atual
func resolveCategoryID(activity *domain.Activity, liveCategory map[string]string) string {
	if activity.Product.CategoryID != nil && *activity.Product.CategoryID != "" {
		return *activity.Product.CategoryID
	}
	return liveCategory[activity.Product.ID]
}

func perCustomer(value decimal.Decimal, customers int) decimal.Decimal {
	if customers == 0 {
		return decimal.Zero
	}
	return value.Div(decimal.NewFromInt(int64(customers)))
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
