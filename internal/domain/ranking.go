package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductSales struct {
	Product    ProductSnapshot `json:"product"`
	SalesCount int             `json:"sales_count"`
}

type CategorySales struct {
	Category   Category `json:"category"`
	SalesCount int      `json:"sales_count"`
}

type ProductRevenue struct {
	Product ProductSnapshot `json:"product"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardSummary reúne todas as métricas exibidas no painel
type DashboardSummary struct {
	TotalProducts              int             `json:"total_products"`
	TotalCustomers             int             `json:"total_customers"`
	TotalRevenue               decimal.Decimal `json:"total_revenue"`
	TotalSales                 int             `json:"total_sales"`
	RevenuePerCustomer         decimal.Decimal `json:"revenue_per_customer"`
	AverageProductsPerCustomer decimal.Decimal `json:"average_products_per_customer"`
	TopProducts                []ProductSales  `json:"top_products"`
	TopCategories              []CategorySales `json:"top_categories"`
	GeneratedAt                time.Time       `json:"generated_at"`
}
