package handler

import (
	"net/http"

	"github.com/vfg2006/crm-api/internal/api/handler/router"
	"github.com/vfg2006/crm-api/internal/scheduler"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
	"github.com/vfg2006/crm-api/internal/usecases/chatting"
	"github.com/vfg2006/crm-api/internal/usecases/exporting"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.Reporter, defaultLimit int) []router.Route {
	return router.Group("/v1/dashboard", middlewares{middleware.AllRoles()},
		router.Route{Path: "", Method: http.MethodGet, Handler: GetDashboard(service, defaultLimit)},
		router.Route{Path: "/products/count", Method: http.MethodGet, Handler: metric("total_products", service.CountProducts)},
		router.Route{Path: "/customers/count", Method: http.MethodGet, Handler: metric("total_customers", service.CountCustomers)},
		router.Route{Path: "/revenue", Method: http.MethodGet, Handler: metric("total_revenue", service.TotalRevenue)},
		router.Route{Path: "/revenue/per-customer", Method: http.MethodGet, Handler: metric("revenue_per_customer", service.RevenuePerCustomer)},
		router.Route{Path: "/products/per-customer", Method: http.MethodGet, Handler: metric("average_products_per_customer", service.AverageProductsPerCustomer)},
		router.Route{Path: "/top-products", Method: http.MethodGet, Handler: ranking(defaultLimit, service.TopProductsBySales)},
		router.Route{Path: "/top-categories", Method: http.MethodGet, Handler: ranking(defaultLimit, service.TopCategoriesBySales)},
		router.Route{Path: "/revenue-by-product", Method: http.MethodGet, Handler: GetRevenueByProduct(service)},
	)
}

// Catalog agrupa produtos, categorias e clientes. Exclusões são restritas a administradores.
func Catalog(service catalog.Catalog) []router.Route {
	return []router.Route{
		{Path: "/v1/products", Method: http.MethodGet, Handler: ListProducts(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/products", Method: http.MethodPost, Handler: CreateProduct(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/products/:id", Method: http.MethodGet, Handler: GetProduct(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/products/:id", Method: http.MethodPut, Handler: UpdateProduct(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/products/:id", Method: http.MethodDelete, Handler: DeleteProduct(service), Middlewares: middlewares{middleware.AdminOnly()}},

		{Path: "/v1/categories", Method: http.MethodGet, Handler: ListCategories(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/categories", Method: http.MethodPost, Handler: CreateCategory(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/categories/:id", Method: http.MethodGet, Handler: GetCategory(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/categories/:id", Method: http.MethodPut, Handler: UpdateCategory(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/categories/:id", Method: http.MethodDelete, Handler: DeleteCategory(service), Middlewares: middlewares{middleware.AdminOnly()}},

		{Path: "/v1/customers", Method: http.MethodGet, Handler: ListCustomers(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/customers", Method: http.MethodPost, Handler: CreateCustomer(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/customers/:id", Method: http.MethodGet, Handler: GetCustomer(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/customers/:id", Method: http.MethodPut, Handler: UpdateCustomer(service), Middlewares: middlewares{middleware.AllRoles()}},
		{Path: "/v1/customers/:id", Method: http.MethodDelete, Handler: DeleteCustomer(service), Middlewares: middlewares{middleware.AdminOnly()}},
	}
}

func Purchases(service catalog.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers/:id/products",
			Method:      http.MethodGet,
			Handler:     ListCustomerProducts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/products",
			Method:      http.MethodPost,
			Handler:     AddProductToCustomer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/products/:product_id",
			Method:      http.MethodDelete,
			Handler:     RemoveProductFromCustomer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Activities(service catalog.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/activities",
			Method:      http.MethodGet,
			Handler:     ListActivities(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities",
			Method:      http.MethodPost,
			Handler:     CreateActivity(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Export(service exporting.Exporter) []router.Route {
	return router.Group("/v1/export", middlewares{middleware.AllRoles()},
		router.Route{Path: "/products", Method: http.MethodGet, Handler: ExportProducts(service)},
		router.Route{Path: "/customers", Method: http.MethodGet, Handler: ExportCustomers(service)},
		router.Route{Path: "/report", Method: http.MethodGet, Handler: ExportReport(service)},
	)
}

func Chat(service chatting.Chatter, monitor *scheduler.ChatHealthMonitor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chat",
			Method:      http.MethodPost,
			Handler:     SendChatMessage(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/history",
			Method:      http.MethodGet,
			Handler:     GetChatHistory(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/status",
			Method:      http.MethodGet,
			Handler:     GetChatStatus(monitor),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/status/check",
			Method:      http.MethodPost,
			Handler:     CheckChatStatus(monitor),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
