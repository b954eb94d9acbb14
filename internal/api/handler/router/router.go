package router

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithGroup registra rotas sob um prefixo comum, com middlewares aplicados antes dos da rota
	WithGroup = func(prefix string, middlewares []func(http.Handler) http.Handler, routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(Group(prefix, middlewares, routes...)...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas; os middlewares da rota envolvem o handler na ordem declarada
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, chain(route.Handler, route.Middlewares))
	}
}

// Group prefixa o caminho das rotas e antepõe os middlewares do grupo
func Group(prefix string, middlewares []func(http.Handler) http.Handler, routes ...Route) []Route {
	prefix = strings.TrimSuffix(prefix, "/")

	grouped := make([]Route, 0, len(routes))
	for _, route := range routes {
		mws := make([]func(http.Handler) http.Handler, 0, len(middlewares)+len(route.Middlewares))
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		grouped = append(grouped, Route{
			Path:        prefix + route.Path,
			Method:      route.Method,
			Handler:     route.Handler,
			Middlewares: mws,
		})
	}

	return grouped
}

func chain(handler http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
