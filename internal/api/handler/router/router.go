package router

import (
	"net/http"
	"path"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/pkg/apiErrors"
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // aplicados na ordem da lista
}

func (r Route) String() string {
	return r.Method + " " + r.Path
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithGroup registra as rotas sob o prefixo, aplicando middlewares antes dos da própria rota
func WithGroup(prefix string, middlewares []func(http.Handler) http.Handler, routes ...Route) ConfigRouter {
	return func(router *Router) {
		grouped := make([]Route, 0, len(routes))
		for _, route := range routes {
			route.Path = path.Join(prefix, route.Path)
			route.Middlewares = append(append([]func(http.Handler) http.Handler{}, middlewares...), route.Middlewares...)
			grouped = append(grouped, route)
		}
		router.AddRoutes(grouped...)
	}
}

type Router struct {
	router     *httprouter.Router
	registered []string
}

func New(configs ...ConfigRouter) *Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Método não permitido", nil)
	})

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.registered = append(r.registered, route.String())
		logrus.WithField("route", route.String()).Debug("Rota registrada")
	}
}

// Routes lista as rotas registradas em ordem alfabética
func (r *Router) Routes() []string {
	routes := append([]string(nil), r.registered...)
	sort.Strings(routes)
	return routes
}
