package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes on a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts the three route surfaces: the authenticated /api group,
// the authenticated /docs2ai group, and unauthenticated root routes.
type Router struct {
	engine  *gin.Engine
	api     []RouteRegistrar
	docs2ai []RouteRegistrar
	root    []RouteRegistrar
}

// NewRouter creates a new Router
func NewRouter(engine *gin.Engine) *Router {
	return &Router{engine: engine}
}

// API adds registrars for the /api group
func (r *Router) API(registrars ...RouteRegistrar) *Router {
	r.api = append(r.api, registrars...)
	return r
}

// Docs2AI adds registrars for the /docs2ai group
func (r *Router) Docs2AI(registrars ...RouteRegistrar) *Router {
	r.docs2ai = append(r.docs2ai, registrars...)
	return r
}

// Root adds registrars mounted without a prefix
func (r *Router) Root(registrars ...RouteRegistrar) *Router {
	r.root = append(r.root, registrars...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api")
	for _, registrar := range r.api {
		registrar.RegisterRoutes(api)
	}

	docs2ai := r.engine.Group("/docs2ai")
	for _, registrar := range r.docs2ai {
		registrar.RegisterRoutes(docs2ai)
	}

	root := r.engine.Group("")
	for _, registrar := range r.root {
		registrar.RegisterRoutes(root)
	}
}
