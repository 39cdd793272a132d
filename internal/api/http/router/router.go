package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/api/http/handler"
	"github.com/lynossweets/storefront-server/internal/api/http/middleware"
)

// Router assembles the HTTP route table. Everything lives under /api; the
// storefront reads the public routes, the back office goes through the
// admin gate.
type Router struct {
	logging      *middleware.Logging
	authenticate *middleware.Authenticate

	auth     *handler.Auth
	product  *handler.Product
	category *handler.Category
	user     *handler.User
	sale     *handler.Sale
	stats    *handler.Stats
	health   *handler.Health
}

// New creates a new Router.
func New(
	logging *middleware.Logging,
	authenticate *middleware.Authenticate,
	auth *handler.Auth,
	product *handler.Product,
	category *handler.Category,
	user *handler.User,
	sale *handler.Sale,
	stats *handler.Stats,
	health *handler.Health,
) *Router {
	return &Router{
		logging:      logging,
		authenticate: authenticate,
		auth:         auth,
		product:      product,
		category:     category,
		user:         user,
		sale:         sale,
		stats:        stats,
		health:       health,
	}
}

// Register builds the gin engine with all routes and middleware attached.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(r.logging.Handle())

	api := engine.Group("/api")

	api.GET("/healthz", r.health.Check)

	api.POST("/auth/login", r.auth.Login)
	api.POST("/auth/logout", r.auth.Logout)

	api.GET("/products", r.product.List)
	api.GET("/products/:id", r.product.Get)
	api.GET("/products/:id/image", r.product.GetImage)
	api.GET("/categories", r.category.List)

	admin := api.Group("", r.authenticate.RequireAdmin())

	admin.GET("/auth/me", r.auth.Me)

	admin.POST("/products", r.product.Create)
	admin.PUT("/products/:id", r.product.Update)
	admin.DELETE("/products/:id", r.product.Delete)
	admin.POST("/products/:id/image", r.product.UploadImage)

	admin.POST("/categories", r.category.Create)
	admin.PUT("/categories/:id", r.category.Update)
	admin.DELETE("/categories/:id", r.category.Delete)

	admin.GET("/users", r.user.List)
	admin.POST("/users", r.user.Create)
	admin.PUT("/users/:id", r.user.Update)
	admin.DELETE("/users/:id", r.user.Delete)

	admin.GET("/sales", r.sale.List)
	admin.POST("/sales", r.sale.Create)

	admin.GET("/stats", r.stats.Get)

	return engine
}
