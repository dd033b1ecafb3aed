package httpx

import (
	"net/http"

	"loafer-be/internal/admin"
	"loafer-be/internal/auth"
	"loafer-be/internal/cart"
	"loafer-be/internal/catalog"
	"loafer-be/internal/checkout"
	"loafer-be/internal/middleware"
	"loafer-be/internal/user"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Catalog  catalog.Service
	Cart     cart.Service
	Checkout checkout.Service
	User     user.Service
	Admin    admin.Service
	Tokens   *auth.Manager
	AppEnv   string
}

// NewRouter assembles the storefront API.
func NewRouter(deps Deps) *gin.Engine {
	if deps.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Auth(deps.Tokens))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.NewRateLimiter().Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	catalogH := &catalogHandlers{svc: deps.Catalog}
	cartH := &cartHandlers{svc: deps.Cart}
	checkoutH := &checkoutHandlers{svc: deps.Checkout}
	userH := &userHandlers{svc: deps.User}
	adminH := &adminHandlers{svc: deps.Admin}

	api := r.Group("/api")
	{
		api.GET("/products", catalogH.list)
		api.GET("/products/:id", catalogH.getByID)
		api.GET("/facets", catalogH.facets)

		api.POST("/auth/register", userH.register)
		api.POST("/auth/login", userH.login)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/me", userH.me)

		authed.GET("/cart", cartH.get)
		authed.POST("/cart/items", cartH.addItem)
		authed.PATCH("/cart/items/:id", cartH.updateQuantity)
		authed.DELETE("/cart/items/:id", cartH.removeItem)
		authed.DELETE("/cart", cartH.clear)

		authed.POST("/checkout/sessions", checkoutH.createSession)
		authed.GET("/checkout/sessions/:id", checkoutH.getSession)
		authed.PUT("/checkout/sessions/:id/contact", checkoutH.setContact)
		authed.PUT("/checkout/sessions/:id/shipping", checkoutH.setShipping)
		authed.POST("/checkout/sessions/:id/confirm", checkoutH.confirm)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		adminGroup.GET("/stats", adminH.stats)
		adminGroup.GET("/top-products", adminH.topProducts)
	}

	return r
}
