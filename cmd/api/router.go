package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mardiana36/anemone-outlet-system/internal/auth"
	"github.com/mardiana36/anemone-outlet-system/internal/httpx"
	"github.com/mardiana36/anemone-outlet-system/internal/metrics"
	ord "github.com/mardiana36/anemone-outlet-system/internal/order"
	"github.com/mardiana36/anemone-outlet-system/internal/product"
	"github.com/mardiana36/anemone-outlet-system/internal/user"
)

type routerDeps struct {
	store    auth.TokenStore
	users    user.Repository
	products product.Repository
	orders   ord.Repository
	engine   *ord.Engine
	metrics  *metrics.HTTPMetrics // nil disables the middleware (tests)
}

func newRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	if d.metrics != nil {
		r.Use(httpx.Metrics(d.metrics))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/login", loginHandler(d.users, d.store))

	authed := api.Group("", httpx.Authenticate(d.store))
	{
		authed.POST("/logout", logoutHandler(d.store))
		authed.GET("/me", meHandler(d.users))

		authed.GET("/products", listProductsHandler(d.products))
		authed.POST("/products", httpx.RequireRole(auth.RoleHO), createProductHandler(d.products))

		authed.GET("/orders", listOrdersHandler(d.orders))
		authed.POST("/orders", httpx.RequireRole(auth.RoleOutlet), createOrderHandler(d.engine))
		authed.PUT("/orders/:id/status", httpx.RequireRole(auth.RoleHO), updateOrderStatusHandler(d.orders))

		authed.GET("/dashboard/summary", httpx.RequireRole(auth.RoleHO), dashboardSummaryHandler(d.orders))
	}

	return r
}
