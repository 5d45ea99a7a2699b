package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
	ordersvc "order-backoffice/internal/service/order"
	productsvc "order-backoffice/internal/service/product"
)

type ProductService interface {
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type ProductCostService interface {
	Upsert(ctx context.Context, productID string, cost decimal.Decimal) (*domain.ProductCost, error)
	ListView(ctx context.Context) ([]domain.ProductCostView, error)
}

type OrderService interface {
	CreateFromForm(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	CreateFromWebhook(ctx context.Context, in ordersvc.ExternalInput) (*domain.Order, error)
	List(ctx context.Context, r domain.DateRange) ([]domain.Order, error)
}

type DashboardService interface {
	Summary(ctx context.Context, r domain.DateRange) (domain.DashboardSummary, error)
}

// Deps holds the services behind the API routes.
type Deps struct {
	Products     ProductService
	ProductCosts ProductCostService
	Orders       OrderService
	Dashboard    DashboardService
}

type handler struct {
	deps   Deps
	logger zerolog.Logger
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db pinger, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	useJSONFieldNames()

	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery(), cors.New(corsConfig(opts.CORSAllowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handler{deps: deps, logger: logger}

	router.POST("/products", h.createProduct)
	router.GET("/products", h.listProducts)

	router.POST("/product-costs", h.setProductCost)
	router.PUT("/product-costs/:productId", h.updateProductCost)
	router.GET("/product-costs", h.listProductCosts)

	router.POST("/orders", h.createOrder)
	router.GET("/orders", h.listOrders)

	router.GET("/dashboard", h.dashboard)

	router.POST("/webhooks/orders", h.orderWebhook)

	mountUI(router)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
