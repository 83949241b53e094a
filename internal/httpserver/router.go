package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/internal/domain"
	"storefront/internal/service/checkout"
)

// Deps bundles the services the router needs.
type Deps struct {
	Catalog  CatalogService
	Cart     CartService
	Checkout CheckoutService
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id, slug string) (*domain.Product, error)
}

type CartService interface {
	Get(ctx context.Context, sessionKey string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionKey, productID string, quantity int, override bool) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionKey, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionKey string) error
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, sessionKey string, in checkout.CustomerInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, sessionTTL time.Duration) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(metricsMiddleware())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(sessionMiddleware(sessionTTL))
	{
		api.GET("/categories", listCategoriesHandler(deps.Catalog))
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/products/:id/:slug", getProductHandler(deps.Catalog))

		api.GET("/cart", getCartHandler(deps.Cart))
		api.POST("/cart/items", addCartItemHandler(deps.Cart))
		api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Cart))
		api.POST("/cart/clear", clearCartHandler(deps.Cart))

		api.POST("/orders", createOrderHandler(deps.Checkout))
		api.GET("/orders/:id", getOrderHandler(deps.Checkout))
		api.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.Checkout))
	}

	return router
}
