package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	fulfillmentHandler *api.FulfillmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cartHandler, checkoutHandler, orderHandler, fulfillmentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	fulfillmentHandler *api.FulfillmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.ClearCart},
				{Method: http.MethodPut, Path: "/items/:productUnitId", Handler: cartHandler.UpdateItemQuantity},
				{Method: http.MethodDelete, Path: "/items/:productUnitId", Handler: cartHandler.RemoveItem},
			})
		}

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "", Handler: checkoutHandler.GetState},
				{Method: http.MethodPut, Path: "", Handler: checkoutHandler.UpdateDraft},
				{Method: http.MethodPost, Path: "/submit", Handler: checkoutHandler.Submit},
				{Method: http.MethodPost, Path: "/cancel", Handler: checkoutHandler.CancelWait},
				{Method: http.MethodPost, Path: "/acknowledge", Handler: checkoutHandler.Acknowledge},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders},
				{Method: http.MethodGet, Path: "/:orderId", Handler: orderHandler.GetOrder},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/addresses", Handler: fulfillmentHandler.ListAddresses},
			{Method: http.MethodGet, Path: "/stores", Handler: fulfillmentHandler.ListStores},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
