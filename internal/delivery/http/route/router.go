package route

import (
	"net/http"

	"github.com/craveo/marketplace-service/internal/delivery/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the delivery-layer dependencies for SetupRoutes.
type Handlers struct {
	Requests *handler.RequestHandler
	Offers   *handler.OfferHandler
	Orders   *handler.OrderHandler
	Products *handler.ProductHandler
}

func SetupRoutes(app *gin.Engine, h Handlers, gatherer prometheus.Gatherer) {
	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	app.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	requests := api.Group("/requests")
	requests.POST("", h.Requests.Create)
	requests.GET("", h.Requests.List)
	requests.GET("/matching/:supplier_id", h.Requests.Matching)
	requests.GET("/:id", h.Requests.GetByID)
	requests.PUT("/:id", h.Requests.Update)
	requests.DELETE("/:id", h.Requests.Delete)
	requests.POST("/:id/cancel", h.Requests.Cancel)
	requests.POST("/:id/supplier-action", h.Offers.SupplierAction)

	offers := api.Group("/offers")
	offers.POST("", h.Offers.Submit)
	offers.GET("/:id", h.Offers.GetByID)
	offers.GET("/by-request/:id", h.Offers.ListByRequest)
	offers.GET("/by-supplier/:id", h.Offers.ListBySupplier)
	offers.PUT("/:id", h.Offers.Update)
	offers.PATCH("/:id/action", h.Offers.Action)

	orders := api.Group("/orders")
	orders.GET("/:id", h.Orders.GetByID)
	orders.PATCH("/:id/status", h.Orders.UpdateStatus)
	orders.GET("/active/:user_id", h.Orders.ListActive)
	orders.GET("/history/:user_id", h.Orders.History)
	orders.GET("/customer/:user_id", h.Orders.ListByCustomer)
	orders.GET("/supplier/:user_id", h.Orders.ListBySupplier)

	products := api.Group("/products")
	products.POST("", h.Products.Create)
	products.GET("/:id", h.Products.GetByID)
	products.PUT("/:id", h.Products.Update)
	products.DELETE("/:id", h.Products.Delete)
	products.GET("/by-supplier/:id", h.Products.ListBySupplier)
	products.GET("/by-supplier/:id/categories", h.Products.Categories)
}
