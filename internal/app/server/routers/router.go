package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/analytics"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/consolidation"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/diversity"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/payment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/purchasing"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/handlers/shipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/server/middlewares"
)

// SetupRoutes wires every handler into the route tree.
func SetupRoutes(
	log logger.Logger,
	analyticsHandler *analytics.AnalyticsHandler,
	diversityHandler *diversity.DiversityHandler,
	consolidationHandler *consolidation.ConsolidationHandler,
	shippingHandler *shipping.ShippingHandler,
	paymentHandler *payment.PaymentHandler,
	purchasingHandler *purchasing.PurchasingHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "freight-api",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		analyticsGroup := v1.Group("/analytics")
		{
			analyticsGroup.GET("/spend-summary", analyticsHandler.SpendSummary)
			analyticsGroup.GET("/monthly-trends", analyticsHandler.MonthlyTrends)
			analyticsGroup.GET("/top-suppliers", analyticsHandler.TopSuppliers)
			analyticsGroup.GET("/category-breakdown", analyticsHandler.CategoryBreakdown)
		}

		diversityGroup := v1.Group("/diversity")
		{
			diversityGroup.GET("/summary", diversityHandler.Summary)
			diversityGroup.GET("/suppliers", diversityHandler.Suppliers)
			diversityGroup.GET("/goals", diversityHandler.Goals)
		}

		consolidationGroup := v1.Group("/consolidation")
		{
			consolidationGroup.GET("/opportunities", consolidationHandler.Opportunities)
			consolidationGroup.GET("/summary", consolidationHandler.Summary)
		}

		shippingGroup := v1.Group("/shipping")
		{
			shippingGroup.POST("/quote", shippingHandler.Quote)
			shippingGroup.POST("/recommend", shippingHandler.Recommend)
			shippingGroup.GET("/performance", shippingHandler.Performance)
			shippingGroup.POST("/track", shippingHandler.Track)
		}

		v1.POST("/payments", paymentHandler.Create)

		requests := v1.Group("/purchase-requests")
		{
			requests.POST("", purchasingHandler.Submit)
			requests.GET("", purchasingHandler.List)
			requests.GET("/:id", purchasingHandler.Get)
			requests.POST("/:id/approval", purchasingHandler.Approval)
		}
	}

	return r
}
