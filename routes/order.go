package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/mylaramshashank/academicshelf/controllers/order"
	"github.com/mylaramshashank/academicshelf/events"
	"github.com/mylaramshashank/academicshelf/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, hub *events.Hub) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout: cart -> order
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, hub))

		// Caller's order history, newest first
		orders.GET("/my", orderControllers.GetMyOrdersHandler(db))

		// Single order lookup by pickup code (owner or admin)
		orders.GET("/:orderCode", orderControllers.GetOrderByCodeHandler(db))
	}
}
