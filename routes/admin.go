package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/mylaramshashank/academicshelf/controllers/admin"
	orderControllers "github.com/mylaramshashank/academicshelf/controllers/order"
	productControllers "github.com/mylaramshashank/academicshelf/controllers/product"
	"github.com/mylaramshashank/academicshelf/events"
	"github.com/mylaramshashank/academicshelf/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT
// carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, hub *events.Hub, loc *time.Location) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── User Records ───────────
		adminGroup.GET("/users", adminController.GetAllUsers(db))

		// ─────────── Revenue Aggregates ───────────
		adminGroup.GET("/stats", adminController.GetMonthStats(db, loc))
		adminGroup.GET("/revenue-series", adminController.GetDailyRevenueSeries(db, loc))

		// ─────────── Purchase Records ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
		}

		// ─────────── Stock Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.PUT("/:id/stock", productControllers.AdjustStock(db, hub))
		}
	}
}
