package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/mylaramshashank/academicshelf/controllers/product"
	"github.com/mylaramshashank/academicshelf/events"
)

// SetupRoutes is the single entry-point that wires up Auth, User,
// Order, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *events.Hub, loc *time.Location) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))

	// Push channel for cross-view refresh
	r.GET("/events/ws", hub.Handler)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db, hub)

	// Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, db, hub, loc)
}
