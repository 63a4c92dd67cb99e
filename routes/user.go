package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mylaramshashank/academicshelf/auth"
	cartControllers "github.com/mylaramshashank/academicshelf/controllers/cart"
	"github.com/mylaramshashank/academicshelf/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT
// middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Current Identity ────────────────
		userGroup.GET("/", auth.MeHandler(db)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                           // GET /user/cart
			cartGroup.POST("/", cartControllers.AddToCart(db))                            // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.SetCartItemQuantity(db))        // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))          // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))                      // DELETE /user/cart
		}
	}
}
