package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mylaramshashank/academicshelf/events"
	"github.com/mylaramshashank/academicshelf/models"
)

type AdjustStockRequest struct {
	Stock *int `json:"stock"` // absolute value
	Delta *int `json:"delta"` // relative change
}

// AdjustStock sets or shifts a product's stock level, clamped at zero.
// Exactly one of "stock" or "delta" must be present. Broadcasts a
// product.updated event so open storefront views refresh.
// PUT /admin/products/:id/stock
func AdjustStock(db *gorm.DB, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var req AdjustStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if (req.Stock == nil) == (req.Delta == nil) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of stock or delta"})
			return
		}

		var product models.Product
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&product, "id = ?", id).Error; err != nil {
				return err
			}

			newStock := product.Stock
			if req.Stock != nil {
				newStock = *req.Stock
			} else {
				newStock += *req.Delta
			}
			if newStock < 0 {
				newStock = 0
			}

			product.Stock = newStock
			return tx.Save(&product).Error
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			}
			return
		}

		hub.Broadcast(events.EventProductUpdated, product)
		c.JSON(http.StatusOK, product)
	}
}
