package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mylaramshashank/academicshelf/models"
)

// GetAllUsers lists registered students, newest first. The admin
// account itself is not a registration and is excluded.
// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Where("role <> ?", models.RoleAdmin).
			Order("registered_at DESC").
			Find(&users).Error; err != nil {
			log.Println("❌ Failed to fetch users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}
