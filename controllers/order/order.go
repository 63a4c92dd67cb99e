package orderControllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mylaramshashank/academicshelf/events"
	"github.com/mylaramshashank/academicshelf/models"
)

// ErrEmptyCart is returned when checkout is attempted with no cart
// lines. The ledger and cart are left untouched.
var ErrEmptyCart = errors.New("cart is empty")

// CodeGenerator produces order codes. Injected into checkout so the
// scheme can be swapped without touching the transaction.
type CodeGenerator func() string

// NewOrderCode is the default generator: "AC" + UTC timestamp + a UUID
// fragment. Unique per process and across near-simultaneous checkouts,
// short enough to read out at the pickup counter.
func NewOrderCode() string {
	return fmt.Sprintf("AC%s-%s",
		time.Now().UTC().Format("20060102150405"),
		strings.Split(uuid.NewString(), "-")[0])
}

type PlaceOrderRequest struct {
	PaymentMethod string `json:"paymentMethod"` // "upi" or "cash", defaults to cash
}

// Map string to PaymentMethod
func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case "", string(models.PaymentMethodCash):
		return models.PaymentMethodCash, nil
	case string(models.PaymentMethodUPI):
		return models.PaymentMethodUPI, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// PlaceOrder turns the user's cart into an order inside one
// transaction: stock is decremented per line (any shortfall aborts the
// whole order), the cart lines and identity are snapshotted into the
// new order, and the cart is cleared. The returned order's total equals
// the pre-checkout cart total and its items never change afterwards.
func PlaceOrder(db *gorm.DB, userID string, method models.PaymentMethod, newCode CodeGenerator) (*models.Order, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		total := 0
		var orderItems []models.OrderItem

		for _, item := range cart.Items {
			// Guarded decrement: succeeds only if enough stock remains,
			// so concurrent checkouts cannot drive stock negative.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}

			total += item.Price * item.Quantity
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				ProductType: item.ProductType,
				Price:       item.Price,
				Quantity:    item.Quantity,
			})
		}

		order = models.Order{
			ID:            newCode(),
			UserID:        user.ID,
			UserName:      user.Name,
			UserEmail:     user.Email,
			RollNo:        user.RollNo,
			Items:         orderItems,
			Total:         total,
			PaymentMethod: method,
			Status:        models.OrderStatusPending,
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB, hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		if role, _ := c.Get("role"); role == string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admins cannot place orders"})
			return
		}

		// Body is optional; an absent one means cash at the counter.
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		method, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, method, NewOrderCode)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case strings.HasPrefix(err.Error(), "insufficient stock"):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		hub.Broadcast(events.EventOrderCreated, order)

		c.JSON(http.StatusCreated, gin.H{
			"order": order,
			"collection": gin.H{
				"location":    "Library of Samskruti College",
				"institution": "Samskruti College of Engineering and Technology",
			},
		})
	}
}

// GET /orders/my
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders  (admin, newest first)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderCode — owner or admin only.
func GetOrderByCodeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("orderCode")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderCode is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		userIDVal, _ := c.Get("user_id")
		role, _ := c.Get("role")
		if order.UserID != userIDVal && role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
