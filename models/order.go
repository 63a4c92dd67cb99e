package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses (counter-pickup flow)
	OrderStatusPending   OrderStatus = "Pending"   // Placed, awaiting collection
	OrderStatusReady     OrderStatus = "Ready"     // Packed at the library counter
	OrderStatusCollected OrderStatus = "Collected" // Handed over to the student
	OrderStatusCancelled OrderStatus = "Cancelled"

	// Payment methods
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCash PaymentMethod = "cash" // pay at the counter on collection
)

// Order is immutable after creation. ID is the human-readable order
// code presented for counter pickup. The user fields and items are
// frozen copies taken at checkout time.
type Order struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	UserID        string        `gorm:"index;not null" json:"userId"`
	UserName      string        `json:"userName"`
	UserEmail     string        `json:"userEmail"`
	RollNo        string        `json:"rollNo"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total         int           `gorm:"not null" json:"total"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"paymentMethod"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type OrderItem struct {
	RowID       uint        `gorm:"primaryKey" json:"-"`
	OrderID     string      `gorm:"index" json:"-"`
	ProductID   string      `json:"id"`
	ProductName string      `json:"name"`
	ProductType ProductType `json:"type"`
	Price       int         `json:"price"`
	Quantity    int         `json:"quantity"`
}
