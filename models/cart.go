package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"uniqueIndex" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// CartItem carries a snapshot of the product fields at add time so the
// checkout copy is independent of later catalog edits.
type CartItem struct {
	ID          uint        `gorm:"primaryKey" json:"-"`
	CartID      uint        `gorm:"index" json:"-"`
	ProductID   string      `json:"id"`
	ProductName string      `json:"name"`
	ProductType ProductType `json:"type"`
	Price       int         `json:"price"`
	Quantity    int         `json:"quantity"` // always >= 1
	AddedAt     time.Time   `json:"-"`
}
