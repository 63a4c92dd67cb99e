package models

import "time"

type ProductType string

const (
	ProductTypeRecords  ProductType = "records"
	ProductTypeBooklets ProductType = "booklets"
)

type Product struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Type        ProductType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Price       int         `gorm:"not null" json:"price"` // rupees, fixed post-creation
	Stock       int         `gorm:"not null;default:0" json:"stock"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}
