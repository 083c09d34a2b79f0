package models

import "time"

type ProductModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	SupplierID  string    `gorm:"type:uuid;index"`
	Name        string
	Description string
	Price       float64
	Category    string    `gorm:"index"`
	ImagePath   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
