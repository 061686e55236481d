package models

import "time"

// Product is an item purchased by a representative.
type Product struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:255;index" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Price            float64   `json:"price"`
	Stock            int       `json:"stock"`
	IsActive         bool      `gorm:"not null;default:true" json:"is_active"`
	RepresentativeID uint      `gorm:"not null;index" json:"representative_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
