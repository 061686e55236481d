package models

import "time"

type Child struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FullName         string    `gorm:"size:255;index" json:"full_name"`
	BirthDate        time.Time `gorm:"type:date" json:"birth_date"`
	Country          string    `gorm:"size:100" json:"country"`
	RepresentativeID uint      `gorm:"not null;index" json:"representative_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
