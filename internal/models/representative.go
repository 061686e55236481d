package models

import "time"

// Representative is the guardian account. Email is the login identity.
type Representative struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"size:255;index" json:"full_name"`
	BirthDate      time.Time `gorm:"type:date" json:"birth_date"`
	Country        string    `gorm:"size:100" json:"country"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone          *string   `gorm:"size:32" json:"phone"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Children    []Child      `gorm:"foreignKey:RepresentativeID" json:"-"`
	Products    []Product    `gorm:"foreignKey:RepresentativeID" json:"-"`
	Invitations []Invitation `gorm:"foreignKey:SenderID" json:"-"`
}
