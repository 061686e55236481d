package models

import "time"

// Invitation is a one-time referral code. Once IsUsed is set, UsedAt is
// populated and the row never goes back to unused.
type Invitation struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"size:64;not null;uniqueIndex" json:"code"`
	IsUsed    bool       `gorm:"not null;default:false;index" json:"is_used"`
	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at"`
	SenderID  uint       `gorm:"not null;index" json:"sender_id"`

	Sender *Representative `gorm:"foreignKey:SenderID" json:"-"`
}
