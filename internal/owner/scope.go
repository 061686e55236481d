package owner

import "gorm.io/gorm"

// Scope returns a GORM scope that restricts rows to one representative.
// column is the foreign key naming the owner on the queried table.
func Scope(column string, representativeID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", representativeID)
	}
}

// ForRepresentative scopes child and product rows.
func ForRepresentative(representativeID uint) func(db *gorm.DB) *gorm.DB {
	return Scope("representative_id", representativeID)
}

// ForSender scopes invitation rows.
func ForSender(representativeID uint) func(db *gorm.DB) *gorm.DB {
	return Scope("sender_id", representativeID)
}
