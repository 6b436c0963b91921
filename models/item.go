package models

// Item is a catalog entry. Items are never physically removed: Deleted marks
// them unavailable while keeping existing cart references readable.
type Item struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"not null;index" json:"name"`
	Price   float64 `gorm:"not null" json:"price"`
	Deleted bool    `gorm:"not null;default:false" json:"deleted"`
}
