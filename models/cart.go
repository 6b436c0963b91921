package models

// Cart carries denormalized totals. Price and Quantity are accumulators
// maintained alongside every CartItem mutation, not recomputed from the
// association rows — an item price change after the fact does not move the
// totals that were accumulated at add time.
type Cart struct {
	ID       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Price    float64    `gorm:"not null;default:0" json:"price"`
	Quantity int        `gorm:"not null;default:0" json:"quantity"`
	Items    []CartItem `gorm:"foreignKey:CartID" json:"-"`
}

// CartItem links a cart to an item and carries the per-pair quantity.
// At most one row exists per (CartID, ItemID); the add handler upserts
// instead of inserting duplicates.
type CartItem struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID   uint `gorm:"index;not null" json:"cart_id"`
	ItemID   uint `gorm:"not null" json:"item_id"`
	Quantity int  `gorm:"not null" json:"quantity"`
}

// ItemInCart is the read shape for an item inside a cart view. Available is
// the inverse of the item's deleted flag at read time.
type ItemInCart struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}

// CartView is the assembled cart-with-items response.
type CartView struct {
	ID       uint         `json:"id"`
	Items    []ItemInCart `json:"items"`
	Price    float64      `json:"price"`
	Quantity int          `json:"quantity"`
}
