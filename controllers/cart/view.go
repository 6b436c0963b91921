package cartcontroller

import (
	"github.com/abdullinilgiz/shop-api/models"
	"gorm.io/gorm"
)

// cartItemRow is the projection of the items ⋈ cart_items join used to build
// cart views.
type cartItemRow struct {
	ID       uint
	Name     string
	Deleted  bool
	Quantity int
}

// buildCartView reshapes a cart and its association rows into the response
// form. Soft-deleted items stay listed with available=false; they are only
// blocked from being newly added.
func buildCartView(db *gorm.DB, cart *models.Cart) (models.CartView, error) {
	var rows []cartItemRow
	err := db.Table("cart_items").
		Select("items.id, items.name, items.deleted, cart_items.quantity").
		Joins("JOIN items ON items.id = cart_items.item_id").
		Where("cart_items.cart_id = ?", cart.ID).
		Order("items.id ASC").
		Scan(&rows).Error
	if err != nil {
		return models.CartView{}, err
	}

	items := make([]models.ItemInCart, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.ItemInCart{
			ID:        row.ID,
			Name:      row.Name,
			Quantity:  row.Quantity,
			Available: !row.Deleted,
		})
	}

	return models.CartView{
		ID:       cart.ID,
		Items:    items,
		Price:    cart.Price,
		Quantity: cart.Quantity,
	}, nil
}
