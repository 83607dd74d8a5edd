package memory

import (
	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/internal/domain/repository"
)

type CartRepository struct {
	t *Table[entity.CartItem]
}

func (r *CartRepository) ListByUser(userID int64) []entity.CartItem {
	return r.t.Filter(func(c entity.CartItem) bool { return c.UserID == userID })
}

func (r *CartRepository) Get(id int64) (entity.CartItem, bool) {
	return r.t.Get(id)
}

func (r *CartRepository) Find(userID, productID int64) (entity.CartItem, bool) {
	return r.t.Find(sameLine(userID, productID))
}

// Add inserts a new row for (user, product) or, when one exists, adds the
// quantity to it and keeps its id.
func (r *CartRepository) Add(in entity.CartItemInput) (entity.CartItem, error) {
	if in.Quantity < 1 {
		return entity.CartItem{}, repository.ErrInvalidQuantity
	}
	item, _ := r.t.Upsert(
		sameLine(in.UserID, in.ProductID),
		func(c *entity.CartItem) { c.Quantity += in.Quantity },
		in.Build,
	)
	return item, nil
}

// SetQuantity overwrites the row's quantity. An unknown id reports false
// before the quantity is checked.
func (r *CartRepository) SetQuantity(id int64, quantity int) (entity.CartItem, bool, error) {
	return r.t.UpdateChecked(id, func(c *entity.CartItem, _ Rows[entity.CartItem]) error {
		if quantity < 1 {
			return repository.ErrInvalidQuantity
		}
		c.Quantity = quantity
		return nil
	})
}

func (r *CartRepository) Delete(id int64) bool {
	return r.t.Delete(id)
}

// Clear empties the user's cart and returns the number of rows removed.
func (r *CartRepository) Clear(userID int64) int {
	return r.t.DeleteWhere(func(c entity.CartItem) bool { return c.UserID == userID })
}

func sameLine(userID, productID int64) func(entity.CartItem) bool {
	return func(c entity.CartItem) bool { return c.UserID == userID && c.ProductID == productID }
}
