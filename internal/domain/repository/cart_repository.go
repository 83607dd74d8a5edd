package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

// CartRepository keeps at most one row per (user, product). Add merges into
// an existing row by summing quantities; SetQuantity overwrites it.
type CartRepository interface {
	ListByUser(userID int64) []entity.CartItem
	Get(id int64) (entity.CartItem, bool)
	Find(userID, productID int64) (entity.CartItem, bool)
	Add(in entity.CartItemInput) (entity.CartItem, error)
	SetQuantity(id int64, quantity int) (entity.CartItem, bool, error)
	Delete(id int64) bool
	Clear(userID int64) int
}
