package entity

// CartItem is one product line in a user's cart. A user holds at most one
// row per product; adding the same product again grows Quantity.
type CartItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CartItemInput struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

// CartLine is a cart row with its product attached. Product is nil when the
// product has been deleted since the row was added.
type CartLine struct {
	CartItem
	Product *Product `json:"product,omitempty"`
}

func (in CartItemInput) Build(id int64) CartItem {
	return CartItem{ID: id, UserID: in.UserID, ProductID: in.ProductID, Quantity: in.Quantity}
}

func (c CartItem) Clone() CartItem { return c }
