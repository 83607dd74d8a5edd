package application

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	repo "github.com/oksasatya/gudimart-store/internal/domain/repository"
)

type CartService struct {
	Cart     repo.CartRepository
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewCartService(cart repo.CartRepository, products repo.ProductRepository, logger *logrus.Logger) *CartService {
	return &CartService{Cart: cart, Products: products, Logger: logger}
}

// List returns the user's cart with each row's product attached.
func (s *CartService) List(userID int64) []entity.CartLine {
	return AttachProducts(s.Cart.ListByUser(userID), s.Products.Get)
}

// Add puts a product in the user's cart. Adding a product that is already
// there grows the existing row instead of creating a second one.
func (s *CartService) Add(in entity.CartItemInput) (entity.CartLine, error) {
	item, err := s.Cart.Add(in)
	if err != nil {
		return entity.CartLine{}, err
	}
	return attachProduct(item, s.Products.Get), nil
}

// SetQuantity overwrites the quantity of one cart row.
func (s *CartService) SetQuantity(id int64, quantity int) (entity.CartLine, error) {
	item, ok, err := s.Cart.SetQuantity(id, quantity)
	if !ok {
		return entity.CartLine{}, ErrCartItemNotFound
	}
	if err != nil {
		return entity.CartLine{}, err
	}
	return attachProduct(item, s.Products.Get), nil
}

func (s *CartService) Remove(id int64) error {
	if !s.Cart.Delete(id) {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear empties the user's cart and reports how many rows went away.
func (s *CartService) Clear(userID int64) int {
	n := s.Cart.Clear(userID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "removed": n}).Debug("cart cleared")
	}
	return n
}
