package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

type CategoryRepository interface {
	List() []entity.Category
	Get(id int64) (entity.Category, bool)
	Create(in entity.CategoryInput) entity.Category
}

// ProductRepository lists products through the product filter engine.
// A zero filter returns every product in insertion order.
type ProductRepository interface {
	List(f entity.ProductFilter) []entity.Product
	ListByCategory(categoryID int64) []entity.Product
	Get(id int64) (entity.Product, bool)
	Create(in entity.ProductInput) entity.Product
	Update(id int64, p entity.ProductPatch) (entity.Product, bool)
	Delete(id int64) bool
}
