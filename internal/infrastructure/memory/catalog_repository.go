package memory

import (
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
)

type CategoryRepository struct {
	t *Table[entity.Category]
}

func (r *CategoryRepository) List() []entity.Category {
	return r.t.Scan()
}

func (r *CategoryRepository) Get(id int64) (entity.Category, bool) {
	return r.t.Get(id)
}

func (r *CategoryRepository) Create(in entity.CategoryInput) entity.Category {
	return r.t.Insert(in.Build)
}

type ProductRepository struct {
	t   *Table[entity.Product]
	now func() time.Time
}

func (r *ProductRepository) List(f entity.ProductFilter) []entity.Product {
	return filterProducts(r.t.Scan(), f)
}

func (r *ProductRepository) ListByCategory(categoryID int64) []entity.Product {
	return r.t.Filter(func(p entity.Product) bool { return p.CategoryID == categoryID })
}

func (r *ProductRepository) Get(id int64) (entity.Product, bool) {
	return r.t.Get(id)
}

func (r *ProductRepository) Create(in entity.ProductInput) entity.Product {
	return r.t.Insert(func(id int64) entity.Product { return in.Build(id, r.now()) })
}

func (r *ProductRepository) Update(id int64, p entity.ProductPatch) (entity.Product, bool) {
	return r.t.Update(id, p.Apply)
}

func (r *ProductRepository) Delete(id int64) bool {
	return r.t.Delete(id)
}
