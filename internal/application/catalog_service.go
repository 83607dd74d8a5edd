package application

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	repo "github.com/oksasatya/gudimart-store/internal/domain/repository"
)

type CatalogService struct {
	Categories repo.CategoryRepository
	Products   repo.ProductRepository
	Logger     *logrus.Logger
}

func NewCatalogService(categories repo.CategoryRepository, products repo.ProductRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Categories: categories, Products: products, Logger: logger}
}

func (s *CatalogService) ListCategories() []entity.Category {
	return s.Categories.List()
}

func (s *CatalogService) GetCategory(id int64) (entity.Category, error) {
	c, ok := s.Categories.Get(id)
	if !ok {
		return entity.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (s *CatalogService) CreateCategory(in entity.CategoryInput) entity.Category {
	return s.Categories.Create(in)
}

// ListProducts runs the product filter. A zero filter lists everything in
// insertion order.
func (s *CatalogService) ListProducts(f entity.ProductFilter) []entity.Product {
	return s.Products.List(f)
}

func (s *CatalogService) ListProductsByCategory(categoryID int64) []entity.Product {
	return s.Products.ListByCategory(categoryID)
}

func (s *CatalogService) GetProduct(id int64) (entity.Product, error) {
	p, ok := s.Products.Get(id)
	if !ok {
		return entity.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(in entity.ProductInput) entity.Product {
	p := s.Products.Create(in)
	if s.Logger != nil {
		s.Logger.WithField("product_id", p.ID).Debug("product created")
	}
	return p
}

func (s *CatalogService) UpdateProduct(id int64, patch entity.ProductPatch) (entity.Product, error) {
	p, ok := s.Products.Update(id, patch)
	if !ok {
		return entity.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(id int64) error {
	if !s.Products.Delete(id) {
		return ErrProductNotFound
	}
	return nil
}
