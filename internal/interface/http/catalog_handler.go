package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/pkg/response"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

type productQuery struct {
	CategoryID *int64   `form:"categoryId" binding:"omitempty,gt=0"`
	MinPrice   *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice   *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	Brand      []string `form:"brand"`
	Rating     *float64 `form:"rating" binding:"omitempty,gte=0,lte=5"`
	InStock    *bool    `form:"inStock"`
	SearchTerm string   `form:"searchTerm"`
	SortBy     string   `form:"sortBy" binding:"omitempty,productsort"`
}

func (q productQuery) filter() entity.ProductFilter {
	return entity.ProductFilter{
		CategoryID: q.CategoryID,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Brands:     q.Brand,
		MinRating:  q.Rating,
		InStock:    q.InStock,
		SearchTerm: q.SearchTerm,
		SortBy:     entity.ProductSort(q.SortBy),
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.ListCategories(), "categories", nil)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}
	cat, err := h.Svc.GetCategory(id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category", nil)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q productQuery
	if !bindQuery(c, &q) {
		return
	}
	products := h.Svc.ListProducts(q.filter())
	response.List(c, products, "products")
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id", "product")
	if !ok {
		return
	}
	p, err := h.Svc.GetProduct(id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}

func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	id, ok := pathID(c, "categoryId", "category")
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.Svc.ListProductsByCategory(id), "products", nil)
}
