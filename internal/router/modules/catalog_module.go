package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/gudimart-store/internal/interface/http"
)

// CatalogModule exposes read-only category and product routes.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.ListCategories)
	rg.GET("/categories/:id", m.Handler.GetCategory)

	rg.GET("/products", m.Handler.ListProducts)
	rg.GET("/products/:id", m.Handler.GetProduct)
	rg.GET("/products/category/:categoryId", m.Handler.ListByCategory)
}
