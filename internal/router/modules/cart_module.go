package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/gudimart-store/internal/interface/http"
)

type CartModule struct {
	Handler *handlers.CartHandler
}

func NewCartModule(h *handlers.CartHandler) *CartModule {
	return &CartModule{Handler: h}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	rg.GET("/cart/:userId", m.Handler.List)
	rg.POST("/cart", m.Handler.Add)
	rg.PUT("/cart/:id", m.Handler.Update)
	rg.DELETE("/cart/:id", m.Handler.Remove)
	rg.DELETE("/cart/user/:userId", m.Handler.Clear)
}
