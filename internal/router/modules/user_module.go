package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/gudimart-store/internal/interface/http"
	"github.com/oksasatya/gudimart-store/internal/interface/middleware"
)

// UserModule wires account routes
// POST /api/users, GET /api/users/:id, PUT /api/users/:id, GET /api/users/:id/teams
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.Redis, middleware.Limit{Max: 10, Window: time.Minute, Key: middleware.KeyByIP()})

	rg.POST("/users", signupLimiter, m.Handler.Register)
	rg.GET("/users/:id", m.Handler.Get)
	rg.PUT("/users/:id", m.Handler.Update)
	rg.GET("/users/:id/teams", m.Handler.Teams)
}
