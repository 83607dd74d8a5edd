package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/gudimart-store/internal/interface/http"
	"github.com/oksasatya/gudimart-store/internal/interface/middleware"
)

// ChatModule wires the shopping assistant. Sending is rate-limited per IP
// because every message costs a completion call.
type ChatModule struct {
	Handler *handlers.ChatHandler
	Redis   *redis.Client
}

func NewChatModule(h *handlers.ChatHandler, rdb *redis.Client) *ChatModule {
	return &ChatModule{Handler: h, Redis: rdb}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	sendLimiter := middleware.RateLimit(m.Redis, middleware.Limit{
		Max: 20, Window: time.Minute, Key: middleware.KeyByIPAndPath(), Allow: middleware.AllowPrivateIP(),
	})

	rg.GET("/chat/:userId", m.Handler.History)
	rg.POST("/chat", sendLimiter, m.Handler.Send)
}
