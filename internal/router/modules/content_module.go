package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/gudimart-store/internal/interface/http"
	"github.com/oksasatya/gudimart-store/internal/interface/middleware"
)

// ContentModule wires content posts, approvals, the event calendar and AI
// content generation.
type ContentModule struct {
	Content    *handlers.ContentHandler
	Generation *handlers.GenerationHandler
	Redis      *redis.Client
}

func NewContentModule(content *handlers.ContentHandler, gen *handlers.GenerationHandler, rdb *redis.Client) *ContentModule {
	return &ContentModule{Content: content, Generation: gen, Redis: rdb}
}

func (m *ContentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/content-posts", m.Content.ListPosts)
	rg.POST("/content-posts", m.Content.CreatePost)
	rg.GET("/content-posts/:id", m.Content.GetPost)
	rg.PUT("/content-posts/:id", m.Content.UpdatePost)
	rg.DELETE("/content-posts/:id", m.Content.DeletePost)

	rg.GET("/content-posts/:id/approvals", m.Content.ListApprovals)
	rg.POST("/content-approvals", m.Content.CreateApproval)

	rg.GET("/events/:id/calendar", m.Content.ListCalendar)
	rg.POST("/calendar-entries", m.Content.CreateCalendarEntry)
	rg.PUT("/calendar-entries/:id", m.Content.UpdateCalendarEntry)
	rg.DELETE("/calendar-entries/:id", m.Content.DeleteCalendarEntry)

	genLimiter := middleware.RateLimit(m.Redis, middleware.Limit{
		Max: 10, Window: time.Minute, Key: middleware.KeyByIPAndPath(), Allow: middleware.AllowPrivateIP(),
	})
	rg.POST("/ai/generate-content", genLimiter, m.Generation.Generate)
}
