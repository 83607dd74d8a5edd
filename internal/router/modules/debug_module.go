package modules

import (
	"expvar"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/gudimart-store/internal/interface/middleware"
)

var (
	publishTables sync.Once
	tableCounts   atomic.Pointer[func() map[string]int]
)

// DebugModule serves expvar, including a "tables" var with the row count of
// every in-memory table.
type DebugModule struct {
	Redis *redis.Client
}

func NewDebugModule(rdb *redis.Client, counts func() map[string]int) *DebugModule {
	tableCounts.Store(&counts)
	publishTables.Do(func() {
		expvar.Publish("tables", expvar.Func(func() any {
			if f := tableCounts.Load(); f != nil {
				return (*f)()
			}
			return nil
		}))
	})
	return &DebugModule{Redis: rdb}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, middleware.Limit{Max: 120, Window: time.Minute, Key: middleware.KeyByIP()})
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
