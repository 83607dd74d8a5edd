package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/gudimart-store/pkg/response"
)

const rateKeyPrefix = "gudimart:rl:"

// KeyFunc names the bucket a request is counted in.
type KeyFunc func(c *gin.Context) string

// AllowFunc reports whether a request skips limiting entirely.
type AllowFunc func(c *gin.Context) bool

// Limit is a fixed-window budget: at most Max requests per Window for each
// key Key produces.
type Limit struct {
	Max    int
	Window time.Duration
	Key    KeyFunc
	Allow  AllowFunc
}

func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return rateKeyPrefix + "ip:" + ipFromCtx(c)
	}
}

// KeyByIPAndPath gives every route its own budget. The route pattern is used
// so /users/1 and /users/2 share a bucket.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		return rateKeyPrefix + "path:" + path + ":ip:" + ipFromCtx(c)
	}
}

// hitScript bumps the window counter, arms its expiry on the first hit and
// returns {count, remaining ms}.
var hitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("PTTL", KEYS[1])}
`)

// RateLimit enforces l with counters kept in Redis. Without a client, or
// with an incomplete Limit, it lets everything through. Redis errors fail
// open.
func RateLimit(rdb *redis.Client, l Limit) gin.HandlerFunc {
	if rdb == nil || l.Max <= 0 || l.Window <= 0 || l.Key == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || (l.Allow != nil && l.Allow(c)) {
			c.Next()
			return
		}

		res, err := hitScript.Run(c.Request.Context(), rdb, []string{l.Key(c)}, l.Window.Milliseconds()).Int64Slice()
		if err != nil || len(res) != 2 {
			c.Next()
			return
		}
		count, reset := res[0], time.Duration(max(res[1], 0))*time.Millisecond
		resetSec := strconv.Itoa(int(reset.Round(time.Second) / time.Second))

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.Max))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(int64(l.Max)-count, 0), 10))
		c.Header("X-RateLimit-Reset", resetSec)

		if count > int64(l.Max) {
			c.Header("Retry-After", resetSec)
			response.Error[any](c, http.StatusTooManyRequests, "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
