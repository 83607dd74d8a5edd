package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/config"
	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/infrastructure/memory"
	"github.com/oksasatya/gudimart-store/pkg/helpers"
)

// Container carries the process-wide components main builds once, so the
// router can wire modules from them. Optional backends are nil when they
// are switched off.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  *memory.Store

	Redis  *redis.Client            // rate limiting
	Rabbit *helpers.RabbitPublisher // content notifications
	AI     application.Completer    // chat and content generation
}

// Publisher returns the notification publisher, or nil when notifications
// are off. A nil *RabbitPublisher must not leak into the interface.
func (c *Container) Publisher() application.Publisher {
	if c.Rabbit == nil {
		return nil
	}
	return c.Rabbit
}
