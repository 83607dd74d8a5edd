package router

import (
	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/container"
	handlers "github.com/oksasatya/gudimart-store/internal/interface/http"
	"github.com/oksasatya/gudimart-store/internal/router/modules"
)

// InitModules builds services and handlers over the container's store and
// registers every feature module. Call it once during startup.
func InitModules(r *Registry, c *container.Container) {
	s, log := c.Store, c.Logger
	cfg := c.Config

	catalog := application.NewCatalogService(s.Categories, s.Products, log)
	cart := application.NewCartService(s.Cart, s.Products, log)
	chat := application.NewChatService(s.Chat, c.AI, log, cfg.ChatMaxTokens, cfg.AITimeout)
	users := application.NewUserService(s.Users, s.TeamMembers, log)
	events := application.NewEventService(s.Events, s.TeamMembers, s.SocialPlatforms, s.SocialAccounts, log)
	content := application.NewContentService(s.ContentPosts, s.ContentApprovals, s.Calendar, s.SocialPlatforms, c.Publisher(), log)
	gen := application.NewGenerationService(s.Events, s.SocialPlatforms, c.AI, log, cfg.ContentMaxTokens, cfg.AITimeout)

	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(catalog, log)))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cart, log)))
	r.Add(modules.NewChatModule(handlers.NewChatHandler(chat, log), c.Redis))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(users, log), c.Redis))
	r.Add(modules.NewEventModule(handlers.NewEventHandler(events, log)))
	r.Add(modules.NewContentModule(handlers.NewContentHandler(content, log), handlers.NewGenerationHandler(gen, log), c.Redis))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis, s.Counts))
	}
}
