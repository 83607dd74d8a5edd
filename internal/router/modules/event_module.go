package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/gudimart-store/internal/interface/http"
)

// EventModule wires events, team members, social platforms and social
// accounts. Routes nested under an event use :id for the event id since
// gin allows one wildcard name per segment.
type EventModule struct {
	Handler *handlers.EventHandler
}

func NewEventModule(h *handlers.EventHandler) *EventModule {
	return &EventModule{Handler: h}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	rg.GET("/events", m.Handler.List)
	rg.POST("/events", m.Handler.Create)
	rg.GET("/events/:id", m.Handler.Get)
	rg.PUT("/events/:id", m.Handler.Update)
	rg.DELETE("/events/:id", m.Handler.Delete)

	rg.GET("/events/:id/team", m.Handler.ListTeam)
	rg.POST("/team-members", m.Handler.AddTeamMember)
	rg.PUT("/team-members/:id", m.Handler.UpdateTeamMember)
	rg.DELETE("/team-members/:id", m.Handler.RemoveTeamMember)

	rg.GET("/social-platforms", m.Handler.ListPlatforms)
	rg.POST("/social-platforms", m.Handler.CreatePlatform)
	rg.PUT("/social-platforms/:id", m.Handler.UpdatePlatform)

	rg.GET("/events/:id/social-accounts", m.Handler.ListAccounts)
	rg.POST("/social-accounts", m.Handler.CreateAccount)
	rg.PUT("/social-accounts/:id", m.Handler.UpdateAccount)
	rg.DELETE("/social-accounts/:id", m.Handler.DeleteAccount)
}
