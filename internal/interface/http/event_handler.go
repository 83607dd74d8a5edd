package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/pkg/response"
)

// EventHandler serves events and everything keyed by an event id: team
// members, social accounts and the platform catalog they reference.
type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type eventQuery struct {
	UserID *int64 `form:"userId" binding:"omitempty,gt=0"`
}

type createEventRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
	OrganizerID int64   `json:"organizerId" binding:"required,gt=0"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
}

type updateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	OrganizerID *int64  `json:"organizerId" binding:"omitempty,gt=0"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
}

type createTeamMemberRequest struct {
	UserID      int64    `json:"userId" binding:"required,gt=0"`
	EventID     int64    `json:"eventId" binding:"required,gt=0"`
	Role        string   `json:"role" binding:"required"`
	Permissions []string `json:"permissions"`
}

type updateTeamMemberRequest struct {
	UserID      *int64   `json:"userId" binding:"omitempty,gt=0"`
	EventID     *int64   `json:"eventId" binding:"omitempty,gt=0"`
	Role        *string  `json:"role" binding:"omitempty,min=1"`
	Permissions []string `json:"permissions"`
}

type platformRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Icon        *string `json:"icon"`
	APIEndpoint *string `json:"apiEndpoint" binding:"omitempty,url"`
	Active      *bool   `json:"active"`
}

type createAccountRequest struct {
	EventID       int64   `json:"eventId" binding:"required,gt=0"`
	PlatformID    int64   `json:"platformId" binding:"required,gt=0"`
	AccountName   string  `json:"accountName" binding:"required"`
	AccountHandle string  `json:"accountHandle" binding:"required"`
	AccessToken   *string `json:"accessToken"`
	RefreshToken  *string `json:"refreshToken"`
	TokenExpiry   *string `json:"tokenExpiry"`
	Active        *bool   `json:"active"`
}

type updateAccountRequest struct {
	EventID       *int64  `json:"eventId" binding:"omitempty,gt=0"`
	PlatformID    *int64  `json:"platformId" binding:"omitempty,gt=0"`
	AccountName   *string `json:"accountName" binding:"omitempty,min=1"`
	AccountHandle *string `json:"accountHandle" binding:"omitempty,min=1"`
	AccessToken   *string `json:"accessToken"`
	RefreshToken  *string `json:"refreshToken"`
	TokenExpiry   *string `json:"tokenExpiry"`
	Active        *bool   `json:"active"`
}

func (h *EventHandler) List(c *gin.Context) {
	var q eventQuery
	if !bindQuery(c, &q) {
		return
	}
	response.Success(c, http.StatusOK, h.Svc.ListEvents(q.UserID), "events", nil)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	e, err := h.Svc.GetEvent(id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "event", nil)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if !bindJSON(c, &req) {
		return
	}
	start, ok := parseOptionalTime(c, "startDate", &req.StartDate)
	if !ok {
		return
	}
	end, ok := parseOptionalTime(c, "endDate", &req.EndDate)
	if !ok {
		return
	}
	if end.Before(*start) {
		fieldError(c, "endDate", "must be at or after startDate")
		return
	}
	e := h.Svc.CreateEvent(entity.EventInput{
		Name:        req.Name,
		Description: req.Description,
		OrganizerID: req.OrganizerID,
		StartDate:   *start,
		EndDate:     *end,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	response.Success(c, http.StatusCreated, e, "event created", nil)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	var req updateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	var start, end *time.Time
	if start, ok = parseOptionalTime(c, "startDate", req.StartDate); !ok {
		return
	}
	if end, ok = parseOptionalTime(c, "endDate", req.EndDate); !ok {
		return
	}
	e, err := h.Svc.UpdateEvent(id, entity.EventPatch{
		Name:        req.Name,
		Description: req.Description,
		OrganizerID: req.OrganizerID,
		StartDate:   start,
		EndDate:     end,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "event updated", nil)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	if err := h.Svc.DeleteEvent(id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Event deleted successfully", nil)
}

func (h *EventHandler) ListTeam(c *gin.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.Svc.ListTeam(id), "team members", nil)
}

func (h *EventHandler) AddTeamMember(c *gin.Context) {
	var req createTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	m := h.Svc.AddTeamMember(entity.TeamMemberInput{
		UserID:      req.UserID,
		EventID:     req.EventID,
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	response.Success(c, http.StatusCreated, m, "team member added", nil)
}

func (h *EventHandler) UpdateTeamMember(c *gin.Context) {
	id, ok := pathID(c, "id", "team member")
	if !ok {
		return
	}
	var req updateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.Svc.UpdateTeamMember(id, entity.TeamMemberPatch{
		UserID:      req.UserID,
		EventID:     req.EventID,
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, m, "team member updated", nil)
}

func (h *EventHandler) RemoveTeamMember(c *gin.Context) {
	id, ok := pathID(c, "id", "team member")
	if !ok {
		return
	}
	if err := h.Svc.RemoveTeamMember(id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Team member removed successfully", nil)
}

func (h *EventHandler) ListPlatforms(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.ListPlatforms(), "social platforms", nil)
}

func (h *EventHandler) CreatePlatform(c *gin.Context) {
	var req platformRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Name == nil {
		fieldError(c, "name", "is required")
		return
	}
	p, err := h.Svc.CreatePlatform(entity.SocialPlatformInput{
		Name:        *req.Name,
		Icon:        req.Icon,
		APIEndpoint: req.APIEndpoint,
		Active:      req.Active,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "social platform created", nil)
}

func (h *EventHandler) UpdatePlatform(c *gin.Context) {
	id, ok := pathID(c, "id", "platform")
	if !ok {
		return
	}
	var req platformRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.UpdatePlatform(id, entity.SocialPlatformPatch{
		Name:        req.Name,
		Icon:        req.Icon,
		APIEndpoint: req.APIEndpoint,
		Active:      req.Active,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "social platform updated", nil)
}

func (h *EventHandler) ListAccounts(c *gin.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.Svc.ListAccounts(id), "social accounts", nil)
}

func (h *EventHandler) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	expiry, ok := parseOptionalTime(c, "tokenExpiry", req.TokenExpiry)
	if !ok {
		return
	}
	a := h.Svc.CreateAccount(entity.SocialAccountInput{
		EventID:       req.EventID,
		PlatformID:    req.PlatformID,
		AccountName:   req.AccountName,
		AccountHandle: req.AccountHandle,
		AccessToken:   req.AccessToken,
		RefreshToken:  req.RefreshToken,
		TokenExpiry:   expiry,
		Active:        req.Active,
	})
	response.Success(c, http.StatusCreated, a, "social account added", nil)
}

func (h *EventHandler) UpdateAccount(c *gin.Context) {
	id, ok := pathID(c, "id", "account")
	if !ok {
		return
	}
	var req updateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	expiry, ok := parseOptionalTime(c, "tokenExpiry", req.TokenExpiry)
	if !ok {
		return
	}
	a, err := h.Svc.UpdateAccount(id, entity.SocialAccountPatch{
		EventID:       req.EventID,
		PlatformID:    req.PlatformID,
		AccountName:   req.AccountName,
		AccountHandle: req.AccountHandle,
		AccessToken:   req.AccessToken,
		RefreshToken:  req.RefreshToken,
		TokenExpiry:   expiry,
		Active:        req.Active,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, a, "social account updated", nil)
}

func (h *EventHandler) DeleteAccount(c *gin.Context) {
	id, ok := pathID(c, "id", "account")
	if !ok {
		return
	}
	if err := h.Svc.DeleteAccount(id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Social account deleted successfully", nil)
}
