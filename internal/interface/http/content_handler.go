package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/pkg/nullable"
	"github.com/oksasatya/gudimart-store/pkg/response"
)

// ContentHandler serves content posts, their approvals and the event
// calendar.
type ContentHandler struct {
	Svc    *application.ContentService
	Logger *logrus.Logger
}

func NewContentHandler(svc *application.ContentService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{Svc: svc, Logger: logger}
}

type postQuery struct {
	EventID    *int64  `form:"eventId" binding:"omitempty,gt=0"`
	CreatorID  *int64  `form:"creatorId" binding:"omitempty,gt=0"`
	Status     *string `form:"status" binding:"omitempty,poststatus"`
	StartDate  *string `form:"startDate"`
	EndDate    *string `form:"endDate"`
	Platform   *int64  `form:"platform" binding:"omitempty,gt=0"`
	Tag        *string `form:"tag"`
	SearchTerm string  `form:"searchTerm"`
	SortBy     string  `form:"sortBy" binding:"omitempty,postsort"`
}

type createPostRequest struct {
	EventID      int64              `json:"eventId" binding:"required,gt=0"`
	CreatorID    int64              `json:"creatorId" binding:"required,gt=0"`
	Title        string             `json:"title" binding:"required,max=200"`
	Content      string             `json:"content" binding:"required"`
	MediaURLs    []string           `json:"mediaUrls" binding:"omitempty,dive,url"`
	Status       string             `json:"status" binding:"omitempty,poststatus"`
	ScheduledFor *string            `json:"scheduledFor"`
	PublishedAt  *string            `json:"publishedAt"`
	Platforms    []int64            `json:"platforms" binding:"omitempty,dive,gt=0"`
	Tags         []string           `json:"tags"`
	Metrics      map[string]float64 `json:"metrics"`
}

// updatePostRequest tells an absent scheduledFor or publishedAt from an
// explicit null, which clears it.
type updatePostRequest struct {
	EventID      *int64                 `json:"eventId" binding:"omitempty,gt=0"`
	CreatorID    *int64                 `json:"creatorId" binding:"omitempty,gt=0"`
	Title        *string                `json:"title" binding:"omitempty,min=1,max=200"`
	Content      *string                `json:"content"`
	MediaURLs    []string               `json:"mediaUrls" binding:"omitempty,dive,url"`
	Status       *string                `json:"status" binding:"omitempty,poststatus"`
	ScheduledFor nullable.Field[string] `json:"scheduledFor"`
	PublishedAt  nullable.Field[string] `json:"publishedAt"`
	Platforms    []int64                `json:"platforms" binding:"omitempty,dive,gt=0"`
	Tags         []string               `json:"tags"`
	Metrics      map[string]float64     `json:"metrics"`
}

type approvalRequest struct {
	PostID     int64   `json:"postId" binding:"required,gt=0"`
	ApproverID int64   `json:"approverId" binding:"required,gt=0"`
	Status     string  `json:"status" binding:"required,approvalstatus"`
	Comments   *string `json:"comments"`
}

type calendarQuery struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=1,max=9999"`
}

type createEntryRequest struct {
	EventID     int64   `json:"eventId" binding:"required,gt=0"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Type        string  `json:"type" binding:"required,entrytype"`
	Date        string  `json:"date" binding:"required"`
	Time        *string `json:"time" binding:"omitempty,clock"`
	PostID      *int64  `json:"postId" binding:"omitempty,gt=0"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

type updateEntryRequest struct {
	EventID     *int64                 `json:"eventId" binding:"omitempty,gt=0"`
	Title       *string                `json:"title" binding:"omitempty,min=1"`
	Description nullable.Field[string] `json:"description"`
	Type        *string                `json:"type" binding:"omitempty,entrytype"`
	Date        *string                `json:"date"`
	Time        nullable.Field[string] `json:"time" binding:"omitempty,clock"`
	PostID      nullable.Field[int64]  `json:"postId" binding:"omitempty,gt=0"`
	Color       nullable.Field[string] `json:"color" binding:"omitempty,hexcolor"`
}

func (h *ContentHandler) ListPosts(c *gin.Context) {
	var q postQuery
	if !bindQuery(c, &q) {
		return
	}
	start, ok := parseOptionalTime(c, "startDate", q.StartDate)
	if !ok {
		return
	}
	end, ok := parseOptionalTime(c, "endDate", q.EndDate)
	if !ok {
		return
	}
	f := entity.ContentPostFilter{
		EventID:    q.EventID,
		CreatorID:  q.CreatorID,
		StartDate:  start,
		EndDate:    end,
		Platform:   q.Platform,
		Tag:        q.Tag,
		SearchTerm: q.SearchTerm,
		SortBy:     entity.PostSort(q.SortBy),
	}
	if q.Status != nil {
		st := entity.PostStatus(*q.Status)
		f.Status = &st
	}
	posts := h.Svc.ListPosts(f)
	response.List(c, posts, "content posts")
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id", "post")
	if !ok {
		return
	}
	p, err := h.Svc.GetPost(id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "content post", nil)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if !bindJSON(c, &req) {
		return
	}
	scheduled, ok := parseOptionalTime(c, "scheduledFor", req.ScheduledFor)
	if !ok {
		return
	}
	published, ok := parseOptionalTime(c, "publishedAt", req.PublishedAt)
	if !ok {
		return
	}
	p := h.Svc.CreatePost(entity.ContentPostInput{
		EventID:      req.EventID,
		CreatorID:    req.CreatorID,
		Title:        req.Title,
		Content:      req.Content,
		MediaURLs:    req.MediaURLs,
		Status:       entity.PostStatus(req.Status),
		ScheduledFor: scheduled,
		PublishedAt:  published,
		Platforms:    req.Platforms,
		Tags:         req.Tags,
		Metrics:      req.Metrics,
	})
	response.Success(c, http.StatusCreated, p, "content post created", nil)
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id", "post")
	if !ok {
		return
	}
	var req updatePostRequest
	if !bindJSON(c, &req) {
		return
	}
	scheduled, ok := parseTimeField(c, "scheduledFor", req.ScheduledFor)
	if !ok {
		return
	}
	published, ok := parseTimeField(c, "publishedAt", req.PublishedAt)
	if !ok {
		return
	}
	patch := entity.ContentPostPatch{
		EventID:      req.EventID,
		CreatorID:    req.CreatorID,
		Title:        req.Title,
		Content:      req.Content,
		MediaURLs:    req.MediaURLs,
		ScheduledFor: scheduled,
		PublishedAt:  published,
		Platforms:    req.Platforms,
		Tags:         req.Tags,
		Metrics:      req.Metrics,
	}
	if req.Status != nil {
		st := entity.PostStatus(*req.Status)
		patch.Status = &st
	}
	p, err := h.Svc.UpdatePost(id, patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "content post updated", nil)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id", "post")
	if !ok {
		return
	}
	if err := h.Svc.DeletePost(id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Content post deleted successfully", nil)
}

func (h *ContentHandler) ListApprovals(c *gin.Context) {
	id, ok := pathID(c, "id", "post")
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.Svc.ListApprovals(id), "content approvals", nil)
}

func (h *ContentHandler) CreateApproval(c *gin.Context) {
	var req approvalRequest
	if !bindJSON(c, &req) {
		return
	}
	a := h.Svc.RecordApproval(entity.ContentApprovalInput{
		PostID:     req.PostID,
		ApproverID: req.ApproverID,
		Status:     entity.ApprovalStatus(req.Status),
		Comments:   req.Comments,
	})
	response.Success(c, http.StatusCreated, a, "content approval recorded", nil)
}

// ListCalendar filters by month only when both month and year are given.
func (h *ContentHandler) ListCalendar(c *gin.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	var q calendarQuery
	if !bindQuery(c, &q) {
		return
	}
	var month *entity.CalendarMonth
	if q.Month != nil && q.Year != nil {
		month = &entity.CalendarMonth{Year: *q.Year, Month: time.Month(*q.Month)}
	}
	response.Success(c, http.StatusOK, h.Svc.ListCalendar(id, month), "calendar entries", nil)
}

func (h *ContentHandler) CreateCalendarEntry(c *gin.Context) {
	var req createEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		fieldError(c, "date", "must be a valid date")
		return
	}
	e := h.Svc.CreateCalendarEntry(entity.CalendarEntryInput{
		EventID:     req.EventID,
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.EntryType(req.Type),
		Date:        date,
		Time:        req.Time,
		PostID:      req.PostID,
		Color:       req.Color,
	})
	response.Success(c, http.StatusCreated, e, "calendar entry created", nil)
}

func (h *ContentHandler) UpdateCalendarEntry(c *gin.Context) {
	id, ok := pathID(c, "id", "entry")
	if !ok {
		return
	}
	var req updateEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	patch := entity.CalendarEntryPatch{
		EventID:     req.EventID,
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
		PostID:      req.PostID,
		Color:       req.Color,
	}
	if req.Type != nil {
		t := entity.EntryType(*req.Type)
		patch.Type = &t
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			fieldError(c, "date", "must be a valid date")
			return
		}
		patch.Date = &d
	}
	e, err := h.Svc.UpdateCalendarEntry(id, patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "calendar entry updated", nil)
}

func (h *ContentHandler) DeleteCalendarEntry(c *gin.Context) {
	id, ok := pathID(c, "id", "entry")
	if !ok {
		return
	}
	if err := h.Svc.DeleteCalendarEntry(id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Calendar entry deleted successfully", nil)
}
