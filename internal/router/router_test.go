package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/gudimart-store/config"
	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/container"
	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/internal/infrastructure/memory"
	"github.com/oksasatya/gudimart-store/pkg/response"
	"github.com/oksasatya/gudimart-store/pkg/validation"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(context.Context, string, []application.Turn, int) (string, error) {
	return s.reply, s.err
}

type testServer struct {
	engine *gin.Engine
	store  *memory.Store
	ai     *stubCompleter
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	store := memory.NewStore()
	require.NoError(t, memory.Seed(store))
	ai := &stubCompleter{reply: "Happy to help!"}
	logger, _ := logtest.NewNullLogger()
	c := &container.Container{
		Config: &config.Config{
			DebugMetricsEnabled: true,
			ChatMaxTokens:       250,
			ContentMaxTokens:    500,
			AITimeout:           time.Second,
		},
		Logger: logger,
		Store:  store,
		AI:     ai,
	}
	return &testServer{engine: NewEngine(c), store: store, ai: ai}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) response.APIResponse[T] {
	t.Helper()
	var out response.APIResponse[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Category](t, w).Data, 4)

	w = s.do(t, http.MethodGet, "/api/categories/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found", decode[any](t, w).Message)

	w = s.do(t, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product ID", decode[any](t, w).Message)

	w = s.do(t, http.MethodGet, "/api/products/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Smart Watch Ultra", decode[entity.Product](t, w).Data.Name)

	w = s.do(t, http.MethodGet, "/api/products/category/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Product](t, w).Data, 4)
}

func TestProductQuery(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/products?sortBy=cheapest", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[any](t, w).Error, "sortBy")

	w = s.do(t, http.MethodGet, "/api/products?minPrice=lots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/products?categoryId=1&sortBy=price_asc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decode[[]entity.Product](t, w).Data
	require.NotEmpty(t, products)
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].EffectivePrice(), products[i].EffectivePrice())
	}

	all := s.store.Products.List(entity.ProductFilter{})
	brand := all[0].Brand
	w = s.do(t, http.MethodGet, "/api/products?brand="+url.QueryEscape(brand)+"&brand=NoSuchBrand&inStock=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, p := range decode[[]entity.Product](t, w).Data {
		assert.Equal(t, brand, p.Brand)
		assert.True(t, p.InStock)
	}
}

func TestCartRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/cart", map[string]any{"userId": 1, "productId": 2, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode[entity.CartLine](t, w).Data

	w = s.do(t, http.MethodPost, "/api/cart", map[string]any{"userId": 1, "productId": 2, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	merged := decode[entity.CartLine](t, w).Data
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)

	w = s.do(t, http.MethodPost, "/api/cart", map[string]any{"userId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[any](t, w).Error, "productId")

	w = s.do(t, http.MethodGet, "/api/cart/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lines := decode[[]entity.CartLine](t, w).Data
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Product)
	assert.Equal(t, int64(2), lines[0].Product.ID)

	w = s.do(t, http.MethodPut, "/api/cart/"+itoa(first.ID), map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodPut, "/api/cart/"+itoa(first.ID), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodPut, "/api/cart/4242", map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, http.MethodPut, "/api/cart/"+itoa(first.ID), map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[entity.CartLine](t, w).Data.Quantity)

	w = s.do(t, http.MethodDelete, "/api/cart/"+itoa(first.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item removed from cart", decode[any](t, w).Message)
	w = s.do(t, http.MethodDelete, "/api/cart/"+itoa(first.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	s.do(t, http.MethodPost, "/api/cart", map[string]any{"userId": 1, "productId": 3})
	w = s.do(t, http.MethodDelete, "/api/cart/user/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cart cleared", decode[any](t, w).Message)
	assert.Empty(t, s.store.Cart.ListByUser(1))
}

func TestChatRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/chat", map[string]any{"userId": 4, "message": "Do you ship abroad?"})
	require.Equal(t, http.StatusCreated, w.Code)
	reply := decode[entity.ChatMessage](t, w).Data
	assert.True(t, reply.IsBot)
	assert.Equal(t, "Happy to help!", reply.Message)

	s.ai.err = errors.New("upstream timeout")
	w = s.do(t, http.MethodPost, "/api/chat", map[string]any{"userId": 4, "message": "Hello?"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, application.ChatFallbackReply, decode[entity.ChatMessage](t, w).Data.Message)

	w = s.do(t, http.MethodGet, "/api/chat/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]entity.ChatMessage](t, w).Data
	require.Len(t, history, 4)
	assert.False(t, history[0].IsBot)
	assert.True(t, history[3].IsBot)
}

func TestUserRoutes(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"username": "maria", "password": "s3cret-pw", "email": "maria@example.com", "name": "Maria"}

	w := s.do(t, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	user := decode[entity.User](t, w).Data

	w = s.do(t, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/users", map[string]any{"username": "x", "password": "1", "email": "bad"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[any](t, w).Error, "email")

	w = s.do(t, http.MethodPut, "/api/users/"+itoa(user.ID), map[string]any{"name": "Maria R."})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Maria R.", decode[entity.User](t, w).Data.Name)

	s.store.TeamMembers.Create(entity.TeamMemberInput{UserID: user.ID, EventID: 1, Role: "editor"})
	w = s.do(t, http.MethodGet, "/api/users/"+itoa(user.ID)+"/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.TeamMember](t, w).Data, 1)

	w = s.do(t, http.MethodGet, "/api/users/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/events", map[string]any{
		"name": "Launch", "organizerId": 1, "startDate": "2025-03-03", "endDate": "2025-03-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/events", map[string]any{
		"name": "Launch", "organizerId": 1, "startDate": "2025-03-01", "endDate": "2025-03-03T18:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	event := decode[entity.Event](t, w).Data
	assert.Equal(t, 2025, event.StartDate.Year())

	s.do(t, http.MethodPost, "/api/events", map[string]any{
		"name": "Other", "organizerId": 2, "startDate": "2025-05-01", "endDate": "2025-05-02",
	})
	w = s.do(t, http.MethodGet, "/api/events?userId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Event](t, w).Data, 1)

	w = s.do(t, http.MethodPost, "/api/team-members", map[string]any{"userId": 5, "eventId": event.ID, "role": "editor"})
	require.Equal(t, http.StatusCreated, w.Code)
	member := decode[entity.TeamMember](t, w).Data
	assert.Equal(t, []string{}, member.Permissions)

	w = s.do(t, http.MethodGet, "/api/events/"+itoa(event.ID)+"/team", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.TeamMember](t, w).Data, 1)

	w = s.do(t, http.MethodPost, "/api/social-accounts", map[string]any{
		"eventId": event.ID, "platformId": 1, "accountName": "Launch", "accountHandle": "@launch", "accessToken": "tok",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "accessToken")

	w = s.do(t, http.MethodGet, "/api/social-platforms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.SocialPlatform](t, w).Data, 7)

	w = s.do(t, http.MethodPost, "/api/social-platforms", map[string]any{"name": "Facebook"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodDelete, "/api/events/"+itoa(event.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Event deleted successfully", decode[any](t, w).Message)
	assert.Len(t, s.store.TeamMembers.ListByEvent(event.ID), 1, "team rows outlive their event")

	w = s.do(t, http.MethodGet, "/api/events/"+itoa(event.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/content-posts", map[string]any{
		"eventId": 1, "creatorId": 1, "title": "Teaser", "content": "Soon", "status": "archived",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/content-posts", map[string]any{
		"eventId": 1, "creatorId": 1, "title": "Teaser", "content": "Soon",
		"platforms": []int64{2, 1}, "tags": []string{"launch"}, "scheduledFor": "2025-03-10T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	post := decode[entity.ContentPostView](t, w).Data
	assert.Equal(t, entity.PostDraft, post.Status)
	assert.Equal(t, []string{"Twitter", "Facebook"}, post.PlatformNames)

	s.do(t, http.MethodPost, "/api/content-posts", map[string]any{
		"eventId": 1, "creatorId": 1, "title": "Unscheduled", "content": "Later",
	})

	w = s.do(t, http.MethodGet, "/api/content-posts?eventId=1&startDate=2025-03-01&endDate=2025-03-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decode[[]entity.ContentPostView](t, w).Data
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)

	w = s.do(t, http.MethodGet, "/api/content-posts?startDate=someday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/content-posts/"+itoa(post.ID), map[string]any{"status": "scheduled"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[entity.ContentPostView](t, w).Data
	assert.Equal(t, entity.PostScheduled, updated.Status)
	assert.Equal(t, "Teaser", updated.Title)

	w = s.do(t, http.MethodPost, "/api/content-approvals", map[string]any{"postId": post.ID, "approverId": 2, "status": "approved"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.do(t, http.MethodGet, "/api/content-posts/"+itoa(post.ID)+"/approvals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.ContentApproval](t, w).Data, 1)

	w = s.do(t, http.MethodPost, "/api/calendar-entries", map[string]any{
		"eventId": 1, "title": "Teaser goes out", "type": "post", "date": "2025-03-10", "time": "09:00", "postId": post.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	s.do(t, http.MethodPost, "/api/calendar-entries", map[string]any{
		"eventId": 1, "title": "Wrap-up", "type": "milestone", "date": "2025-04-02",
	})

	w = s.do(t, http.MethodGet, "/api/events/1/calendar?month=3&year=2025", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]entity.CalendarEntryView](t, w).Data
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].PostTitle)
	assert.Equal(t, "Teaser", *entries[0].PostTitle)

	w = s.do(t, http.MethodGet, "/api/events/1/calendar?month=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.CalendarEntryView](t, w).Data, 2, "month without year does not filter")

	w = s.do(t, http.MethodGet, "/api/events/1/calendar?month=13&year=2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/content-posts/"+itoa(post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Content post deleted successfully", decode[any](t, w).Message)
}

func TestUpdateWithNullClearsField(t *testing.T) {
	s := newTestServer(t)
	window := "/api/content-posts?eventId=1&startDate=2025-03-01&endDate=2025-03-31"

	w := s.do(t, http.MethodPost, "/api/content-posts", map[string]any{
		"eventId": 1, "creatorId": 1, "title": "Teaser", "content": "Soon", "scheduledFor": "2025-03-10T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	post := decode[entity.ContentPostView](t, w).Data
	w = s.do(t, http.MethodGet, window, nil)
	require.Len(t, decode[[]entity.ContentPostView](t, w).Data, 1)

	w = s.do(t, http.MethodPut, "/api/content-posts/"+itoa(post.ID), map[string]any{"title": "Teaser v2"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, decode[entity.ContentPostView](t, w).Data.ScheduledFor, "absent key keeps the schedule")

	w = s.do(t, http.MethodPut, "/api/content-posts/"+itoa(post.ID), map[string]any{"scheduledFor": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, decode[entity.ContentPostView](t, w).Data.ScheduledFor)
	w = s.do(t, http.MethodGet, window, nil)
	assert.Empty(t, decode[[]entity.ContentPostView](t, w).Data)

	w = s.do(t, http.MethodPut, "/api/content-posts/"+itoa(post.ID), map[string]any{"scheduledFor": "not a date"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/calendar-entries", map[string]any{
		"eventId": 1, "title": "Teaser goes out", "type": "post", "date": "2025-03-10",
		"time": "09:00", "postId": post.ID, "color": "#2874f0", "description": "first look",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entry := decode[entity.CalendarEntryView](t, w).Data
	require.NotNil(t, entry.PostTitle)

	w = s.do(t, http.MethodPut, "/api/calendar-entries/"+itoa(entry.ID), map[string]any{"time": "9am"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/calendar-entries/"+itoa(entry.ID), map[string]any{
		"postId": nil, "time": nil, "color": nil, "description": nil,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cleared := decode[entity.CalendarEntryView](t, w).Data
	assert.Nil(t, cleared.PostID)
	assert.Nil(t, cleared.PostTitle)
	assert.Nil(t, cleared.Time)
	assert.Nil(t, cleared.Color)
	assert.Nil(t, cleared.Description)
	assert.Equal(t, "Teaser goes out", cleared.Title)
}

func TestCalendarMonthIsOneBased(t *testing.T) {
	s := newTestServer(t)
	for _, date := range []string{"2025-01-15", "2025-02-01", "2025-12-31"} {
		w := s.do(t, http.MethodPost, "/api/calendar-entries", map[string]any{
			"eventId": 1, "title": date, "type": "reminder", "date": date,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(t, http.MethodGet, "/api/events/1/calendar?month=1&year=2025", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]entity.CalendarEntryView](t, w).Data
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-01-15", entries[0].Title, "month=1 is January")

	w = s.do(t, http.MethodGet, "/api/events/1/calendar?month=12&year=2025", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries = decode[[]entity.CalendarEntryView](t, w).Data
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-12-31", entries[0].Title)

	w = s.do(t, http.MethodGet, "/api/events/1/calendar?month=0&year=2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateContentRoute(t *testing.T) {
	s := newTestServer(t)
	event := s.store.Events.Create(entity.EventInput{Name: "Fair", OrganizerID: 1})
	s.ai.reply = "Join us!"

	w := s.do(t, http.MethodPost, "/api/ai/generate-content", map[string]any{"prompt": "teaser", "eventId": event.ID, "platform": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, application.GeneratedContent{Content: "Join us!", Event: "Fair", Platform: "Facebook"},
		decode[application.GeneratedContent](t, w).Data)

	w = s.do(t, http.MethodPost, "/api/ai/generate-content", map[string]any{"prompt": "teaser", "eventId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	s.ai.err = errors.New("boom")
	w = s.do(t, http.MethodPost, "/api/ai/generate-content", map[string]any{"prompt": "teaser", "eventId": event.ID})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDebugVarsAndNoRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/debug/vars", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var vars map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vars))
	var tables map[string]int
	require.NoError(t, json.Unmarshal(vars["tables"], &tables))
	assert.Equal(t, 6, tables["products"])
	assert.Equal(t, 7, tables["social_platforms"])

	w = s.do(t, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
