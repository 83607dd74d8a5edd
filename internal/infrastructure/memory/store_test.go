package memory

import (
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/internal/domain/repository"
	"github.com/oksasatya/gudimart-store/pkg/nullable"
)

// stepClock advances one second on every reading.
type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore() (*Store, *stepClock) {
	clock := &stepClock{t: epoch}
	return NewStore(WithClock(clock.Now)), clock
}

func TestProductRoundTrip(t *testing.T) {
	s, _ := newTestStore()
	in := entity.ProductInput{
		Name:            "Phone",
		Description:     "A phone",
		Price:           1000,
		DiscountedPrice: ptr(800.0),
		CategoryID:      1,
		Brand:           "X",
		ImageURL:        "https://img/phone.png",
		Specifications:  specs("ram", "8GB", "dualSim", true),
	}
	created := s.Products.Create(in)

	want := entity.Product{
		ID:              1,
		Name:            "Phone",
		Description:     "A phone",
		Price:           1000,
		DiscountedPrice: ptr(800.0),
		CategoryID:      1,
		Brand:           "X",
		ImageURL:        "https://img/phone.png",
		InStock:         true,
		DeliveryTime:    entity.DefaultDeliveryTime,
		Specifications:  specs("ram", "8GB", "dualSim", true),
		CreatedAt:       epoch.Add(time.Second),
	}
	got, ok := s.Products.Get(created.ID)
	require.True(t, ok)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(entity.SpecValue{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestProductScenario(t *testing.T) {
	s, _ := newTestStore()
	s.Products.Create(entity.ProductInput{Name: "P", Price: 1000, DiscountedPrice: ptr(800.0), Brand: "X", InStock: ptr(true)})

	assert.Len(t, s.Products.List(entity.ProductFilter{MinPrice: ptr(750.0), MaxPrice: ptr(850.0)}), 1)
	assert.Empty(t, s.Products.List(entity.ProductFilter{Brands: []string{"Y"}}))
}

func TestListsMatchQueryFunctions(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, Seed(s))
	all := s.Products.List(entity.ProductFilter{})
	for _, f := range []entity.ProductFilter{
		{SortBy: entity.SortPriceDesc},
		{CategoryID: ptr(int64(1)), SortBy: entity.SortRating},
		{SearchTerm: "pro", SortBy: entity.SortNewest},
	} {
		assert.Equal(t, productIDs(filterProducts(all, f)), productIDs(s.Products.List(f)))
	}

	for i, day := range []int{5, 1, 3} {
		when := epoch.AddDate(0, 0, day)
		s.ContentPosts.Create(entity.ContentPostInput{EventID: int64(i%2 + 1), Title: "p", ScheduledFor: &when})
	}
	s.ContentPosts.Create(entity.ContentPostInput{EventID: 1, Title: "unscheduled"})
	posts := s.ContentPosts.List(entity.ContentPostFilter{SortBy: entity.SortCreatedAsc})
	for _, f := range []entity.ContentPostFilter{
		{},
		{EventID: ptr(int64(1)), SortBy: entity.SortScheduledDesc},
		{StartDate: ptr(epoch.AddDate(0, 0, 2))},
	} {
		assert.Equal(t, postIDs(filterContentPosts(posts, f)), postIDs(s.ContentPosts.List(f)))
	}
}

func TestProductUpdateIsPartial(t *testing.T) {
	s, _ := newTestStore()
	p := s.Products.Create(entity.ProductInput{Name: "P", Description: "d", Price: 10, Brand: "X"})

	got, ok := s.Products.Update(p.ID, entity.ProductPatch{Price: ptr(12.5)})
	require.True(t, ok)

	want := p
	want.Price = 12.5
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(entity.SpecValue{})); diff != "" {
		t.Errorf("update touched other fields (-want +got):\n%s", diff)
	}

	_, ok = s.Products.Update(99, entity.ProductPatch{Price: ptr(1.0)})
	assert.False(t, ok)
}

func TestContentPostUpdateAdvancesUpdatedAt(t *testing.T) {
	s, _ := newTestStore()
	p := s.ContentPosts.Create(entity.ContentPostInput{EventID: 1, CreatorID: 2, Title: "t", Content: "c", Tags: []string{"a"}})
	assert.Equal(t, entity.PostDraft, p.Status)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	status := entity.PostScheduled
	got, prev, ok := s.ContentPosts.Update(p.ID, entity.ContentPostPatch{Status: &status})
	require.True(t, ok)
	assert.Equal(t, entity.PostDraft, prev)
	assert.Equal(t, entity.PostScheduled, got.Status)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.Tags, got.Tags)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(p.UpdatedAt))
}

func TestContentPostUpdatedAtNeverMovesBack(t *testing.T) {
	s, clock := newTestStore()
	p := s.ContentPosts.Create(entity.ContentPostInput{Title: "t"})
	clock.t = epoch.Add(-time.Hour)

	got, _, ok := s.ContentPosts.Update(p.ID, entity.ContentPostPatch{Title: ptr("t2")})
	require.True(t, ok)
	assert.False(t, got.UpdatedAt.Before(p.UpdatedAt))
}

func TestContentPostUpdateClearsSchedule(t *testing.T) {
	s, _ := newTestStore()
	when := epoch.Add(48 * time.Hour)
	p := s.ContentPosts.Create(entity.ContentPostInput{EventID: 1, Title: "t", ScheduledFor: &when})
	window := entity.ContentPostFilter{StartDate: &epoch, EndDate: ptr(epoch.Add(72 * time.Hour))}
	require.Len(t, s.ContentPosts.List(window), 1)

	got, _, ok := s.ContentPosts.Update(p.ID, entity.ContentPostPatch{Title: ptr("t2")})
	require.True(t, ok)
	require.NotNil(t, got.ScheduledFor, "absent field keeps the schedule")

	got, _, ok = s.ContentPosts.Update(p.ID, entity.ContentPostPatch{ScheduledFor: nullable.Null[time.Time]()})
	require.True(t, ok)
	assert.Nil(t, got.ScheduledFor)
	assert.Empty(t, s.ContentPosts.List(window))
}

// Each update must see the status left by the one before it, so the
// reported previous statuses are exactly the initial status plus every
// written status except the last.
func TestContentPostConcurrentUpdatesReportChainedPrev(t *testing.T) {
	s, _ := newTestStore()
	p := s.ContentPosts.Create(entity.ContentPostInput{Title: "t"})
	statuses := []entity.PostStatus{entity.PostScheduled, entity.PostPublished, entity.PostFailed, entity.PostDraft}

	var (
		mu      sync.Mutex
		written = map[entity.PostStatus]int{}
		seen    = map[entity.PostStatus]int{}
		wg      sync.WaitGroup
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(st entity.PostStatus) {
			defer wg.Done()
			_, prev, ok := s.ContentPosts.Update(p.ID, entity.ContentPostPatch{Status: &st})
			mu.Lock()
			defer mu.Unlock()
			assert.True(t, ok)
			written[st]++
			seen[prev]++
		}(statuses[i%len(statuses)])
	}
	wg.Wait()

	final, ok := s.ContentPosts.Get(p.ID)
	require.True(t, ok)
	written[entity.PostDraft]++
	written[final.Status]--
	for st, n := range written {
		if n == 0 {
			delete(written, st)
		}
	}
	assert.Equal(t, written, seen)
}

func TestCartAddMergesIntoOneRow(t *testing.T) {
	s, _ := newTestStore()
	first, err := s.Cart.Add(entity.CartItemInput{UserID: 1, ProductID: 5, Quantity: 2})
	require.NoError(t, err)
	second, err := s.Cart.Add(entity.CartItemInput{UserID: 1, ProductID: 5, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	rows := s.Cart.ListByUser(1)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Quantity)

	other, err := s.Cart.Add(entity.CartItemInput{UserID: 2, ProductID: 5, Quantity: 1})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestCartQuantityMustBePositive(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Cart.Add(entity.CartItemInput{UserID: 1, ProductID: 5, Quantity: 0})
	assert.ErrorIs(t, err, repository.ErrInvalidQuantity)
	assert.Empty(t, s.Cart.ListByUser(1))

	item, err := s.Cart.Add(entity.CartItemInput{UserID: 1, ProductID: 5, Quantity: 1})
	require.NoError(t, err)

	_, found, err := s.Cart.SetQuantity(item.ID, -1)
	assert.True(t, found)
	assert.ErrorIs(t, err, repository.ErrInvalidQuantity)

	got, found, err := s.Cart.SetQuantity(item.ID, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, got.Quantity)

	_, found, err = s.Cart.SetQuantity(42, 1)
	assert.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.Cart.SetQuantity(42, 0)
	assert.NoError(t, err, "unknown id wins over a bad quantity")
	assert.False(t, found)
}

func TestCartClearOnlyTouchesOneUser(t *testing.T) {
	s, _ := newTestStore()
	for _, in := range []entity.CartItemInput{
		{UserID: 1, ProductID: 1, Quantity: 1},
		{UserID: 1, ProductID: 2, Quantity: 1},
		{UserID: 2, ProductID: 1, Quantity: 1},
	} {
		_, err := s.Cart.Add(in)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, s.Cart.Clear(1))
	assert.Empty(t, s.Cart.ListByUser(1))
	assert.Len(t, s.Cart.ListByUser(2), 1)
	_, ok := s.Cart.Find(2, 1)
	assert.True(t, ok)
}

func TestUserUniqueness(t *testing.T) {
	s, _ := newTestStore()
	u, err := s.Users.Create(entity.UserInput{Username: "ana", Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultUserRole, u.Role)

	_, err = s.Users.Create(entity.UserInput{Username: "ana", Email: "other@example.com"})
	assert.ErrorIs(t, err, repository.ErrConflict)
	_, err = s.Users.Create(entity.UserInput{Username: "bo", Email: "ana@example.com"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	bo, err := s.Users.Create(entity.UserInput{Username: "bo", Email: "bo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), bo.ID)

	_, found, err := s.Users.Update(bo.ID, entity.UserPatch{Email: ptr("ana@example.com")})
	assert.True(t, found)
	assert.ErrorIs(t, err, repository.ErrConflict)

	// Re-saving your own email is not a clash.
	_, _, err = s.Users.Update(bo.ID, entity.UserPatch{Email: ptr("bo@example.com"), Name: ptr("Bo")})
	require.NoError(t, err)

	got, ok := s.Users.GetByEmail("bo@example.com")
	require.True(t, ok)
	assert.Equal(t, "Bo", got.Name)
	_, ok = s.Users.GetByUsername("nobody")
	assert.False(t, ok)
}

func TestPlatformsListActiveByName(t *testing.T) {
	s, _ := newTestStore()
	for _, in := range []entity.SocialPlatformInput{
		{Name: "Twitter"},
		{Name: "facebook"},
		{Name: "Myspace", Active: ptr(false)},
		{Name: "Instagram"},
	} {
		_, err := s.SocialPlatforms.Create(in)
		require.NoError(t, err)
	}
	var names []string
	for _, p := range s.SocialPlatforms.ListActive() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"facebook", "Instagram", "Twitter"}, names)

	_, err := s.SocialPlatforms.Create(entity.SocialPlatformInput{Name: "Twitter"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	got, found, err := s.SocialPlatforms.Update(3, entity.SocialPlatformPatch{Active: ptr(true)})
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got.Active)
}

func TestEventsLatestStartFirst(t *testing.T) {
	s, _ := newTestStore()
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	s.Events.Create(entity.EventInput{Name: "early", OrganizerID: 1, StartDate: day(1), EndDate: day(2)})
	s.Events.Create(entity.EventInput{Name: "late", OrganizerID: 2, StartDate: day(20), EndDate: day(21)})
	s.Events.Create(entity.EventInput{Name: "mid", OrganizerID: 1, StartDate: day(10), EndDate: day(11)})

	var names []string
	for _, e := range s.Events.List(nil) {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"late", "mid", "early"}, names)
	assert.Len(t, s.Events.List(ptr(int64(1))), 2)

	// No cascade: children of a deleted event stay put.
	s.TeamMembers.Create(entity.TeamMemberInput{UserID: 1, EventID: 1, Role: "owner"})
	require.True(t, s.Events.Delete(1))
	assert.Len(t, s.TeamMembers.ListByEvent(1), 1)
}

func TestTeamMembersAllowDuplicates(t *testing.T) {
	s, _ := newTestStore()
	in := entity.TeamMemberInput{UserID: 1, EventID: 1, Role: "editor", Permissions: []string{"post"}}
	a := s.TeamMembers.Create(in)
	b := s.TeamMembers.Create(in)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.TeamMembers.ListByUser(1), 2)

	got, ok := s.TeamMembers.Update(a.ID, entity.TeamMemberPatch{Permissions: []string{"post", "approve"}})
	require.True(t, ok)
	assert.Equal(t, []string{"post", "approve"}, got.Permissions)
	assert.Equal(t, "editor", got.Role)
}

func TestApprovalsNewestFirst(t *testing.T) {
	s, _ := newTestStore()
	s.ContentApprovals.Create(entity.ContentApprovalInput{PostID: 1, ApproverID: 1, Status: entity.ApprovalPending})
	s.ContentApprovals.Create(entity.ContentApprovalInput{PostID: 2, ApproverID: 1, Status: entity.ApprovalApproved})
	s.ContentApprovals.Create(entity.ContentApprovalInput{PostID: 1, ApproverID: 2, Status: entity.ApprovalRejected})

	got := s.ContentApprovals.ListByPost(1)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestCalendarMonthFilterAndOrder(t *testing.T) {
	s, _ := newTestStore()
	add := func(title string, d civil.Date) {
		s.Calendar.Create(entity.CalendarEntryInput{EventID: 1, Title: title, Type: entity.EntryMilestone, Date: d})
	}
	add("late-march", civil.Date{Year: 2025, Month: time.March, Day: 28})
	add("april", civil.Date{Year: 2025, Month: time.April, Day: 2})
	add("early-march", civil.Date{Year: 2025, Month: time.March, Day: 3})
	add("march-last-year", civil.Date{Year: 2024, Month: time.March, Day: 10})
	s.Calendar.Create(entity.CalendarEntryInput{EventID: 2, Title: "other", Date: civil.Date{Year: 2025, Month: time.March, Day: 1}})

	titles := func(entries []entity.CalendarEntry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.Title)
		}
		return out
	}
	assert.Equal(t, []string{"march-last-year", "early-march", "late-march", "april"}, titles(s.Calendar.ListByEvent(1, nil)))
	assert.Equal(t, []string{"early-march", "late-march"},
		titles(s.Calendar.ListByEvent(1, &entity.CalendarMonth{Year: 2025, Month: time.March})))
}

func TestChatHistoryOldestFirst(t *testing.T) {
	s, _ := newTestStore()
	s.Chat.Append(entity.ChatMessageInput{UserID: 1, Message: "hi"})
	s.Chat.Append(entity.ChatMessageInput{UserID: 2, Message: "other"})
	s.Chat.Append(entity.ChatMessageInput{UserID: 1, IsBot: true, Message: "hello"})

	got := s.Chat.ListByUser(1)
	require.Len(t, got, 2)
	assert.Equal(t, "hi", got[0].Message)
	assert.True(t, got[1].IsBot)
	assert.True(t, got[0].Timestamp.Before(got[1].Timestamp))
}

func TestSeed(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, Seed(s))

	counts := s.Counts()
	assert.Equal(t, 4, counts["categories"])
	assert.Equal(t, 7, counts["social_platforms"])
	assert.Equal(t, 6, counts["products"])
	assert.Zero(t, counts["users"])

	watch, ok := s.Products.Get(3)
	require.True(t, ok)
	var keys []string
	for _, sp := range watch.Specifications {
		keys = append(keys, sp.Key)
	}
	assert.Equal(t, []string{"display", "battery", "waterproof"}, keys)
	assert.Len(t, s.Products.ListByCategory(1), 4)

	assert.Error(t, Seed(s), "platform names are unique")
}
