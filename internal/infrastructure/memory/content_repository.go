package memory

import (
	"cmp"
	"slices"
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
)

type ContentPostRepository struct {
	t   *Table[entity.ContentPost]
	now func() time.Time
}

func (r *ContentPostRepository) List(f entity.ContentPostFilter) []entity.ContentPost {
	return filterContentPosts(r.t.Scan(), f)
}

func (r *ContentPostRepository) Get(id int64) (entity.ContentPost, bool) {
	return r.t.Get(id)
}

func (r *ContentPostRepository) Create(in entity.ContentPostInput) entity.ContentPost {
	return r.t.Insert(func(id int64) entity.ContentPost { return in.Build(id, r.now()) })
}

// Update merges p into the post and stamps UpdatedAt. The stamp never moves
// backwards even if the clock does.
func (r *ContentPostRepository) Update(id int64, p entity.ContentPostPatch) (entity.ContentPost, entity.PostStatus, bool) {
	var prev entity.PostStatus
	post, ok := r.t.Update(id, func(post *entity.ContentPost) {
		prev = post.Status
		p.Apply(post)
		if now := r.now(); now.After(post.UpdatedAt) {
			post.UpdatedAt = now
		}
	})
	return post, prev, ok
}

func (r *ContentPostRepository) Delete(id int64) bool {
	return r.t.Delete(id)
}

type ContentApprovalRepository struct {
	t   *Table[entity.ContentApproval]
	now func() time.Time
}

func (r *ContentApprovalRepository) ListByPost(postID int64) []entity.ContentApproval {
	out := r.t.Filter(func(a entity.ContentApproval) bool { return a.PostID == postID })
	slices.SortStableFunc(out, func(a, b entity.ContentApproval) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return out
}

func (r *ContentApprovalRepository) Get(id int64) (entity.ContentApproval, bool) {
	return r.t.Get(id)
}

func (r *ContentApprovalRepository) Create(in entity.ContentApprovalInput) entity.ContentApproval {
	return r.t.Insert(func(id int64) entity.ContentApproval { return in.Build(id, r.now()) })
}
