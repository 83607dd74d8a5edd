package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

// ContentPostRepository lists posts through the post filter engine. Update
// always advances UpdatedAt and reports the status the post had just before
// the patch, read under the same lock as the write.
type ContentPostRepository interface {
	List(f entity.ContentPostFilter) []entity.ContentPost
	Get(id int64) (entity.ContentPost, bool)
	Create(in entity.ContentPostInput) entity.ContentPost
	Update(id int64, p entity.ContentPostPatch) (post entity.ContentPost, prev entity.PostStatus, ok bool)
	Delete(id int64) bool
}

// ContentApprovalRepository is append-only.
type ContentApprovalRepository interface {
	// ListByPost returns the post's approvals newest first.
	ListByPost(postID int64) []entity.ContentApproval
	Get(id int64) (entity.ContentApproval, bool)
	Create(in entity.ContentApprovalInput) entity.ContentApproval
}
