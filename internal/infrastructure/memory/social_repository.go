package memory

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/internal/domain/repository"
)

type SocialPlatformRepository struct {
	t *Table[entity.SocialPlatform]
}

func (r *SocialPlatformRepository) ListActive() []entity.SocialPlatform {
	out := r.t.Filter(func(p entity.SocialPlatform) bool { return p.Active })
	slices.SortStableFunc(out, func(a, b entity.SocialPlatform) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return out
}

func (r *SocialPlatformRepository) Get(id int64) (entity.SocialPlatform, bool) {
	return r.t.Get(id)
}

func (r *SocialPlatformRepository) Create(in entity.SocialPlatformInput) (entity.SocialPlatform, error) {
	return r.t.InsertChecked(func(rows Rows[entity.SocialPlatform]) error {
		return checkPlatformName(rows, 0, in.Name)
	}, in.Build)
}

func (r *SocialPlatformRepository) Update(id int64, p entity.SocialPlatformPatch) (entity.SocialPlatform, bool, error) {
	return r.t.UpdateChecked(id, func(sp *entity.SocialPlatform, rows Rows[entity.SocialPlatform]) error {
		p.Apply(sp)
		return checkPlatformName(rows, id, sp.Name)
	})
}

func checkPlatformName(rows Rows[entity.SocialPlatform], self int64, name string) error {
	if rows.Any(self, func(p entity.SocialPlatform) bool { return p.Name == name }) {
		return repository.ErrConflict
	}
	return nil
}

type SocialAccountRepository struct {
	t   *Table[entity.SocialAccount]
	now func() time.Time
}

func (r *SocialAccountRepository) ListByEvent(eventID int64) []entity.SocialAccount {
	return r.t.Filter(func(a entity.SocialAccount) bool { return a.EventID == eventID })
}

func (r *SocialAccountRepository) Get(id int64) (entity.SocialAccount, bool) {
	return r.t.Get(id)
}

func (r *SocialAccountRepository) Create(in entity.SocialAccountInput) entity.SocialAccount {
	return r.t.Insert(func(id int64) entity.SocialAccount { return in.Build(id, r.now()) })
}

func (r *SocialAccountRepository) Update(id int64, p entity.SocialAccountPatch) (entity.SocialAccount, bool) {
	return r.t.Update(id, p.Apply)
}

func (r *SocialAccountRepository) Delete(id int64) bool {
	return r.t.Delete(id)
}
