package memory

import (
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/internal/domain/repository"
)

type UserRepository struct {
	t   *Table[entity.User]
	now func() time.Time
}

func (r *UserRepository) Create(in entity.UserInput) (entity.User, error) {
	return r.t.InsertChecked(func(rows Rows[entity.User]) error {
		return checkUserUnique(rows, 0, in.Username, in.Email)
	}, func(id int64) entity.User {
		return in.Build(id, r.now())
	})
}

func (r *UserRepository) Get(id int64) (entity.User, bool) {
	return r.t.Get(id)
}

func (r *UserRepository) GetByUsername(username string) (entity.User, bool) {
	return r.t.Find(func(u entity.User) bool { return u.Username == username })
}

func (r *UserRepository) GetByEmail(email string) (entity.User, bool) {
	return r.t.Find(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepository) Update(id int64, p entity.UserPatch) (entity.User, bool, error) {
	return r.t.UpdateChecked(id, func(u *entity.User, rows Rows[entity.User]) error {
		p.Apply(u)
		return checkUserUnique(rows, id, u.Username, u.Email)
	})
}

func checkUserUnique(rows Rows[entity.User], self int64, username, email string) error {
	if rows.Any(self, func(u entity.User) bool { return u.Username == username || u.Email == email }) {
		return repository.ErrConflict
	}
	return nil
}
