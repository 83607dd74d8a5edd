package memory

import (
	"slices"
	"sync"
)

// Row is the constraint for values kept in a Table. Clone must return a
// copy that shares no mutable state with the receiver.
type Row[T any] interface {
	Clone() T
}

// Table is one keyed collection of rows with its own identity sequence.
// Rows never leave the table by reference: every read and write hands out
// clones. Iteration follows insertion order, which is ascending key order.
type Table[T Row[T]] struct {
	mu    sync.RWMutex
	seq   Sequence
	rows  map[int64]T
	order []int64
}

func NewTable[T Row[T]]() *Table[T] {
	return &Table[T]{rows: make(map[int64]T)}
}

// Rows is a read-only view of a table handed to callbacks that already run
// under the table lock.
type Rows[T Row[T]] struct {
	t *Table[T]
}

// Any reports whether some row other than skip satisfies match. Pass 0 to
// consider every row.
func (r Rows[T]) Any(skip int64, match func(T) bool) bool {
	for _, id := range r.t.order {
		if id == skip {
			continue
		}
		if match(r.t.rows[id]) {
			return true
		}
	}
	return false
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return row.Clone(), true
}

// Scan returns every row in insertion order.
func (t *Table[T]) Scan() []T {
	return t.Filter(nil)
}

// Filter returns the rows for which keep is true, in insertion order. A nil
// keep selects every row. keep must not retain its argument.
func (t *Table[T]) Filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, row.Clone())
		}
	}
	return out
}

// Find returns the first row, in insertion order, that satisfies match.
func (t *Table[T]) Find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Insert allocates the next key, stores the row built for it and returns a
// copy of the stored row.
func (t *Table[T]) Insert(build func(id int64) T) T {
	row, _ := t.InsertChecked(nil, build)
	return row
}

// InsertChecked runs check against the current rows before allocating a
// key. If check fails nothing is stored and no key is consumed.
func (t *Table[T]) InsertChecked(check func(Rows[T]) error, build func(id int64) T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if check != nil {
		if err := check(Rows[T]{t: t}); err != nil {
			var zero T
			return zero, err
		}
	}
	id := t.seq.Next()
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row.Clone(), nil
}

// Update applies mutate to a copy of the row and writes the copy back. It
// reports false when id is unknown.
func (t *Table[T]) Update(id int64, mutate func(*T)) (T, bool) {
	row, ok, _ := t.UpdateChecked(id, func(r *T, _ Rows[T]) error {
		mutate(r)
		return nil
	})
	return row, ok
}

// UpdateChecked is Update with a mutate step that may veto the write by
// returning an error. A vetoed update leaves the stored row untouched.
func (t *Table[T]) UpdateChecked(id int64, mutate func(*T, Rows[T]) error) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	cur, ok := t.rows[id]
	if !ok {
		return zero, false, nil
	}
	next := cur.Clone()
	if err := mutate(&next, Rows[T]{t: t}); err != nil {
		return zero, true, err
	}
	t.rows[id] = next
	return next.Clone(), true, nil
}

// Upsert updates the first row that satisfies match with merge, or inserts
// the row built by build when none does. The lookup and the write happen
// under one lock.
func (t *Table[T]) Upsert(match func(T) bool, merge func(*T), build func(id int64) T) (row T, inserted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.order {
		cur := t.rows[id]
		if !match(cur) {
			continue
		}
		next := cur.Clone()
		merge(&next)
		t.rows[id] = next
		return next.Clone(), false
	}
	id := t.seq.Next()
	created := build(id)
	t.rows[id] = created
	t.order = append(t.order, id)
	return created.Clone(), true
}

// Delete removes the row and reports whether it existed.
func (t *Table[T]) Delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deleteLocked(id)
}

// DeleteWhere removes every row that satisfies match and returns how many
// were removed.
func (t *Table[T]) DeleteWhere(match func(T) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	t.order = slices.DeleteFunc(t.order, func(id int64) bool {
		if match(t.rows[id]) {
			delete(t.rows, id)
			n++
			return true
		}
		return false
	})
	return n
}

func (t *Table[T]) deleteLocked(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i, found := slices.BinarySearch(t.order, id); found {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}
