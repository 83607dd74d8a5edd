package memory

import "sync/atomic"

// Sequence hands out surrogate keys for one table: 1, 2, 3 and so on. Keys
// are never reused, even after the row they named is deleted.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
