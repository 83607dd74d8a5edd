// Package nullable holds the tri-state value used by partial updates: a
// JSON key that is absent leaves the stored value alone, an explicit null
// clears it and anything else replaces it.
package nullable

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	Set   bool
	Value *T
}

func Of[T any](v T) Field[T] { return Field[T]{Set: true, Value: &v} }

func Null[T any]() Field[T] { return Field[T]{Set: true} }

// IsNull reports an explicit null.
func (f Field[T]) IsNull() bool { return f.Set && f.Value == nil }

// UnmarshalJSON only runs for keys present in the payload, which is what
// marks the field as set.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// Raw returns the value for validation, or nil when there is none so
// omitempty rules skip it.
func (f Field[T]) Raw() any {
	if f.Value == nil {
		return nil
	}
	return *f.Value
}

// ApplyTo writes the field into dst when set. The stored pointer never
// aliases f.
func (f Field[T]) ApplyTo(dst **T) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}

// Map converts a set value with fn, keeping absent and null as they are.
func Map[T, U any](f Field[T], fn func(T) (U, error)) (Field[U], error) {
	if f.Value == nil {
		return Field[U]{Set: f.Set}, nil
	}
	u, err := fn(*f.Value)
	if err != nil {
		return Field[U]{}, err
	}
	return Of(u), nil
}
