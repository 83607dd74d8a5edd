// Package repository declares the storage contracts each entity kind
// exposes. Lookups report absence with a boolean rather than an error;
// the sentinel errors below cover the remaining failure cases.
package repository

import "errors"

// ErrConflict is returned when a write would break a uniqueness rule, such
// as a second user with the same email. Handlers translate it into 409.
var ErrConflict = errors.New("conflict")

// ErrInvalidQuantity is returned when a cart row would hold fewer than one
// unit. Nothing is written.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")
