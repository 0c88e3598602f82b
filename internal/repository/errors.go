// Package repository defines error types that are reused across the
// data access layer. These sentinel values allow higher layers such
// as handlers to distinguish between different failure scenarios
// without inspecting driver-specific error strings themselves. For
// example, ErrEmailExists and ErrUsernameExists signal a uniqueness
// conflict that handlers translate into a 400 response, while
// ErrUserNotFound maps to a 404.
package repository

import "errors"

// ErrEmailExists is returned when an insert or pre-check hits the
// unique index on users.email.
var ErrEmailExists = errors.New("email already in use")

// ErrUsernameExists is returned when an insert or pre-check hits the
// unique index on users.username.
var ErrUsernameExists = errors.New("username already taken")

// ErrUserNotFound is returned when a lookup matches no row.
var ErrUserNotFound = errors.New("user not found")
