// Package repository defines error types that are reused across the
// repository layer. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors. For example, ErrUsernameTaken
// signals a unique-constraint collision that handlers translate into a
// client error, while anything else bubbles up as a server error.
package repository

import "errors"

// ErrUserNotFound is returned when a lookup matches no row. Handlers
// translate this into the same client error as a bad password so that
// the response does not reveal which usernames exist.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when an insert collides with the unique
// constraint on username (or email). Handlers should translate this
// into an HTTP 400 response.
var ErrUsernameTaken = errors.New("username already exists")
