// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a registration commits. It carries
// enough for downstream consumers (welcome mail, analytics) to act without
// querying the primary database. The password hash is never included.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registered_at"`
}
