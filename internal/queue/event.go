// Package queue defines message payloads exchanged over the message broker.
package queue

// Event kinds published to the auth.events queue.
const (
    EventUserRegistered = "user.registered"
    EventUserLogin      = "user.login"
)

// AuthEvent is published when an account is created or a login
// succeeds. It contains enough information for downstream consumers
// to log, notify, or feed analytics without querying the primary
// database.
type AuthEvent struct {
    Event      string `json:"event"`
    UserID     uint64 `json:"user_id"`
    Username   string `json:"username"`
    Email      string `json:"email"`
    OccurredAt string `json:"occurred_at"`
}
