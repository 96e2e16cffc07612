package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserLoggedIn         EventType = "user_logged_in"
	EventUserLoggedOut        EventType = "user_logged_out"
	EventMembershipRegistered EventType = "membership_registered"
	EventMembershipRenewed    EventType = "membership_renewed"
)

// Event represents a portal-level event emitted by the facade.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UserLoggedOutPayload payload.
type UserLoggedOutPayload struct {
	SessionOnly bool `json:"session_only"`
}

// MembershipRegisteredPayload payload.
type MembershipRegisteredPayload struct {
	ClientID     int `json:"client_id"`
	MembershipID int `json:"membership_id"`
}

// MembershipRenewedPayload payload.
type MembershipRenewedPayload struct {
	MembershipID int `json:"membership_id"`
}
