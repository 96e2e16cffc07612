package domain

import "time"

// Client is a gym client record served by the clients microservice.
// MembershipID links the client to its current membership; the facade
// writes it back after registering a new membership.
type Client struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	FirstLastname  string     `json:"first_lastname"`
	SecondLastname *string    `json:"second_lastname,omitempty"`
	DateBirth      time.Time  `json:"date_birth"`
	CI             string     `json:"ci"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	IsActive       bool       `json:"is_active"`
	MembershipID   int        `json:"membership_id"`
	Audit
}
