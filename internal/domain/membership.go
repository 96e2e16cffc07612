package domain

import "time"

// MembershipStatus enumerates membership lifecycle states.
type MembershipStatus string

const (
	MembershipStatusActive   MembershipStatus = "ACTIVE"
	MembershipStatusExpired  MembershipStatus = "EXPIRED"
	MembershipStatusInactive MembershipStatus = "INACTIVE"
)

// Membership is a gym membership record served by the memberships
// microservice.
type Membership struct {
	ID        int              `json:"id"`
	Type      string           `json:"type"`
	Price     float64          `json:"price"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Status    MembershipStatus `json:"status"`
	Audit
}
