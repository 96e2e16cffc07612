package dto

import "github.com/spec-kit/gym-portal/internal/domain"

// RegisterMembershipRequest payload for registering a membership onto
// an existing client.
type RegisterMembershipRequest struct {
	Membership domain.Membership `json:"membership"`
}
