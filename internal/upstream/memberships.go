package upstream

import (
	"context"
	"net/http"

	"github.com/spec-kit/gym-portal/internal/domain"
)

const membershipsPath = "/api/memberships"

// MembershipsClient talks to the memberships microservice. Like the
// clients service it takes no bearer credential in the current design.
type MembershipsClient struct {
	caller *caller
}

// NewMembershipsClient builds a client for the given base address.
func NewMembershipsClient(base string, httpClient *http.Client) *MembershipsClient {
	return &MembershipsClient{caller: newCaller(base, httpClient, nil)}
}

// List fetches every membership. Failures are raised, not wrapped.
func (c *MembershipsClient) List(ctx context.Context) ([]domain.Membership, error) {
	return list[domain.Membership](ctx, c.caller, membershipsPath)
}

// GetByID fetches one membership. Failures are raised, not wrapped.
func (c *MembershipsClient) GetByID(ctx context.Context, id int) (*domain.Membership, error) {
	return getByID[domain.Membership](ctx, c.caller, membershipsPath, id)
}

// Create stamps creation bookkeeping and posts the membership.
func (c *MembershipsClient) Create(ctx context.Context, m *domain.Membership) (Result[*domain.Membership], error) {
	return create[domain.Membership](ctx, c.caller, membershipsPath, m)
}

// Update stamps modification bookkeeping and puts the membership. The
// memberships service answers updates with 204 at times; that resolves
// to Success carrying the membership as sent.
func (c *MembershipsClient) Update(ctx context.Context, id int, m *domain.Membership) (Result[*domain.Membership], error) {
	return update[domain.Membership](ctx, c.caller, membershipsPath, id, m)
}

// Delete removes a membership, collapsing any failure into false.
func (c *MembershipsClient) Delete(ctx context.Context, id int) bool {
	return remove(ctx, c.caller, membershipsPath, id)
}
