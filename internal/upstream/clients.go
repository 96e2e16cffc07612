package upstream

import (
	"context"
	"net/http"

	"github.com/spec-kit/gym-portal/internal/domain"
)

const clientsPath = "/api/clients"

// ClientsClient talks to the clients microservice. The service does not
// require a bearer credential in the current upstream design.
type ClientsClient struct {
	caller *caller
}

// NewClientsClient builds a client for the given base address.
func NewClientsClient(base string, httpClient *http.Client) *ClientsClient {
	return &ClientsClient{caller: newCaller(base, httpClient, nil)}
}

// List fetches every client. Failures are raised, not wrapped.
func (c *ClientsClient) List(ctx context.Context) ([]domain.Client, error) {
	return list[domain.Client](ctx, c.caller, clientsPath)
}

// GetByID fetches one client. Failures are raised, not wrapped.
func (c *ClientsClient) GetByID(ctx context.Context, id int) (*domain.Client, error) {
	return getByID[domain.Client](ctx, c.caller, clientsPath, id)
}

// Create stamps creation bookkeeping and posts the client.
func (c *ClientsClient) Create(ctx context.Context, client *domain.Client) (Result[*domain.Client], error) {
	return create[domain.Client](ctx, c.caller, clientsPath, client)
}

// Update stamps modification bookkeeping and puts the client.
func (c *ClientsClient) Update(ctx context.Context, id int, client *domain.Client) (Result[*domain.Client], error) {
	return update[domain.Client](ctx, c.caller, clientsPath, id, client)
}

// Delete removes a client, collapsing any failure into false.
func (c *ClientsClient) Delete(ctx context.Context, id int) bool {
	return remove(ctx, c.caller, clientsPath, id)
}
