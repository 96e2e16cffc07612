package facade

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/gym-portal/internal/config"
	"github.com/spec-kit/gym-portal/internal/domain"
	"github.com/spec-kit/gym-portal/internal/events"
	"github.com/spec-kit/gym-portal/internal/upstream"
)

// Factory builds request-scoped facades over shared transport. The
// http.Client and its timeout are shared safely; everything holding a
// credential is allocated per request.
type Factory struct {
	cfg        config.UpstreamConfig
	http       *http.Client
	dispatcher events.Dispatcher
}

// NewFactory wires the shared pieces.
func NewFactory(cfg config.UpstreamConfig, dispatcher events.Dispatcher) *Factory {
	return &Factory{
		cfg:        cfg,
		http:       &http.Client{Timeout: cfg.CallTimeout()},
		dispatcher: dispatcher,
	}
}

// ForRequest builds a facade whose users client reads and writes the
// given credential store for the lifetime of one request.
func (f *Factory) ForRequest(creds upstream.CredentialStore) *GymFacade {
	return &GymFacade{
		users:       upstream.NewUsersClient(f.cfg.UsersBaseURL, f.http, creds),
		clients:     upstream.NewClientsClient(f.cfg.ClientsBaseURL, f.http),
		memberships: upstream.NewMembershipsClient(f.cfg.MembershipsBaseURL, f.http),
		dispatcher:  f.dispatcher,
	}
}

// GymFacade composes the three resource clients into the workflows the
// portal exposes. It is thin on purpose: credential plumbing and error
// normalization live in the upstream package.
type GymFacade struct {
	users       *upstream.UsersClient
	clients     *upstream.ClientsClient
	memberships *upstream.MembershipsClient
	dispatcher  events.Dispatcher
}

// Login authenticates against the users service. The users client has
// already persisted the token by the time this returns.
func (f *GymFacade) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	result, err := f.users.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.User != nil {
		f.publish(ctx, events.EventUserLoggedIn, events.UserLoggedInPayload{
			UserID: result.User.ID,
			Email:  result.User.Email,
			Role:   result.User.Role,
		})
	}
	return result, nil
}

// Logout ends the upstream session and drops the local credential.
func (f *GymFacade) Logout(ctx context.Context) error {
	if err := f.users.Logout(ctx); err != nil {
		return err
	}
	f.publish(ctx, events.EventUserLoggedOut, events.UserLoggedOutPayload{})
	return nil
}

// TestToken fetches a diagnostic token for the given email.
func (f *GymFacade) TestToken(ctx context.Context, email string) (string, error) {
	return f.users.TestToken(ctx, email)
}

// Users exposes the users resource client.
func (f *GymFacade) Users() *upstream.UsersClient {
	return f.users
}

// Clients exposes the clients resource client.
func (f *GymFacade) Clients() *upstream.ClientsClient {
	return f.clients
}

// Memberships exposes the memberships resource client.
func (f *GymFacade) Memberships() *upstream.MembershipsClient {
	return f.memberships
}

// RegisterMembership creates a membership for an existing client and
// writes the membership id back onto the client record.
func (f *GymFacade) RegisterMembership(ctx context.Context, clientID int, m *domain.Membership) (upstream.Result[*domain.Membership], error) {
	client, err := f.clients.GetByID(ctx, clientID)
	if err != nil {
		if apiErr, ok := upstream.AsAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			return upstream.Failure[*domain.Membership]("client not found"), nil
		}
		return upstream.Result[*domain.Membership]{}, err
	}

	result, err := f.memberships.Create(ctx, m)
	if err != nil || !result.OK() {
		return result, err
	}

	client.MembershipID = result.Value().ID
	if _, err := f.clients.Update(ctx, clientID, client); err != nil {
		return upstream.Result[*domain.Membership]{}, err
	}

	f.publish(ctx, events.EventMembershipRegistered, events.MembershipRegisteredPayload{
		ClientID:     clientID,
		MembershipID: result.Value().ID,
	})
	return result, nil
}

// RenewMembership re-stamps and updates an existing membership.
func (f *GymFacade) RenewMembership(ctx context.Context, membershipID int) (upstream.Result[*domain.Membership], error) {
	m, err := f.memberships.GetByID(ctx, membershipID)
	if err != nil {
		if apiErr, ok := upstream.AsAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			return upstream.Failure[*domain.Membership]("membership not found"), nil
		}
		return upstream.Result[*domain.Membership]{}, err
	}

	result, err := f.memberships.Update(ctx, membershipID, m)
	if err == nil && result.OK() {
		f.publish(ctx, events.EventMembershipRenewed, events.MembershipRenewedPayload{
			MembershipID: membershipID,
		})
	}
	return result, err
}

func (f *GymFacade) publish(ctx context.Context, eventType events.EventType, payload any) {
	if f.dispatcher == nil {
		return
	}
	_ = f.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
