package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-portal/internal/domain"
)

func TestCreateStampsBookkeeping(t *testing.T) {
	var received domain.Client
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/clients", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		received.ID = 7
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	clients := NewClientsClient(server.URL, server.Client())
	result, err := clients.Create(context.Background(), &domain.Client{Name: "Ana"})
	require.NoError(t, err)
	require.True(t, result.OK())
	require.Empty(t, result.Message())

	require.Equal(t, 7, result.Value().ID)
	require.Equal(t, SystemActor, received.CreatedBy)
	require.WithinDuration(t, time.Now().UTC(), received.CreatedAt, time.Minute)
}

func TestCreateUpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"ci already registered"}`))
	}))
	defer server.Close()

	clients := NewClientsClient(server.URL, server.Client())
	result, err := clients.Create(context.Background(), &domain.Client{})
	require.NoError(t, err)
	require.False(t, result.OK())
	require.Equal(t, "ci already registered", result.Message())
	require.Nil(t, result.Value())
}

func TestCreateTransportFailureBecomesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	clients := NewClientsClient(server.URL, nil)
	result, err := clients.Create(context.Background(), &domain.Client{})
	require.NoError(t, err)
	require.False(t, result.OK())
	require.NotEmpty(t, result.Message())
}

func TestUpdateDefaultsModifierOnlyWhenUnset(t *testing.T) {
	var received domain.Membership
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/memberships/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	memberships := NewMembershipsClient(server.URL, server.Client())

	actor := "reception"
	m := &domain.Membership{Type: "monthly"}
	m.LastModifiedBy = &actor

	result, err := memberships.Update(context.Background(), 3, m)
	require.NoError(t, err)
	require.True(t, result.OK())
	require.NotNil(t, received.LastModifiedBy)
	require.Equal(t, "reception", *received.LastModifiedBy)
	require.NotNil(t, received.LastModification)
}

func TestUpdateNoContentResolvesToEntityAsSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	memberships := NewMembershipsClient(server.URL, server.Client())
	m := &domain.Membership{ID: 12, Type: "annual"}

	result, err := memberships.Update(context.Background(), 12, m)
	require.NoError(t, err)
	require.True(t, result.OK())
	require.Same(t, m, result.Value())
}

func TestListAndGetRaiseOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"maintenance"}`))
	}))
	defer server.Close()

	clients := NewClientsClient(server.URL, server.Client())

	_, err := clients.List(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	require.Equal(t, "maintenance", apiErr.Message)

	_, err = clients.GetByID(context.Background(), 1)
	apiErr, ok = AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, "maintenance", apiErr.Message)
}

func TestDeleteCollapsesErrorsToFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/clients/1" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	clients := NewClientsClient(server.URL, server.Client())
	require.True(t, clients.Delete(context.Background(), 1))
	require.False(t, clients.Delete(context.Background(), 99))
}

func TestMalformedSuccessBodyIsAHardError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	clients := NewClientsClient(server.URL, server.Client())

	_, err := clients.Create(context.Background(), &domain.Client{})
	require.Error(t, err)
	_, ok := AsAPIError(err)
	require.False(t, ok)
}
