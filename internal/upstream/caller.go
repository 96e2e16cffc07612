package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SystemActor is the bookkeeping identity stamped onto entities when
// the caller did not name one.
const SystemActor = "System"

// caller issues HTTP calls against one upstream microservice. It is
// stateless apart from its credential source, which is request-scoped;
// credential-unaware services pass a nil source.
type caller struct {
	base  string
	http  *http.Client
	creds CredentialSource
	clock func() time.Time
}

func newCaller(base string, client *http.Client, creds CredentialSource) *caller {
	if client == nil {
		client = http.DefaultClient
	}
	return &caller{
		base:  strings.TrimRight(base, "/"),
		http:  client,
		creds: creds,
		clock: time.Now,
	}
}

// do issues one call. Payloads are JSON-encoded. When authed is set the
// current bearer credential is attached; an unset credential fails fast
// before anything leaves the process. Transport failures come back as
// an APIError with no status.
func (c *caller) do(ctx context.Context, method, path string, payload any, authed bool) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if c.creds == nil {
			return nil, ErrMissingCredential
		}
		token, ok := c.creds.Get()
		if !ok || token == "" {
			return nil, ErrMissingCredential
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, NewTransportError(err)
	}
	return resp, nil
}

// authed reports whether this caller attaches credentials at all.
func (c *caller) authed() bool {
	return c.creds != nil
}

// getJSON performs a GET and decodes the success body into out. Read
// failures are raised, not wrapped: a non-success status or transport
// error surfaces directly to the caller.
func (c *caller) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, c.authed())
	if err != nil {
		return err
	}
	if err := CheckResponse(resp); err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode GET %s response: %w", path, err)
	}
	return nil
}

// auditablePtr constrains mutating helpers to pointer entities that
// carry audit bookkeeping.
type auditablePtr[E any] interface {
	*E
	StampCreated(time.Time, string)
	StampModified(time.Time, string)
}

func list[E any](ctx context.Context, c *caller, path string) ([]E, error) {
	var out []E
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func getByID[E any](ctx context.Context, c *caller, path string, id int) (*E, error) {
	out := new(E)
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d", path, id), out); err != nil {
		return nil, err
	}
	return out, nil
}

// create stamps creation bookkeeping, posts the entity and wraps the
// outcome in a Result. A typed upstream error becomes Failure; only a
// malformed success body or a missing credential comes back as a hard
// error.
func create[E any, PE auditablePtr[E]](ctx context.Context, c *caller, path string, entity PE) (Result[PE], error) {
	entity.StampCreated(c.clock().UTC(), SystemActor)

	resp, err := c.do(ctx, http.MethodPost, path, entity, c.authed())
	if err != nil {
		return resultFromError[PE](err)
	}
	if err := CheckResponse(resp); err != nil {
		return resultFromError[PE](err)
	}
	defer resp.Body.Close()

	created := PE(new(E))
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return Result[PE]{}, fmt.Errorf("decode POST %s response: %w", path, err)
	}
	return Success(created), nil
}

// update stamps modification bookkeeping, puts the entity and wraps the
// outcome in a Result. A 204 or empty success body resolves to Success
// carrying the entity exactly as it was sent.
func update[E any, PE auditablePtr[E]](ctx context.Context, c *caller, path string, id int, entity PE) (Result[PE], error) {
	entity.StampModified(c.clock().UTC(), SystemActor)

	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", path, id), entity, c.authed())
	if err != nil {
		return resultFromError[PE](err)
	}
	if err := CheckResponse(resp); err != nil {
		return resultFromError[PE](err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 {
		return Success(entity), nil
	}

	updated := PE(new(E))
	if err := json.NewDecoder(resp.Body).Decode(updated); err != nil {
		if errors.Is(err, io.EOF) {
			return Success(entity), nil
		}
		return Result[PE]{}, fmt.Errorf("decode PUT %s/%d response: %w", path, id, err)
	}
	return Success(updated), nil
}

// remove deletes by id and collapses any failure into false. Delete is
// idempotent from the caller's perspective, so the specific error is
// discarded at this layer.
func remove(ctx context.Context, c *caller, path string, id int) bool {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, c.authed())
	if err != nil {
		return false
	}
	if err := CheckResponse(resp); err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// resultFromError converts a typed upstream error into the Failure
// variant. Anything that is not an APIError (a missing credential, an
// encode bug) stays a hard error.
func resultFromError[T any](err error) (Result[T], error) {
	if apiErr, ok := AsAPIError(err); ok {
		return Failure[T](apiErr.Message), nil
	}
	return Result[T]{}, err
}
