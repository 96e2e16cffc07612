package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TokenKey is the session entry holding the bearer token.
const TokenKey = "jwt_token"

// Store is the shared, externally synchronized session storage: a
// key-value association per browser session, held in redis with an
// idle-timeout TTL. Reads never fail on absence; a missing entry is a
// normal outcome for an anonymous visitor.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore wraps the redis client with session semantics.
func NewStore(client *redis.Client, idleTimeout time.Duration, logger *zap.Logger) *Store {
	if idleTimeout <= 0 {
		idleTimeout = 30 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{client: client, ttl: idleTimeout, logger: logger}
}

func sessionKey(sessionID, key string) string {
	return "sess:" + sessionID + ":" + key
}

// Get reads one session entry and refreshes the idle timeout. Absence
// and storage errors both come back as not-found; errors are logged,
// never raised.
func (s *Store) Get(ctx context.Context, sessionID, key string) (string, bool) {
	value, err := s.client.GetEx(ctx, sessionKey(sessionID, key), s.ttl).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("session read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// Set writes one session entry with the idle-timeout TTL.
func (s *Store) Set(ctx context.Context, sessionID, key, value string) error {
	return s.client.Set(ctx, sessionKey(sessionID, key), value, s.ttl).Err()
}

// Delete drops one session entry.
func (s *Store) Delete(ctx context.Context, sessionID, key string) error {
	return s.client.Del(ctx, sessionKey(sessionID, key)).Err()
}

// Ping verifies storage connectivity for readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("session store not configured")
	}
	return s.client.Ping(ctx).Err()
}
