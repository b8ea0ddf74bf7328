package sessionstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rentaldesk/internal/infra"
	"rentaldesk/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rentaldesk:"

// Store keeps per-session state in redis: booking drafts and the
// reservation board. Every key expires after the session TTL.
type Store struct {
	rdb        redis.UniversalClient
	ttl        time.Duration
	logger     *slog.Logger
	maxRetries int
}

func NewStore(rdb redis.UniversalClient, cfg config.RedisConfig, logger *slog.Logger) *Store {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{
		rdb:        rdb,
		ttl:        ttl,
		logger:     logger,
		maxRetries: 5,
	}
}

func draftKey(id string) string {
	return keyPrefix + "draft:" + id
}

func sessionDraftsKey(sessionKey string) string {
	return keyPrefix + "session:" + sessionKey + ":drafts"
}

func boardKey(sessionKey string) string {
	return keyPrefix + "session:" + sessionKey + ":board"
}

// Purge removes everything the session owns. It is called on logout.
func (s *Store) Purge(ctx context.Context, sessionKey string) error {
	ids, err := s.rdb.SMembers(ctx, sessionDraftsKey(sessionKey)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to list session drafts", err)
	}

	keys := make([]string, 0, len(ids)+2)
	for _, id := range ids {
		keys = append(keys, draftKey(id))
	}
	keys = append(keys, sessionDraftsKey(sessionKey), boardKey(sessionKey))

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to purge session state", err)
	}
	s.logger.Debug("session state purged", slog.String("session", sessionKey), slog.Int("drafts", len(ids)))
	return nil
}
