package sessionstore

import (
	"context"
	"encoding/json"
	"errors"

	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/infra"

	"github.com/redis/go-redis/v9"
)

// Put records the latest known state of each reservation for the session.
// Later writes replace earlier ones.
func (s *Store) Put(ctx context.Context, sessionKey string, snaps ...reservation.Snapshot) error {
	if len(snaps) == 0 {
		return nil
	}
	values := make([]any, 0, len(snaps)*2)
	for _, snap := range snaps {
		if snap.ID == "" {
			continue
		}
		payload, err := json.Marshal(snap)
		if err != nil {
			return infra.WrapRepoErr(s.logger, infra.KindCorrupted, "failed to encode reservation", err)
		}
		values = append(values, snap.ID, payload)
	}
	if len(values) == 0 {
		return nil
	}

	key := boardKey(sessionKey)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values...)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to update reservation board", err)
	}
	return nil
}

// Get returns the cached reservation, or nil when the session has not seen it.
func (s *Store) Get(ctx context.Context, sessionKey, id string) (*reservation.Snapshot, error) {
	payload, err := s.rdb.HGet(ctx, boardKey(sessionKey), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to read reservation board", err)
	}
	var snap reservation.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupted, "failed to decode reservation", err)
	}
	return &snap, nil
}
