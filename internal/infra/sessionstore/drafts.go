package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rentaldesk/internal/domain/draft"
	"rentaldesk/internal/infra"
	"rentaldesk/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrTooMuchContention = errs.New("draft changed concurrently too many times")

func (s *Store) SaveDraft(ctx context.Context, d *draft.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCorrupted, "failed to encode draft", err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, draftKey(d.ID), payload, s.ttl)
		pipe.SAdd(ctx, sessionDraftsKey(d.OwnerKey), d.ID)
		pipe.Expire(ctx, sessionDraftsKey(d.OwnerKey), s.ttl)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to save draft", err)
	}
	return nil
}

func (s *Store) GetDraft(ctx context.Context, id string) (*draft.Draft, error) {
	payload, err := s.rdb.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "draft not found", nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to load draft", err)
	}
	return s.decodeDraft(payload)
}

func (s *Store) decodeDraft(payload []byte) (*draft.Draft, error) {
	var d draft.Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupted, "failed to decode draft", err)
	}
	return &d, nil
}

// UpdateDraft loads the draft, applies fn and writes the result back only
// if nobody changed the draft in between; otherwise it retries on fresh
// state. An error from fn aborts without writing.
func (s *Store) UpdateDraft(ctx context.Context, id string, fn func(*draft.Draft) error) (*draft.Draft, error) {
	key := draftKey(id)

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		var updated *draft.Draft
		err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
			payload, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				return infra.WrapRepoErr(s.logger, infra.KindNotFound, "draft not found", nil)
			}
			if err != nil {
				return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to load draft", err)
			}
			d, err := s.decodeDraft(payload)
			if err != nil {
				return err
			}
			if err := fn(d); err != nil {
				return err
			}
			next, err := json.Marshal(d)
			if err != nil {
				return infra.WrapRepoErr(s.logger, infra.KindCorrupted, "failed to encode draft", err)
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, next, s.ttl)
				return nil
			})
			if err != nil {
				return err
			}
			updated = d
			return nil
		}, key)

		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}

		waitTime := time.Duration(attempt+1) * 10 * time.Millisecond
		s.logger.Debug("retrying draft update after concurrent change",
			slog.String("draft_id", id),
			slog.Int("attempt", attempt+1))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return nil, ErrTooMuchContention
}

func (s *Store) DeleteDraft(ctx context.Context, d *draft.Draft) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, draftKey(d.ID))
		pipe.SRem(ctx, sessionDraftsKey(d.OwnerKey), d.ID)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to delete draft", err)
	}
	return nil
}
