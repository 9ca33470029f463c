package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/lshigami/Tarsier/internal/model"
	"github.com/rs/zerolog/log"
)

// RedisStore keeps each session's history in a Redis list under
// "history:<session id>", newest first. LTRIM bounds the list length and
// EXPIRE refreshes the key TTL on every write; on read, records older than
// the retention window are filtered out so a long-lived key never leaks
// stale entries.
type RedisStore struct {
	client     *redis.Client
	ttl        time.Duration
	maxEntries int
}

func NewRedisStore(client *redis.Client, ttl time.Duration, maxEntries int) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, maxEntries: maxEntries}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("history:%s", sessionID)
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, rec *model.AnswerRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal history record: %w", err)
	}

	key := historyKey(sessionID)
	pipe := s.client.Pipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, int64(s.maxEntries-1))
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("persist history record: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, sessionID string) ([]model.AnswerRecord, error) {
	key := historyKey(sessionID)
	rows, err := s.client.LRange(ctx, key, 0, int64(s.maxEntries-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read history list: %w", err)
	}

	cutoff := time.Now().Add(-s.ttl)
	records := make([]model.AnswerRecord, 0, len(rows))
	for _, raw := range rows {
		var rec model.AnswerRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			log.Warn().Err(err).Str("sessionID", sessionID).Msg("Dropping corrupt history payload")
			continue
		}
		if !rec.CreatedAt.After(cutoff) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
