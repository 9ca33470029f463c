package history

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lshigami/Tarsier/config"
	"github.com/lshigami/Tarsier/internal/model"
	"github.com/rs/zerolog/log"
)

// Store keeps per-session answer records for a bounded retention window.
// The session id is an opaque partition key minted by the client; it is
// never validated beyond being non-empty.
//
// Put appends a record to the session's list, assigning ID and CreatedAt
// if unset. List returns the session's unexpired records, most recent
// first, and never fails for an unknown session.
type Store interface {
	Put(ctx context.Context, sessionID string, rec *model.AnswerRecord) error
	List(ctx context.Context, sessionID string) ([]model.AnswerRecord, error)
	Close() error
}

// New selects the backing store from config: Redis when REDIS_URL is set
// and reachable, otherwise the in-process store. History is a best-effort
// feature, so an unreachable Redis degrades to memory instead of failing
// startup.
func New(cfg *config.Config) (Store, error) {
	if cfg.History.RedisURL == "" {
		log.Info().Msg("History store: in-memory")
		return NewMemoryStore(cfg.History.TTL, cfg.History.MaxEntries), nil
	}

	opts, err := redis.ParseURL(cfg.History.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid REDIS_URL, falling back to in-memory history store")
		return NewMemoryStore(cfg.History.TTL, cfg.History.MaxEntries), nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable, falling back to in-memory history store")
		_ = client.Close()
		return NewMemoryStore(cfg.History.TTL, cfg.History.MaxEntries), nil
	}

	log.Info().Msg("History store: redis")
	return NewRedisStore(client, cfg.History.TTL, cfg.History.MaxEntries), nil
}
