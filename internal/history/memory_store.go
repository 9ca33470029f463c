package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Tarsier/internal/model"
)

// sweepInterval is how often the background sweeper drops fully-expired
// sessions. Expiry correctness does not depend on it; List purges lazily
// on every read. The sweep only bounds memory under low read traffic.
const sweepInterval = 10 * time.Minute

// MemoryStore is the in-process Store. Each session maps to a
// newest-first slice of records; all access is serialized by one mutex,
// including the purge that List performs.
type MemoryStore struct {
	mu         sync.Mutex
	sessions   map[string][]model.AnswerRecord
	ttl        time.Duration
	maxEntries int

	now func() time.Time

	stop      chan struct{}
	closeOnce sync.Once
}

func NewMemoryStore(ttl time.Duration, maxEntries int) *MemoryStore {
	s := &MemoryStore{
		sessions:   make(map[string][]model.AnswerRecord),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		stop:       make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

func (s *MemoryStore) Put(ctx context.Context, sessionID string, rec *model.AnswerRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	entries := append([]model.AnswerRecord{*rec}, s.sessions[sessionID]...)
	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		// Oldest entries are silently dropped; history is best-effort.
		entries = entries[:s.maxEntries]
	}
	s.sessions[sessionID] = entries
	return nil
}

func (s *MemoryStore) List(ctx context.Context, sessionID string) ([]model.AnswerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	kept := s.purgeLocked(sessionID, cutoff)
	if len(kept) == 0 {
		return nil, nil
	}

	out := make([]model.AnswerRecord, len(kept))
	copy(out, kept)
	return out, nil
}

// purgeLocked evicts expired records from one session. Caller holds s.mu.
func (s *MemoryStore) purgeLocked(sessionID string, cutoff time.Time) []model.AnswerRecord {
	entries, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	kept := entries[:0]
	for _, rec := range entries {
		if rec.CreatedAt.After(cutoff) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == 0 {
		delete(s.sessions, sessionID)
		return nil
	}
	s.sessions[sessionID] = kept
	return kept
}

func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			cutoff := s.now().Add(-s.ttl)
			for sessionID := range s.sessions {
				s.purgeLocked(sessionID, cutoff)
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	return nil
}
