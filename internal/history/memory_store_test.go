package history

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/Tarsier/internal/model"
)

func newTestStore(t *testing.T, ttl time.Duration, maxEntries int) *MemoryStore {
	t.Helper()
	s := NewMemoryStore(ttl, maxEntries)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutThenListRoundTrip(t *testing.T) {
	s := newTestStore(t, 24*time.Hour, 50)
	ctx := context.Background()

	rec := model.AnswerRecord{
		EntryType:   model.EntryTypeInterview,
		Transcript:  "hello",
		QuickAnswer: "Hi",
		FullAnswer:  "Hi there",
	}
	if err := s.Put(ctx, "abc", &rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if rec.ID == "" {
		t.Error("Put should assign an ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Put should assign CreatedAt")
	}
	if time.Since(rec.CreatedAt) > time.Second {
		t.Errorf("CreatedAt should be within the last second, got %v", rec.CreatedAt)
	}

	entries, err := s.List(ctx, "abc")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.EntryType != model.EntryTypeInterview {
		t.Errorf("entry_type = %q, want %q", got.EntryType, model.EntryTypeInterview)
	}
	if got.Transcript != "hello" || got.QuickAnswer != "Hi" || got.FullAnswer != "Hi there" {
		t.Errorf("unexpected record fields: %+v", got)
	}
	if got.Answer != "" || got.SelectedOption != "" || len(got.Options) != 0 {
		t.Errorf("vision variant fields should be empty on an interview record: %+v", got)
	}
}

func TestListOrdersMostRecentFirst(t *testing.T) {
	s := newTestStore(t, 24*time.Hour, 50)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return at }
		rec := model.AnswerRecord{EntryType: model.EntryTypeInterview, Transcript: fmt.Sprintf("q%d", i)}
		if err := s.Put(ctx, "ordered", &rec); err != nil {
			t.Fatalf("Put %d: %v", i, err)
		}
	}

	s.now = time.Now
	entries, err := s.List(ctx, "ordered")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	for i, entry := range entries {
		want := fmt.Sprintf("q%d", 4-i)
		if entry.Transcript != want {
			t.Errorf("entry %d transcript = %q, want %q", i, entry.Transcript, want)
		}
	}
}

func TestExpiryBoundary(t *testing.T) {
	ttl := 24 * time.Hour
	s := newTestStore(t, ttl, 50)
	ctx := context.Background()

	base := time.Now()
	s.now = func() time.Time { return base }
	rec := model.AnswerRecord{EntryType: model.EntryTypeVision, Answer: "42"}
	if err := s.Put(ctx, "expiring", &rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s.now = func() time.Time { return base.Add(ttl - time.Second) }
	entries, err := s.List(ctx, "expiring")
	if err != nil {
		t.Fatalf("List before expiry: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("record should still be visible just before TTL, got %d entries", len(entries))
	}

	s.now = func() time.Time { return base.Add(ttl + time.Second) }
	entries, err = s.List(ctx, "expiring")
	if err != nil {
		t.Fatalf("List after expiry: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("record should be gone just after TTL, got %d entries", len(entries))
	}
}

func TestSessionIsolation(t *testing.T) {
	s := newTestStore(t, 24*time.Hour, 50)
	ctx := context.Background()

	rec := model.AnswerRecord{EntryType: model.EntryTypeInterview, Transcript: "only in s1"}
	if err := s.Put(ctx, "s1", &rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	entries, err := s.List(ctx, "s2")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("s2 should not see s1's records, got %d entries", len(entries))
	}
}

func TestListUnknownSessionIsEmpty(t *testing.T) {
	s := newTestStore(t, 24*time.Hour, 50)

	entries, err := s.List(context.Background(), "never-written")
	if err != nil {
		t.Fatalf("List on unknown session should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(entries))
	}
}

func TestConcurrentPutsLoseNoWrites(t *testing.T) {
	const n = 100
	s := newTestStore(t, time.Hour, n*2)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := model.AnswerRecord{EntryType: model.EntryTypeInterview, Transcript: fmt.Sprintf("q%d", i)}
			if err := s.Put(ctx, "busy", &rec); err != nil {
				t.Errorf("Put %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	entries, err := s.List(ctx, "busy")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != n {
		t.Fatalf("expected %d entries, got %d", n, len(entries))
	}
	seen := make(map[string]bool, n)
	for _, entry := range entries {
		if seen[entry.ID] {
			t.Errorf("duplicate record id %q", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	s := newTestStore(t, 24*time.Hour, 3)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Second)
		s.now = func() time.Time { return at }
		rec := model.AnswerRecord{EntryType: model.EntryTypeInterview, Transcript: fmt.Sprintf("q%d", i)}
		if err := s.Put(ctx, "capped", &rec); err != nil {
			t.Fatalf("Put %d: %v", i, err)
		}
	}

	s.now = time.Now
	entries, err := s.List(ctx, "capped")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries after eviction, got %d", len(entries))
	}
	for i, want := range []string{"q4", "q3", "q2"} {
		if entries[i].Transcript != want {
			t.Errorf("entry %d transcript = %q, want %q", i, entries[i].Transcript, want)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s := NewMemoryStore(time.Hour, 10)
	if err := s.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
