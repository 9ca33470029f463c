package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsier/internal/history"
	"github.com/lshigami/Tarsier/internal/model"
	"github.com/lshigami/Tarsier/internal/service"
)

func newHistoryRouter(t *testing.T) (*gin.Engine, history.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := history.NewMemoryStore(24*time.Hour, 50)
	t.Cleanup(func() { _ = store.Close() })

	ctrl := NewHistoryController(service.NewHistoryService(store))
	router := gin.New()
	router.GET("/api/history", ctrl.GetHistory)
	return router, store
}

func getHistory(t *testing.T, router *gin.Engine, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetHistoryEmptySessionReturnsEmptyArray(t *testing.T) {
	router, _ := newHistoryRouter(t)

	w := getHistory(t, router, "never-seen")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestGetHistoryReturnsRecordsMostRecentFirst(t *testing.T) {
	router, store := newHistoryRouter(t)
	ctx := context.Background()

	first := model.AnswerRecord{EntryType: model.EntryTypeInterview, Transcript: "first", QuickAnswer: "a", FullAnswer: "b"}
	if err := store.Put(ctx, "abc", &first); err != nil {
		t.Fatalf("Put: %v", err)
	}
	second := model.AnswerRecord{
		EntryType: model.EntryTypeVision,
		CreatedAt: first.CreatedAt.Add(time.Minute),
		Answer:    "Option A: yes", SelectedOption: "Option A",
		Options: []string{"yes", "no"},
	}
	if err := store.Put(ctx, "abc", &second); err != nil {
		t.Fatalf("Put: %v", err)
	}

	w := getHistory(t, router, "abc")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0]["entry_type"] != "vision" || entries[1]["entry_type"] != "interview" {
		t.Errorf("wrong ordering: %v then %v", entries[0]["entry_type"], entries[1]["entry_type"])
	}

	// Only the variant fields matching entry_type may be present.
	if _, ok := entries[0]["transcript"]; ok {
		t.Error("vision entry must not carry interview fields")
	}
	if _, ok := entries[1]["answer"]; ok {
		t.Error("interview entry must not carry vision fields")
	}

	// created_at serializes as ISO-8601.
	createdAt, ok := entries[0]["created_at"].(string)
	if !ok {
		t.Fatalf("created_at is not a string: %v", entries[0]["created_at"])
	}
	if _, err := time.Parse(time.RFC3339, createdAt); err != nil {
		t.Errorf("created_at %q is not RFC3339: %v", createdAt, err)
	}
}

func TestGetHistoryFallsBackToDefaultSession(t *testing.T) {
	router, store := newHistoryRouter(t)

	rec := model.AnswerRecord{EntryType: model.EntryTypeInterview, Transcript: "headerless"}
	if err := store.Put(context.Background(), fallbackSessionID, &rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	w := getHistory(t, router, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(entries) != 1 || entries[0]["transcript"] != "headerless" {
		t.Fatalf("missing header should read the fallback partition, got %v", entries)
	}
}

func TestGetHistoryIsolatesSessions(t *testing.T) {
	router, store := newHistoryRouter(t)

	rec := model.AnswerRecord{EntryType: model.EntryTypeInterview, Transcript: "private"}
	if err := store.Put(context.Background(), "s1", &rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	w := getHistory(t, router, "s2")
	if body := w.Body.String(); body != "[]" {
		t.Errorf("s2 must not see s1's history, got %q", body)
	}
}
