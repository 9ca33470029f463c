package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Tarsier/internal/dto"
	"github.com/lshigami/Tarsier/internal/history"
	"github.com/lshigami/Tarsier/internal/model"
	"github.com/rs/zerolog/log"
)

// HistoryService wraps the history store with the boundary semantics the
// answer flow needs: writes and reads never fail the caller. History is a
// convenience feature; a dropped write or an empty listing must not break
// the primary answer-generation response.
type HistoryService interface {
	Record(ctx context.Context, sessionID string, rec model.AnswerRecord)
	List(ctx context.Context, sessionID string) []dto.HistoryEntryResponse
}

type historyService struct {
	store history.Store
}

func NewHistoryService(store history.Store) HistoryService {
	return &historyService{store: store}
}

func (s *historyService) Record(ctx context.Context, sessionID string, rec model.AnswerRecord) {
	if sessionID == "" {
		log.Warn().Msg("Missing session id, skip history persistence.")
		return
	}
	if err := s.store.Put(ctx, sessionID, &rec); err != nil {
		log.Warn().Err(err).Str("entryType", string(rec.EntryType)).Msg("Failed to persist history entry")
	}
}

func (s *historyService) List(ctx context.Context, sessionID string) []dto.HistoryEntryResponse {
	entries := make([]dto.HistoryEntryResponse, 0)
	if sessionID == "" {
		return entries
	}

	records, err := s.store.List(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read history, returning empty list")
		return entries
	}
	if err := copier.Copy(&entries, &records); err != nil {
		log.Error().Err(err).Msg("Failed to map history records")
		return make([]dto.HistoryEntryResponse, 0)
	}
	return entries
}
