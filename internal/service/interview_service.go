package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/Tarsier/config"
	"github.com/lshigami/Tarsier/internal/dto"
	"github.com/lshigami/Tarsier/internal/model"
	"github.com/rs/zerolog/log"
)

// InterviewService runs the audio-question pipeline: transcribe the recorded
// snippet, generate a quick and a full answer, and record the result into
// the session's history.
type InterviewService interface {
	ProcessInterview(ctx context.Context, sessionID string, input dto.InterviewInput) (*dto.InterviewResponse, error)
}

type interviewService struct {
	llm     GeminiLLMService
	history HistoryService
	cfg     *config.Config
}

func NewInterviewService(llm GeminiLLMService, history HistoryService, cfg *config.Config) InterviewService {
	return &interviewService{llm: llm, history: history, cfg: cfg}
}

func (s *interviewService) ProcessInterview(ctx context.Context, sessionID string, input dto.InterviewInput) (*dto.InterviewResponse, error) {
	position := input.Position
	if position == "" {
		position = s.cfg.Interview.DefaultPosition
	}
	modelName := input.Model
	if modelName == "" {
		modelName = s.cfg.Gemini.DefaultModel
	}

	transcript, err := s.llm.Transcribe(ctx, input.MIMEType, input.Audio)
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}

	contextInfo := mergeContextSections(input)

	quickAnswer, err := s.llm.GenerateAnswer(ctx, modelName, transcript, position, contextInfo, true)
	if err != nil {
		return nil, fmt.Errorf("generate quick answer: %w", err)
	}
	fullAnswer, err := s.llm.GenerateAnswer(ctx, modelName, transcript, position, contextInfo, false)
	if err != nil {
		return nil, fmt.Errorf("generate full answer: %w", err)
	}

	log.Info().Str("position", position).Str("model", modelName).Msg("Interview snippet processed")

	s.history.Record(ctx, sessionID, model.AnswerRecord{
		EntryType:   model.EntryTypeInterview,
		Transcript:  transcript,
		QuickAnswer: quickAnswer,
		FullAnswer:  fullAnswer,
		Position:    position,
		Model:       modelName,
	})

	return &dto.InterviewResponse{
		Transcript:  transcript,
		QuickAnswer: quickAnswer,
		FullAnswer:  fullAnswer,
	}, nil
}

// mergeContextSections joins the non-empty candidate-supplied sections into
// one labelled reference block.
func mergeContextSections(input dto.InterviewInput) string {
	sections := []struct {
		label string
		value string
	}{
		{"Job Description", input.JobDescription},
		{"Company Info", input.CompanyInfo},
		{"About You", input.AboutYou},
		{"Resume", input.Resume},
	}

	var parts []string
	for _, section := range sections {
		if trimmed := strings.TrimSpace(section.value); trimmed != "" {
			parts = append(parts, section.label+": "+trimmed)
		}
	}
	return strings.Join(parts, "\n\n")
}
