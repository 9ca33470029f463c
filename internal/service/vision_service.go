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

const defaultVisionQuestion = "Analyze this screenshot. Decide if it is a multiple-choice, " +
	"coding/DSA, or system-design question. Follow the rules below."

const followUpInstruction = "Provide the complete answer, not a classification. " +
	"If the screenshot lists multiple system design prompts, give a structured response for each item " +
	"using the required sections (Overview, Components, Data Flow, Storage, Scaling, Trade-offs). " +
	"Never mention that it is a system-design question; just deliver the design(s)."

// VisionService answers questions captured as screenshots or photos and
// records the result into the session's history.
type VisionService interface {
	AnswerImageQuestion(ctx context.Context, sessionID string, input dto.ImageQuestionInput) (*dto.ImageQuestionResponse, error)
}

type visionService struct {
	llm     GeminiLLMService
	history HistoryService
	cfg     *config.Config
}

func NewVisionService(llm GeminiLLMService, history HistoryService, cfg *config.Config) VisionService {
	return &visionService{llm: llm, history: history, cfg: cfg}
}

func (s *visionService) AnswerImageQuestion(ctx context.Context, sessionID string, input dto.ImageQuestionInput) (*dto.ImageQuestionResponse, error) {
	modelName := input.Model
	if modelName == "" {
		modelName = s.cfg.Gemini.VisionModel
	}

	question := strings.TrimSpace(input.Prompt)
	if question == "" {
		question = defaultVisionQuestion
	}

	optionBlock := buildOptionBlock(input.Options)

	answer, err := s.llm.GenerateImageAnswer(ctx, modelName, question, optionBlock, input.MIMEType, input.Image, "")
	if err != nil {
		return nil, fmt.Errorf("answer image question: %w", err)
	}

	if needsFollowUp(answer) {
		log.Debug().Msg("Vision reply looked like a classification; requesting full solution.")
		answer, err = s.llm.GenerateImageAnswer(ctx, modelName, question, optionBlock, input.MIMEType, input.Image, followUpInstruction)
		if err != nil {
			return nil, fmt.Errorf("answer image question (follow-up): %w", err)
		}
	}

	selectedOption := matchSelectedOption(answer, input.Options)

	s.history.Record(ctx, sessionID, model.AnswerRecord{
		EntryType:      model.EntryTypeVision,
		Answer:         answer,
		SelectedOption: selectedOption,
		Prompt:         strings.TrimSpace(input.Prompt),
		Options:        input.Options,
	})

	return &dto.ImageQuestionResponse{
		Answer:         answer,
		SelectedOption: selectedOption,
	}, nil
}

// ParseOptions splits the raw options form field into a normalized list.
// Semicolon-separated wins over one-option-per-line.
func ParseOptions(raw string) []string {
	if raw == "" {
		return nil
	}

	var parts []string
	if strings.Contains(raw, ";") {
		parts = strings.Split(raw, ";")
	} else {
		parts = strings.Split(raw, "\n")
	}

	var options []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

// buildOptionBlock letters the answer choices the way the vision prompt
// expects them: "Option A: ...", "Option B: ...".
func buildOptionBlock(options []string) string {
	if len(options) == 0 {
		return ""
	}
	lines := make([]string, 0, len(options))
	for idx, value := range options {
		lines = append(lines, fmt.Sprintf("Option %c: %s", 'A'+idx, value))
	}
	return strings.Join(lines, "\n")
}

// needsFollowUp reports whether the model echoed a classification of the
// question instead of answering it.
func needsFollowUp(text string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	if cleaned == "" {
		return true
	}
	classificationSnippets := []string{
		"system design question",
		"this is a system design",
		"not coding/dsa",
		"not multiple-choice",
		"multiple choice question",
		"this screenshot lists prompts",
		"identify the question type",
	}
	for _, snippet := range classificationSnippets {
		if strings.Contains(cleaned, snippet) {
			return true
		}
	}
	if len(cleaned) < 120 && (strings.Contains(cleaned, "system design") || strings.Contains(cleaned, "coding question")) {
		return true
	}
	return false
}

// matchSelectedOption finds which lettered option the answer committed to,
// if options were supplied at all.
func matchSelectedOption(answer string, options []string) string {
	lowered := strings.ToLower(answer)
	for idx := range options {
		label := fmt.Sprintf("Option %c", 'A'+idx)
		if strings.Contains(lowered, strings.ToLower(label)) {
			return label
		}
	}
	return ""
}
