package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Tarsier/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	sysPrefix = "You are interviewing for a "
	sysSuffix = " position. You will receive an audio transcription of the question. " +
		"Understand the question and answer it clearly.\n"
	shortInstruction = "Concisely respond, limiting your answer to 50 words."
	longInstruction  = "Before answering, think step by step and reply in no more than 150 words."

	transcribeInstruction = "Transcribe this audio recording verbatim. " +
		"Return only the transcript text, with no extra commentary."
)

const visionSystemPrompt = `You are an AI interview assistant analyzing questions from screenshots or photos.

Detect the question type and answer in the correct format. Never mention the question type in your answer.

====================
SYSTEM-DESIGN QUESTION DETECTION
====================
Treat the question as SYSTEM DESIGN if it includes ANY of these:
- 'Design a system that...'
- 'How would you design...'
- 'Architecture for...'
- 'High-level design / Low-level design'
- Descriptions involving components like: API gateway, cache, load balancer, queue, microservices, workers.
- Questions about scaling, reliability, storage, concurrency, or traffic.
- Images/diagrams with boxes, arrows, flows, or service components.

====================
ANSWER FORMATS
====================
1. MULTIPLE-CHOICE -> Return EXACTLY: ` + "`Option <letter>: <text>`" + ` (no explanations).

2. CODING / DSA -> ONLY executable Python in a ` + "```python" + ` block (inline comments allowed).

3. SYSTEM DESIGN -> Provide a full solution with the sections:
   - Overview
   - Core Components
   - Data Flow (step-by-step)
   - Storage & Databases
   - Scaling & Reliability
   - Failure Handling
   - Trade-offs & Alternatives

   For every component you mention, include a short, beginner-friendly explanation immediately after the component name.
   These explanations must be concise but informative.

4. ANY OTHER QUESTION -> Answer in four clear sentences.

====================
IMPORTANT RULES
====================
- Never identify the question type in your output.
- Never summarize the prompt.
- For system design: always provide concrete, detailed, sequential architecture.
- Explanations must appear immediately next to each component.
`

// GeminiLLMService is the adapter over the Gemini API: audio transcription,
// interview answer generation, and screenshot question answering.
type GeminiLLMService interface {
	Transcribe(ctx context.Context, mimeType string, audio []byte) (string, error)
	GenerateAnswer(ctx context.Context, modelName, transcript, position, contextInfo string, short bool) (string, error)
	GenerateImageAnswer(ctx context.Context, modelName, question, optionBlock, mimeType string, image []byte, extraInstruction string) (string, error)
}

type geminiLLMService struct {
	client *genai.Client
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiLLMService{client: client, cfg: cfg}, nil
}

// buildContextPrompt mirrors the interview system prompt: role framing,
// length instruction, then whatever reference material the candidate supplied.
func buildContextPrompt(position, contextInfo string, short bool) string {
	prompt := sysPrefix + position + sysSuffix
	if short {
		prompt += shortInstruction
	} else {
		prompt += longInstruction
	}
	if trimmed := strings.TrimSpace(contextInfo); trimmed != "" {
		prompt += "\n\nReference Information:\n" + trimmed
	}
	return prompt
}

func (s *geminiLLMService) Transcribe(ctx context.Context, mimeType string, audio []byte) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	model := s.client.GenerativeModel(s.cfg.Gemini.DefaultModel)
	model.SetTemperature(0.0)

	resp, err := model.GenerateContent(ctx,
		genai.Text(transcribeInstruction),
		genai.Blob{MIMEType: mimeType, Data: audio},
	)
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during transcription")
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	transcript := responseText(resp)
	if transcript == "" {
		return "", fmt.Errorf("gemini returned no transcript text")
	}
	return strings.TrimSpace(transcript), nil
}

func (s *geminiLLMService) GenerateAnswer(ctx context.Context, modelName, transcript, position, contextInfo string, short bool) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}
	if modelName == "" {
		modelName = s.cfg.Gemini.DefaultModel
	}

	model := s.client.GenerativeModel(modelName)
	if short {
		// Deterministic quick answer; the full answer is allowed to roam.
		model.SetTemperature(0.0)
	} else {
		model.SetTemperature(0.7)
	}

	prompt := buildContextPrompt(position, contextInfo, short)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt+"\n\nQuestion:\n"+transcript),
	)
	if err != nil {
		log.Error().Err(err).Bool("short", short).Msg("Gemini API error during answer generation")
		return "", fmt.Errorf("answer generation failed: %w", err)
	}

	answer := responseText(resp)
	if answer == "" {
		return "", fmt.Errorf("gemini returned no answer text")
	}
	return strings.TrimSpace(answer), nil
}

func (s *geminiLLMService) GenerateImageAnswer(ctx context.Context, modelName, question, optionBlock, mimeType string, image []byte, extraInstruction string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}
	if modelName == "" {
		modelName = s.cfg.Gemini.VisionModel
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	model := s.client.GenerativeModel(modelName)

	var promptBuilder strings.Builder
	promptBuilder.WriteString(visionSystemPrompt)
	promptBuilder.WriteString("\n\n")
	if extraInstruction != "" {
		promptBuilder.WriteString(extraInstruction)
		promptBuilder.WriteString("\n\n")
	}
	promptBuilder.WriteString(question)
	if optionBlock != "" {
		promptBuilder.WriteString("\n\n")
		promptBuilder.WriteString(optionBlock)
	}

	resp, err := model.GenerateContent(ctx,
		genai.Text(promptBuilder.String()),
		genai.ImageData(strings.TrimPrefix(mimeType, "image/"), image),
	)
	if err != nil {
		log.Error().Err(err).Str("model", modelName).Msg("Gemini API error during image question")
		return "", fmt.Errorf("image answer generation failed: %w", err)
	}

	answer := responseText(resp)
	if answer == "" {
		return "", fmt.Errorf("gemini returned no answer text")
	}
	return strings.TrimSpace(answer), nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
