package dto

import "time"

type HealthResponse struct {
	Status string `json:"status"`
}

type InterviewResponse struct {
	Transcript  string `json:"transcript"`
	QuickAnswer string `json:"quick_answer"`
	FullAnswer  string `json:"full_answer"`
}

type ImageQuestionResponse struct {
	Answer         string `json:"answer"`
	SelectedOption string `json:"selected_option,omitempty"`
}

// HistoryEntryResponse mirrors model.AnswerRecord; only the fields matching
// EntryType are populated, the other variant's fields are omitted.
type HistoryEntryResponse struct {
	ID        string    `json:"id"`
	EntryType string    `json:"entry_type"`
	CreatedAt time.Time `json:"created_at"`

	Transcript  string `json:"transcript,omitempty"`
	QuickAnswer string `json:"quick_answer,omitempty"`
	FullAnswer  string `json:"full_answer,omitempty"`
	Position    string `json:"position,omitempty"`
	Model       string `json:"model,omitempty"`

	Answer         string   `json:"answer,omitempty"`
	SelectedOption string   `json:"selected_option,omitempty"`
	Prompt         string   `json:"prompt,omitempty"`
	Options        []string `json:"options,omitempty"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
