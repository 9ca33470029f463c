package model

import "time"

// EntryType tags which variant of AnswerRecord fields is populated.
type EntryType string

const (
	EntryTypeInterview EntryType = "interview"
	EntryTypeVision    EntryType = "vision"
)

// AnswerRecord is one saved answer-generation result. Records are immutable
// after creation: they are inserted, listed, and eventually expired, never updated.
type AnswerRecord struct {
	ID        string    `json:"id"`
	EntryType EntryType `json:"entry_type"`
	CreatedAt time.Time `json:"created_at"`

	// interview variant
	Transcript  string `json:"transcript,omitempty"`
	QuickAnswer string `json:"quick_answer,omitempty"`
	FullAnswer  string `json:"full_answer,omitempty"`
	Position    string `json:"position,omitempty"`
	Model       string `json:"model,omitempty"`

	// vision variant
	Answer         string   `json:"answer,omitempty"`
	SelectedOption string   `json:"selected_option,omitempty"`
	Prompt         string   `json:"prompt,omitempty"`
	Options        []string `json:"options,omitempty"`
}
