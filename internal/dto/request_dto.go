package dto

// InterviewInput carries one recorded audio snippet plus the context the
// candidate filled in on the client. Context sections that are empty are
// omitted from the prompt.
type InterviewInput struct {
	Audio    []byte
	Filename string
	MIMEType string

	Position       string
	Model          string
	JobDescription string
	CompanyInfo    string
	AboutYou       string
	Resume         string
}

// ImageQuestionInput carries one screenshot/photo of a question.
type ImageQuestionInput struct {
	Image    []byte
	MIMEType string

	Prompt  string
	Options []string
	Model   string
}
