package models

// ExamSummary is one row of the exam listing.
type ExamSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	State       string `json:"state"`
	StartTime   string `json:"startTime"`
}

// ExamDetail adds the ordered question list to an exam.
type ExamDetail struct {
	ExamSummary
	Questions []Question `json:"questions"`
}

// Question is a single exam question. SortOrder is the server-side position;
// answers are submitted by 1-based position, not by question id.
type Question struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	SortOrder int    `json:"sortOrder"`
}

// QuestionDraft is the payload for a new question inside an exam draft.
type QuestionDraft struct {
	Text string `json:"text"`
}

// ExamDraft is the payload for creating a new exam.
type ExamDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	StartTime   string          `json:"startTime"`
	Questions   []QuestionDraft `json:"questions"`
}
