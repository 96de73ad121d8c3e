package flashdeck

import "time"

// Flashcard represents a single term/definition pair shown to the user.
// Both fields are non-empty after trimming; cards are immutable once parsed.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Deck represents the full set of flashcards generated for one topic
type Deck struct {
	ID        string      `json:"id"`
	Topic     string      `json:"topic"`
	Cards     []Flashcard `json:"cards"`
	CreatedAt time.Time   `json:"created_at"`
}

// GenerationRequest represents a request to generate flashcards
type GenerationRequest struct {
	Topic    string `json:"topic"`
	NumCards int    `json:"num_cards,omitempty"`
}

// QuizState represents where a quiz session is in its lifecycle
type QuizState string

const (
	StateNotStarted QuizState = "not_started"
	StateInProgress QuizState = "in_progress"
	StateAnswered   QuizState = "answered"
	StateFinished   QuizState = "finished"
)

// QuestionView is what the presentation layer needs to render one question:
// the definition as the prompt plus the shuffled choice list.
type QuestionView struct {
	Number  int      `json:"number"` // 1-based, for display
	Total   int      `json:"total"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

// AnswerResult represents the outcome of answering the current question.
// CorrectTerm and Selected let the UI reveal the right option and mark a
// wrong pick without recomputing anything.
type AnswerResult struct {
	Correct     bool   `json:"correct"`
	CorrectTerm string `json:"correct_term"`
	Selected    string `json:"selected"`
}

// QuizSummary represents the final score of a finished session
type QuizSummary struct {
	Score   int `json:"score"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// QuizResult represents a finished quiz recorded in the history database
type QuizResult struct {
	ID         string    `json:"id"`
	Topic      string    `json:"topic"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percent    int       `json:"percent"`
	FinishedAt time.Time `json:"finished_at"`
}

// GenerationRecord represents one generation attempt in the audit trail
type GenerationRecord struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	NumCards  int       `json:"num_cards"`
	Status    string    `json:"status"` // "ok", "failed", "empty"
	CreatedAt time.Time `json:"created_at"`
}
