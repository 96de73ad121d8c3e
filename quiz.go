package flashdeck

import (
	"errors"
	"math/rand"
	"time"
)

// MinQuizCards is the smallest deck a quiz can run on: one correct answer
// plus three wrong ones.
const MinQuizCards = 4

// maxWrongChoices is how many incorrect options accompany the correct term.
const maxWrongChoices = 3

var (
	// ErrNotEnoughCards is returned when a quiz is started on a deck with
	// fewer than MinQuizCards cards.
	ErrNotEnoughCards = errors.New("not enough flashcards for a quiz: need at least 4")

	// ErrNotInProgress is returned when an answer arrives outside the
	// in-progress state.
	ErrNotInProgress = errors.New("no question awaiting an answer")

	// ErrNotAnswered is returned when next is requested before the current
	// question has been answered.
	ErrNotAnswered = errors.New("current question has not been answered")

	// ErrNotFinished is returned when a summary is requested before the
	// session has finished.
	ErrNotFinished = errors.New("quiz is not finished")

	// ErrNoQuestion is returned when there is no current question to show.
	ErrNoQuestion = errors.New("no current question")
)

// QuizSession manages one run-through of multiple-choice questions over a
// fixed flashcard set. The question order is a uniform random permutation
// fixed at start; only index and score advance, and only forward.
type QuizSession struct {
	order   []Flashcard
	index   int
	score   int
	state   QuizState
	current QuestionView
	rng     *rand.Rand
}

// NewQuizSession creates and starts a quiz session over the given cards.
// It fails with ErrNotEnoughCards if the deck is too small to build a
// four-choice question.
func NewQuizSession(cards []Flashcard) (*QuizSession, error) {
	return newQuizSession(cards, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newQuizSession(cards []Flashcard, rng *rand.Rand) (*QuizSession, error) {
	if len(cards) < MinQuizCards {
		return nil, ErrNotEnoughCards
	}

	qs := &QuizSession{
		order: make([]Flashcard, len(cards)),
		state: StateNotStarted,
		rng:   rng,
	}
	copy(qs.order, cards)
	qs.start()
	return qs, nil
}

// start shuffles the question order and resets all counters. The deck size
// precondition is checked at construction, so start itself cannot fail.
func (qs *QuizSession) start() {
	qs.rng.Shuffle(len(qs.order), func(i, j int) {
		qs.order[i], qs.order[j] = qs.order[j], qs.order[i]
	})
	qs.index = 0
	qs.score = 0
	qs.state = StateInProgress
	qs.current = qs.buildQuestion()
}

// State returns the session's current lifecycle state
func (qs *QuizSession) State() QuizState {
	return qs.state
}

// Question returns the current question view. It is valid while a question
// is on screen, both before and after it has been answered.
func (qs *QuizSession) Question() (QuestionView, error) {
	if qs.state != StateInProgress && qs.state != StateAnswered {
		return QuestionView{}, ErrNoQuestion
	}
	return qs.current, nil
}

// Answer grades the selected term against the current question. The result
// carries both the correct term and the selection so the presentation layer
// can reveal the right option and mark a wrong pick.
func (qs *QuizSession) Answer(selected string) (AnswerResult, error) {
	if qs.state != StateInProgress {
		return AnswerResult{}, ErrNotInProgress
	}

	correct := qs.order[qs.index].Term
	result := AnswerResult{
		Correct:     selected == correct,
		CorrectTerm: correct,
		Selected:    selected,
	}
	if result.Correct {
		qs.score++
	}
	qs.state = StateAnswered
	return result, nil
}

// Next advances past an answered question. It reports done=true once the
// final question has been passed and the session is finished.
func (qs *QuizSession) Next() (done bool, err error) {
	if qs.state != StateAnswered {
		return false, ErrNotAnswered
	}

	qs.index++
	if qs.index == len(qs.order) {
		qs.state = StateFinished
		qs.current = QuestionView{}
		return true, nil
	}
	qs.state = StateInProgress
	qs.current = qs.buildQuestion()
	return false, nil
}

// End finishes the session immediately, fixing the score at whatever has
// been accumulated so far. Valid from any state.
func (qs *QuizSession) End() {
	qs.state = StateFinished
	qs.current = QuestionView{}
}

// Restart reshuffles the same cards into a fresh, independent run: new
// permutation, score and index back to zero. Valid from any state.
func (qs *QuizSession) Restart() {
	qs.start()
}

// Score returns the number of correct answers so far
func (qs *QuizSession) Score() int {
	return qs.score
}

// Summary reports the final score once the session has finished
func (qs *QuizSession) Summary() (QuizSummary, error) {
	if qs.state != StateFinished {
		return QuizSummary{}, ErrNotFinished
	}
	total := len(qs.order)
	return QuizSummary{
		Score:   qs.score,
		Total:   total,
		Percent: roundPercent(qs.score, total),
	}, nil
}

// buildQuestion derives the choice set for the question at the current
// index: the correct term plus up to three distinct wrong terms sampled
// without replacement from the rest of the deck. Duplicate term strings
// collapse, so the pool can run short; fewer than four choices is fine.
func (qs *QuizSession) buildQuestion() QuestionView {
	correct := qs.order[qs.index].Term

	seen := map[string]bool{correct: true}
	pool := make([]string, 0, len(qs.order)-1)
	for i, card := range qs.order {
		if i == qs.index || seen[card.Term] {
			continue
		}
		seen[card.Term] = true
		pool = append(pool, card.Term)
	}

	qs.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := min(maxWrongChoices, len(pool))
	choices := make([]string, 0, n+1)
	choices = append(choices, pool[:n]...)
	choices = append(choices, correct)
	qs.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return QuestionView{
		Number:  qs.index + 1,
		Total:   len(qs.order),
		Prompt:  qs.order[qs.index].Definition,
		Choices: choices,
	}
}

// roundPercent computes round(100*score/total) with half-up rounding
func roundPercent(score, total int) int {
	if total == 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}
