package app

import "purrfect-cats/internal/domain"

// QuizEngine owns one quiz session at a time.
//
// Every Start issues a new session token. The delayed transition after an
// answer carries the token it was scheduled under, and Advance ignores
// tokens from earlier sessions.
type QuizEngine struct {
	bank []domain.Question

	session  uint64
	started  bool
	finished bool
	index    int
	score    int
	selected string
	answered bool
}

func NewQuizEngine(bank []domain.Question) *QuizEngine {
	return &QuizEngine{bank: bank}
}

// Start begins a fresh session from NotStarted or Finished.
func (q *QuizEngine) Start() (uint64, error) {
	if len(q.bank) == 0 {
		return 0, domain.ErrEmptyQuizBank
	}
	if q.started {
		return 0, domain.ErrQuizInProgress
	}
	q.session++
	q.started = true
	q.finished = false
	q.index = 0
	q.score = 0
	q.selected = ""
	q.answered = false
	return q.session, nil
}

// Reset abandons the current session and returns to NotStarted.
func (q *QuizEngine) Reset() {
	q.session++
	q.started = false
	q.finished = false
	q.index = 0
	q.score = 0
	q.selected = ""
	q.answered = false
}

// Submit records the answer for the current question. Unknown options
// simply count as incorrect. The caller schedules Advance with the returned
// session token.
func (q *QuizEngine) Submit(option string) (correct bool, session uint64, err error) {
	if !q.started {
		return false, 0, domain.ErrQuizNotStarted
	}
	if q.answered {
		return false, 0, domain.ErrAnswerPending
	}
	q.selected = option
	q.answered = true
	correct = option == q.bank[q.index].Answer
	if correct {
		q.score++
	}
	return correct, q.session, nil
}

// Advance applies the delayed transition for session. It reports whether
// anything changed.
func (q *QuizEngine) Advance(session uint64) bool {
	if session != q.session || !q.started || !q.answered {
		return false
	}
	q.selected = ""
	q.answered = false
	if q.index+1 < len(q.bank) {
		q.index++
		return true
	}
	q.started = false
	q.finished = true
	return true
}

func (q *QuizEngine) Started() bool  { return q.started }
func (q *QuizEngine) Finished() bool { return q.finished }
func (q *QuizEngine) Score() int     { return q.score }
func (q *QuizEngine) Index() int     { return q.index }

// Selected returns the pending answer, if any.
func (q *QuizEngine) Selected() (string, bool) { return q.selected, q.answered }

func (q *QuizEngine) State() domain.QuizState {
	st := domain.QuizState{
		Started:       q.started,
		Finished:      q.finished,
		QuestionIndex: q.index,
		Total:         len(q.bank),
		Score:         q.score,
	}
	if q.started {
		cur := q.bank[q.index]
		st.Question = &domain.PublicQuestion{Prompt: cur.Prompt, Options: cur.Options}
		if q.answered {
			st.Selected = q.selected
			st.CorrectOption = cur.Answer
		}
	}
	return st
}
