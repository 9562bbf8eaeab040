package app_test

import (
	"errors"
	"testing"

	"purrfect-cats/internal/app"
	"purrfect-cats/internal/domain"
)

func sampleBank() []domain.Question {
	return []domain.Question{
		{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Prompt: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
		{Prompt: "q3", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
	}
}

func TestQuizScenarioCorrectWrongCorrect(t *testing.T) {
	q := app.NewQuizEngine(sampleBank())
	session, err := q.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for _, answer := range []string{"a", "d", "c"} {
		if _, _, err := q.Submit(answer); err != nil {
			t.Fatalf("submit %s: %v", answer, err)
		}
		if !q.Advance(session) {
			t.Fatalf("expected advance to apply")
		}
	}

	if q.Started() || !q.Finished() {
		t.Fatalf("expected finished quiz, started=%v finished=%v", q.Started(), q.Finished())
	}
	if q.Score() != 2 {
		t.Fatalf("expected score 2, got %d", q.Score())
	}
}

func TestQuizScoringPerQuestion(t *testing.T) {
	for i, question := range sampleBank() {
		for _, opt := range append(question.Options, "not-an-option", "") {
			q := app.NewQuizEngine(sampleBank())
			session, _ := q.Start()
			for j := 0; j < i; j++ {
				q.Submit("zzz")
				q.Advance(session)
			}
			correct, _, err := q.Submit(opt)
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			want := 0
			if opt == question.Answer {
				want = 1
			}
			if q.Score() != want || correct != (want == 1) {
				t.Fatalf("question %d option %q: score %d correct %v", i, opt, q.Score(), correct)
			}
		}
	}
}

func TestQuizSecondAnswerIsNoOp(t *testing.T) {
	q := app.NewQuizEngine(sampleBank())
	q.Start()

	if _, _, err := q.Submit("b"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, _, err := q.Submit("a"); !errors.Is(err, domain.ErrAnswerPending) {
		t.Fatalf("expected ErrAnswerPending, got %v", err)
	}
	if q.Score() != 0 {
		t.Fatalf("expected score untouched, got %d", q.Score())
	}
	if sel, ok := q.Selected(); !ok || sel != "b" {
		t.Fatalf("expected selected b, got %q (%v)", sel, ok)
	}
}

func TestQuizStartResetsPreviousSession(t *testing.T) {
	q := app.NewQuizEngine(sampleBank())
	session, _ := q.Start()
	for _, answer := range []string{"a", "b", "c"} {
		q.Submit(answer)
		q.Advance(session)
	}
	if q.Score() != 3 {
		t.Fatalf("expected perfect score, got %d", q.Score())
	}

	if _, err := q.Start(); err != nil {
		t.Fatalf("restart from finished: %v", err)
	}
	if q.Score() != 0 || q.Index() != 0 || !q.Started() || q.Finished() {
		t.Fatalf("expected fresh session, got %+v", q.State())
	}
	if _, ok := q.Selected(); ok {
		t.Fatalf("expected no selection after start")
	}
}

func TestQuizStartRejectedWhileInProgress(t *testing.T) {
	q := app.NewQuizEngine(sampleBank())
	q.Start()
	q.Submit("a")
	if _, err := q.Start(); !errors.Is(err, domain.ErrQuizInProgress) {
		t.Fatalf("expected ErrQuizInProgress, got %v", err)
	}
	if q.Score() != 1 {
		t.Fatalf("rejected start must not touch score, got %d", q.Score())
	}
}

func TestQuizStaleTransitionIgnored(t *testing.T) {
	q := app.NewQuizEngine(sampleBank())
	old, _ := q.Start()
	q.Submit("a")

	q.Reset()
	if _, err := q.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if q.Advance(old) {
		t.Fatalf("transition from an old session must be ignored")
	}
	if q.Index() != 0 || q.Score() != 0 {
		t.Fatalf("expected untouched new session, got %+v", q.State())
	}
}

func TestQuizAdvanceWithoutAnswerIsNoOp(t *testing.T) {
	q := app.NewQuizEngine(sampleBank())
	session, _ := q.Start()
	if q.Advance(session) {
		t.Fatalf("advance without a pending answer must not apply")
	}
}

func TestQuizGuards(t *testing.T) {
	if _, err := app.NewQuizEngine(nil).Start(); !errors.Is(err, domain.ErrEmptyQuizBank) {
		t.Fatalf("expected ErrEmptyQuizBank, got %v", err)
	}
	if _, _, err := app.NewQuizEngine(sampleBank()).Submit("a"); !errors.Is(err, domain.ErrQuizNotStarted) {
		t.Fatalf("expected ErrQuizNotStarted, got %v", err)
	}
}

func TestQuizStateRevealsAnswerOnlyAfterSelection(t *testing.T) {
	q := app.NewQuizEngine(sampleBank())
	q.Start()
	st := q.State()
	if st.Question == nil || st.Question.Prompt != "q1" || st.CorrectOption != "" {
		t.Fatalf("unexpected state before answer: %+v", st)
	}
	q.Submit("b")
	st = q.State()
	if st.Selected != "b" || st.CorrectOption != "a" {
		t.Fatalf("unexpected state after answer: %+v", st)
	}
}
