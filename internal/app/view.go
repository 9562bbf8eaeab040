package app

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"purrfect-cats/internal/domain"
)

// ViewOptions tunes the timers of a view.
type ViewOptions struct {
	CarouselInterval time.Duration
	AnswerDelay      time.Duration
	FactTimeout      time.Duration
	// Heartbeat is how often an open view refreshes its registry entry.
	Heartbeat time.Duration
}

func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		CarouselInterval: 5 * time.Second,
		AnswerDelay:      time.Second,
		FactTimeout:      5 * time.Second,
	}
}

// View is one active page instance. All controller state is owned by the
// goroutine running Run; commands, ticks and async completions are handled
// one at a time in arrival order.
type View struct {
	id      string
	clock   Clock
	fetcher FactFetcher
	opts    ViewOptions

	carousel *Carousel
	quiz     *QuizEngine
	likes    LikeCounter
	fact     *FactBoard

	// transition is the pending delayed quiz advance, if any.
	transition Timer

	commands chan domain.Command
	events   chan any
	updates  chan domain.ViewUpdate
	done     chan struct{}
	running  atomic.Bool
}

type factResult struct {
	seq  uint64
	text string
}

type quizAdvance struct {
	session uint64
}

// NewView builds a view over a validated catalog.
func NewView(id string, catalog domain.Catalog, fetcher FactFetcher, clock Clock, opts ViewOptions) (*View, error) {
	carousel, err := NewCarousel(catalog.Images)
	if err != nil {
		return nil, err
	}
	return &View{
		id:       id,
		clock:    clock,
		fetcher:  fetcher,
		opts:     opts,
		carousel: carousel,
		quiz:     NewQuizEngine(catalog.Questions),
		fact:     NewFactBoard(),
		commands: make(chan domain.Command),
		events:   make(chan any),
		updates:  make(chan domain.ViewUpdate, 8),
		done:     make(chan struct{}),
	}, nil
}

func (v *View) ID() string { return v.id }

// Updates streams state snapshots and notices. It is closed when Run returns.
func (v *View) Updates() <-chan domain.ViewUpdate { return v.updates }

// Done is closed once the view stopped running.
func (v *View) Done() <-chan struct{} { return v.done }

// Dispatch hands a command to the view loop.
func (v *View) Dispatch(ctx context.Context, cmd domain.Command) error {
	if !cmd.Valid() {
		return domain.ErrUnknownCommand
	}
	select {
	case v.commands <- cmd:
		return nil
	case <-v.done:
		return domain.ErrViewClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the view until ctx is cancelled. The carousel ticker and any
// pending quiz transition are stopped before it returns.
func (v *View) Run(ctx context.Context) error {
	if !v.running.CompareAndSwap(false, true) {
		return domain.ErrViewClosed
	}
	ticker := v.clock.NewTicker(v.opts.CarouselInterval)
	defer func() {
		ticker.Stop()
		v.cancelTransition()
		close(v.done)
		close(v.updates)
	}()

	v.requestFact(ctx)
	v.publishState()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C():
			v.carousel.Tick()
			v.publishState()
		case cmd := <-v.commands:
			v.handle(ctx, cmd)
		case ev := <-v.events:
			v.apply(ev)
		}
	}
}

func (v *View) handle(ctx context.Context, cmd domain.Command) {
	switch cmd.Kind {
	case domain.CommandNext:
		v.carousel.Next()
	case domain.CommandPrevious:
		v.carousel.Previous()
	case domain.CommandStartQuiz:
		if _, err := v.quiz.Start(); err != nil {
			log.Printf("view %s: start quiz ignored: %v", v.id, err)
			return
		}
	case domain.CommandRestartQuiz:
		v.cancelTransition()
		v.quiz.Reset()
		if _, err := v.quiz.Start(); err != nil {
			log.Printf("view %s: restart quiz failed: %v", v.id, err)
		}
	case domain.CommandAnswer:
		_, session, err := v.quiz.Submit(cmd.Option)
		if err != nil {
			log.Printf("view %s: answer ignored: %v", v.id, err)
			return
		}
		v.transition = v.clock.AfterFunc(v.opts.AnswerDelay, func() {
			v.post(quizAdvance{session: session})
		})
	case domain.CommandLike:
		v.likes.Like()
		v.publish(domain.ViewUpdate{Kind: domain.UpdateNotice, Notice: LikeNotice})
	case domain.CommandNewFact:
		v.requestFact(ctx)
	}
	v.publishState()
}

func (v *View) apply(ev any) {
	switch ev := ev.(type) {
	case factResult:
		if !v.fact.Resolve(ev.seq, ev.text) {
			return
		}
	case quizAdvance:
		if !v.quiz.Advance(ev.session) {
			return
		}
		v.transition = nil
	default:
		return
	}
	v.publishState()
}

// requestFact starts a fetch without cancelling earlier ones; FactBoard
// discards responses that are no longer the latest.
func (v *View) requestFact(ctx context.Context) {
	seq := v.fact.Begin()
	go func() {
		fctx, cancel := context.WithTimeout(ctx, v.opts.FactTimeout)
		defer cancel()
		v.post(factResult{seq: seq, text: FetchFactText(fctx, v.fetcher)})
	}()
}

// post re-enters the view loop from another goroutine.
func (v *View) post(ev any) {
	select {
	case v.events <- ev:
	case <-v.done:
	}
}

func (v *View) cancelTransition() {
	if v.transition != nil {
		v.transition.Stop()
		v.transition = nil
	}
}

func (v *View) snapshot() domain.ViewState {
	return domain.ViewState{
		ViewID:   v.id,
		Carousel: v.carousel.State(),
		Quiz:     v.quiz.State(),
		Likes:    v.likes.Count(),
		Fact:     v.fact.State(),
	}
}

func (v *View) publishState() {
	v.publish(domain.ViewUpdate{Kind: domain.UpdateState, State: v.snapshot()})
}

func (v *View) publish(u domain.ViewUpdate) {
	select {
	case v.updates <- u:
	default:
		// Slow reader: drop the oldest update, the newest state supersedes it.
		select {
		case <-v.updates:
		default:
		}
		v.updates <- u
	}
}
