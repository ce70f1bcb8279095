// Package orchestrate drives a single query from submission to a
// render-ready state. Both searches run concurrently; the conflict analysis
// runs only after both have succeeded.
package orchestrate

import (
	"context"
	"slices"
	"sync"

	"github.com/fwojciec/crosscheck"
	"golang.org/x/sync/errgroup"
)

// Orchestrator owns the lifecycle state of the current query.
// The zero value is not usable; set all three services before Submit.
type Orchestrator struct {
	Web         crosscheck.WebSearcher
	Discussions crosscheck.DiscussionSearcher
	Analyzer    crosscheck.ConflictAnalyzer

	// transitionMu serializes state changes together with listener
	// notification so listeners observe transitions in order.
	transitionMu sync.Mutex

	mu        sync.Mutex
	state     crosscheck.State
	done      chan struct{}
	listeners []*listener
}

type listener struct {
	fn func(crosscheck.State)
}

// New returns an Orchestrator in the idle state.
func New(web crosscheck.WebSearcher, discussions crosscheck.DiscussionSearcher, analyzer crosscheck.ConflictAnalyzer) *Orchestrator {
	return &Orchestrator{
		Web:         web,
		Discussions: discussions,
		Analyzer:    analyzer,
	}
}

// Submit starts a run for query and reports whether it was accepted.
// Blank queries and submissions made while a run is in flight are ignored.
// On acceptance the state is Loading before Submit returns.
//
// ctx is used for the outbound requests of the run and must outlive it.
// Runs cannot be cancelled through the orchestrator.
func (o *Orchestrator) Submit(ctx context.Context, query string) bool {
	q, ok := crosscheck.NormalizeQuery(query)
	if !ok {
		return false
	}

	o.transitionMu.Lock()
	o.mu.Lock()
	if o.state.Status == crosscheck.StatusLoading {
		o.mu.Unlock()
		o.transitionMu.Unlock()
		return false
	}
	done := make(chan struct{})
	o.done = done
	o.state = crosscheck.Loading(q)
	o.mu.Unlock()
	o.notify(crosscheck.Loading(q))
	o.transitionMu.Unlock()

	go o.run(ctx, q, done)
	return true
}

// State returns a snapshot of the current state.
func (o *Orchestrator) State() crosscheck.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Clone()
}

// Subscribe registers fn to receive every subsequent state transition.
// fn runs on the goroutine making the transition and must not call Submit.
// The returned function removes the subscription.
func (o *Orchestrator) Subscribe(fn func(crosscheck.State)) (unsubscribe func()) {
	l := &listener{fn: fn}

	o.mu.Lock()
	o.listeners = append(o.listeners, l)
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.listeners = slices.DeleteFunc(o.listeners, func(x *listener) bool { return x == l })
	}
}

// Wait blocks until no run is in flight and returns the resulting state.
func (o *Orchestrator) Wait(ctx context.Context) (crosscheck.State, error) {
	o.mu.Lock()
	done := o.done
	o.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return o.State(), ctx.Err()
		}
	}
	return o.State(), nil
}

func (o *Orchestrator) run(ctx context.Context, query string, done chan struct{}) {
	defer close(done)

	var (
		web     []crosscheck.WebResult
		outcome *crosscheck.DiscussionOutcome
		failure stageError
		once    sync.Once
	)
	fail := func(stage crosscheck.Stage, err error) error {
		once.Do(func() { failure = stageError{stage: stage, err: err} })
		return err
	}

	// No derived context: a failing search must not cut the other one short.
	var g errgroup.Group
	g.Go(func() error {
		results, err := o.Web.SearchWeb(ctx, query)
		if err != nil {
			return fail(crosscheck.StageWebSearch, err)
		}
		web = results
		return nil
	})
	g.Go(func() error {
		out, err := o.Discussions.SearchDiscussions(ctx, query)
		if err != nil {
			return fail(crosscheck.StageDiscussionSearch, err)
		}
		if out == nil {
			out = &crosscheck.DiscussionOutcome{}
		}
		outcome = out
		return nil
	})
	if err := g.Wait(); err != nil {
		o.transition(crosscheck.Failed(query, failure.stage, failure.err))
		return
	}

	report, err := o.Analyzer.AnalyzeConflicts(ctx, web, outcome.Content)
	if err != nil {
		o.transition(crosscheck.Failed(query, crosscheck.StageAnalysis, err))
		return
	}
	if report == nil {
		report = &crosscheck.ConflictReport{}
	}

	o.transition(crosscheck.Ready(query, web, outcome.Threads, report))
}

type stageError struct {
	stage crosscheck.Stage
	err   error
}

func (o *Orchestrator) transition(s crosscheck.State) {
	o.transitionMu.Lock()
	defer o.transitionMu.Unlock()

	o.mu.Lock()
	o.state = s
	o.mu.Unlock()

	o.notify(s)
}

// notify must be called with transitionMu held.
func (o *Orchestrator) notify(s crosscheck.State) {
	o.mu.Lock()
	listeners := slices.Clone(o.listeners)
	o.mu.Unlock()

	for _, l := range listeners {
		l.fn(s.Clone())
	}
}
