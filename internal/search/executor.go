// Package search evaluates a filter incrementally over a changing list of documents.
//
// Each call to Executor.Start begins a new generation. A pass walks the
// documents in order, reading contents through the accessor, and commits its
// results in batches: whenever the flush interval has elapsed and when the
// list is exhausted. A pass that is superseded stops at the next document and
// never commits again.
package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gruntwork-io/notecards/internal/cache"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/observe"
	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/gruntwork-io/notecards/pkg/log"
)

// DefaultFlushInterval is the minimum time between two batch commits.
const DefaultFlushInterval = 200 * time.Millisecond

var errSuperseded = errors.New("search pass superseded")

// Request is an immutable snapshot of everything one pass evaluates.
type Request struct {
	// Filter is nil for the empty query.
	Filter *query.Filter
	// Documents are in display order and evaluated in that order.
	Documents     []*document.Document
	CaseSensitive bool
	// HideEmpty excludes documents whose body is blank.
	HideEmpty bool
}

func (req Request) needsPass() bool {
	return req.Filter != nil || req.HideEmpty
}

// State is the committed outcome of the latest generation.
type State struct {
	// Excluded holds documents known not to match.
	Excluded *Set
	PassID   string
	// Generation is the generation that committed this state.
	Generation uint64
	// Progress is Processed/Total, and 1 only once the pass is complete.
	Progress  float64
	Processed int
	Total     int
}

// Complete reports whether every document of the pass was evaluated.
func (s State) Complete() bool {
	return s.Progress >= 1
}

// Pass is a handle on a started evaluation.
type Pass struct {
	done       chan struct{}
	ID         string
	Generation uint64
}

// Done is closed when the pass completed or was abandoned.
func (p *Pass) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the pass finishes or ctx is done.
func (p *Pass) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return errors.New(ctx.Err())
	}
}

// resultScope is what a cached outcome depends on besides the document version.
type resultScope struct {
	filter        *query.Filter
	caseSensitive bool
	hideEmpty     bool
}

// Executor runs search passes. Only the latest generation ever commits.
type Executor struct {
	accessor      document.Accessor
	logger        log.Logger
	state         *observe.Observable[State]
	results       *cache.ResultCache
	cancel        context.CancelFunc
	scope         resultScope
	flushInterval time.Duration
	generation    atomic.Uint64
	mu            sync.Mutex
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithFlushInterval sets the minimum time between batch commits. Zero commits after every document.
func WithFlushInterval(interval time.Duration) Option {
	return func(e *Executor) {
		e.flushInterval = max(interval, 0)
	}
}

// NewExecutor creates an executor reading documents through accessor.
func NewExecutor(accessor document.Accessor, opts ...Option) *Executor {
	e := &Executor{
		accessor:      accessor,
		logger:        log.Default(),
		flushInterval: DefaultFlushInterval,
		state:         observe.New(State{Excluded: EmptySet, Progress: 1}),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State returns the latest committed state.
func (e *Executor) State() State {
	return e.state.Get()
}

// Subscribe delivers every committed state. Slow subscribers only see the latest one.
func (e *Executor) Subscribe() (<-chan State, func()) {
	return e.state.Subscribe()
}

// Generation returns the current generation.
func (e *Executor) Generation() uint64 {
	return e.generation.Load()
}

// Start supersedes any running pass and evaluates req in the background.
// Outcomes cached by earlier passes are reused unless the filter, the case
// sensitivity or the empty-note setting changed.
func (e *Executor) Start(ctx context.Context, req Request) *Pass {
	e.mu.Lock()
	defer e.mu.Unlock()

	gen := e.generation.Add(1)

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}

	pass := &Pass{
		ID:         uuid.NewString(),
		Generation: gen,
		done:       make(chan struct{}),
	}

	scope := resultScope{filter: req.Filter, caseSensitive: req.CaseSensitive, hideEmpty: req.HideEmpty}
	if e.results == nil || scope != e.scope {
		e.results = cache.NewResultCache()
		e.scope = scope
	}

	total := len(req.Documents)

	if !req.needsPass() {
		e.state.Set(State{
			Excluded:   EmptySet,
			PassID:     pass.ID,
			Generation: gen,
			Progress:   1,
			Processed:  total,
			Total:      total,
		})
		close(pass.done)

		return pass
	}

	previous := e.state.Get().Excluded
	carried := carryOver(nil, previous, req.Documents)

	e.state.Set(State{
		Excluded:   carried,
		PassID:     pass.ID,
		Generation: gen,
		Total:      total,
	})

	passCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	results := e.results

	go func() {
		defer close(pass.done)
		defer cancel()

		e.run(passCtx, pass, req, carried, results)
	}()

	return pass
}

// Run starts a pass and waits for it.
func (e *Executor) Run(ctx context.Context, req Request) (State, error) {
	pass := e.Start(ctx, req)
	if err := pass.Wait(ctx); err != nil {
		return State{}, err
	}

	return e.State(), nil
}

// Stop abandons the running pass, if any.
func (e *Executor) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.generation.Add(1)

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Executor) run(ctx context.Context, pass *Pass, req Request, previous *Set, results *cache.ResultCache) {
	logger := e.logger.WithFields(log.Fields{
		"pass":       pass.ID,
		"generation": pass.Generation,
	})

	err := TraceSearchPass(ctx, pass, req, func(ctx context.Context) error {
		return e.evaluate(ctx, pass, req, previous, results)
	})

	switch {
	case err == nil:
		logger.Tracef("Search pass over %d documents complete", len(req.Documents))
	case errors.Is(err, errSuperseded), errors.IsContextCanceled(err):
		CountPassCanceled(ctx)
		logger.Tracef("Search pass abandoned")
	default:
		logger.Debugf("Search pass failed: %v", err)
	}
}

func (e *Executor) evaluate(ctx context.Context, pass *Pass, req Request, previous *Set, results *cache.ResultCache) error {
	docs := req.Documents
	total := len(docs)
	excluded := make(map[string]struct{})
	lastFlush := time.Now()

	if total == 0 {
		if !e.commit(ctx, pass, excluded, nil, nil, 0, 0) {
			return errSuperseded
		}

		return nil
	}

	for i, doc := range docs {
		if !e.current(pass) {
			return errSuperseded
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		matched := e.match(ctx, doc, req, results)

		// A read interrupted by cancellation says nothing about the document.
		if err := ctx.Err(); err != nil {
			return err
		}

		if !matched {
			excluded[doc.Path] = struct{}{}
		}

		processed := i + 1

		if processed == total || time.Since(lastFlush) >= e.flushInterval {
			if !e.commit(ctx, pass, excluded, previous, docs[processed:], processed, total) {
				return errSuperseded
			}

			lastFlush = time.Now()
		}
	}

	return nil
}

// match returns the outcome for doc, from the cache when possible.
// A failed read is a non-match and is not cached.
func (e *Executor) match(ctx context.Context, doc *document.Document, req Request, results *cache.ResultCache) bool {
	key := cache.KeyOf(doc)

	if matched, ok := results.Get(ctx, key); ok {
		return matched
	}

	contents, err := e.accessor.Read(ctx, doc)
	if err != nil {
		if !errors.IsContextCanceled(err) {
			e.logger.Debugf("Could not read %s, treating it as a non-match: %v", doc.Path, err)
		}

		return false
	}

	if contents == nil {
		contents = &document.Contents{}
	}

	matched := false

	if !req.HideEmpty || !document.IsEmpty(contents.Content) {
		matched = req.Filter.Match(query.NewEvalContext(doc, contents, req.CaseSensitive))
	}

	results.Put(ctx, key, matched)

	return matched
}

func (e *Executor) current(pass *Pass) bool {
	return e.generation.Load() == pass.Generation
}

// commit publishes a batch unless the pass has been superseded. The check
// and the publication happen under the same lock as Start.
func (e *Executor) commit(ctx context.Context, pass *Pass, excluded map[string]struct{}, previous *Set, remaining []*document.Document, processed, total int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.current(pass) {
		return false
	}

	progress := 1.0
	if total > 0 && processed < total {
		progress = float64(processed) / float64(total)
	}

	e.state.Set(State{
		Excluded:   carryOver(excluded, previous, remaining),
		PassID:     pass.ID,
		Generation: pass.Generation,
		Progress:   progress,
		Processed:  processed,
		Total:      total,
	})

	CountBatchCommitted(ctx)

	return true
}

// carryOver returns the exclusions found so far plus the previous exclusions
// of documents not evaluated yet, so that those stay hidden until their turn.
func carryOver(found map[string]struct{}, previous *Set, remaining []*document.Document) *Set {
	paths := make(map[string]struct{}, len(found))

	for path := range found {
		paths[path] = struct{}{}
	}

	if previous.Len() > 0 {
		for _, doc := range remaining {
			if previous.Contains(doc.Path) {
				paths[doc.Path] = struct{}{}
			}
		}
	}

	return newSet(paths)
}
