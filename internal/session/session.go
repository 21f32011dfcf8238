// Package session wires the query, the executor and the display window into a
// single event loop. Callers send messages and observe View snapshots.
package session

import (
	"context"
	"slices"
	"time"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/observe"
	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/gruntwork-io/notecards/internal/search"
	"github.com/gruntwork-io/notecards/internal/window"
	"github.com/gruntwork-io/notecards/pkg/log"
)

const messageBuffer = 16

// ErrClosed is returned by Send once the event loop has stopped.
var ErrClosed = errors.New("session closed")

// View is what a front end renders.
type View struct {
	Sort        document.SortMode
	Query       string
	Displayed   []*document.Document
	Tags        []document.TagCount
	Diagnostics []*query.ParseError
	Progress    float64
	Total       int
	Generation  uint64
	Complete    bool
	HasMore     bool
}

// Session owns the search state of one front end. All fields are confined to the Run goroutine.
type Session struct {
	accessor  document.Accessor
	logger    log.Logger
	executor  *search.Executor
	window    *window.Controller
	view      *observe.Observable[View]
	messages  chan Message
	done      chan struct{}
	filter    *query.Filter
	query     string
	sort      document.SortMode
	documents []*document.Document
	sorted    []*document.Document
	pinned    []string
	state     search.State
	execOpts  []search.Option
	winOpts   []window.Option
	// generation is that of the latest pass this session started.
	generation    uint64
	caseSensitive bool
	showEmpty     bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSort sets the initial sort mode.
func WithSort(mode document.SortMode) Option {
	return func(s *Session) {
		s.sort = mode
	}
}

// WithPinned sets the initially pinned paths.
func WithPinned(paths ...string) Option {
	return func(s *Session) {
		s.pinned = slices.Clone(paths)
	}
}

// WithCaseSensitive sets the initial case sensitivity.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(s *Session) {
		s.caseSensitive = caseSensitive
	}
}

// WithShowEmpty sets whether documents with a blank body are listed.
func WithShowEmpty(show bool) Option {
	return func(s *Session) {
		s.showEmpty = show
	}
}

// WithPageSize sets the display page size.
func WithPageSize(size int) Option {
	return func(s *Session) {
		s.winOpts = append(s.winOpts, window.WithPageSize(size))
	}
}

// WithScrollThreshold sets the near-bottom distance that loads the next page.
func WithScrollThreshold(threshold float64) Option {
	return func(s *Session) {
		s.winOpts = append(s.winOpts, window.WithScrollThreshold(threshold))
	}
}

// WithFlushInterval sets the executor batch interval.
func WithFlushInterval(interval time.Duration) Option {
	return func(s *Session) {
		s.execOpts = append(s.execOpts, search.WithFlushInterval(interval))
	}
}

// New creates a session reading documents through accessor. Call Run to start it.
func New(accessor document.Accessor, opts ...Option) *Session {
	s := &Session{
		accessor: accessor,
		logger:   log.Default(),
		sort:     document.DefaultSortMode,
		messages: make(chan Message, messageBuffer),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.executor = search.NewExecutor(accessor, append([]search.Option{search.WithLogger(s.logger)}, s.execOpts...)...)
	s.window = window.New(s.winOpts...)
	s.state = s.executor.State()
	s.view = observe.New(View{Sort: s.sort, Progress: 1, Complete: true})

	return s
}

// View returns the latest snapshot.
func (s *Session) View() View {
	return s.view.Get()
}

// Subscribe delivers view snapshots. Slow subscribers only see the latest one.
func (s *Session) Subscribe() (<-chan View, func()) {
	return s.view.Subscribe()
}

// Send queues a message for the event loop.
func (s *Session) Send(ctx context.Context, msg Message) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}

	select {
	case s.messages <- msg:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return errors.New(ctx.Err())
	}
}

// Run processes messages and search results until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	defer s.executor.Stop()

	states, unsubscribe := s.executor.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-s.messages:
			msg.apply(ctx, s)
		case state := <-states:
			if state.Generation < s.generation {
				continue
			}

			s.state = state
			s.window.Update(s.sorted, state)
		}

		s.publish(ctx)
	}
}

// restart starts a new pass over the current documents with the current filter.
func (s *Session) restart(ctx context.Context) {
	pass := s.executor.Start(ctx, search.Request{
		Filter:        s.filter,
		Documents:     s.sorted,
		CaseSensitive: s.caseSensitive,
		HideEmpty:     !s.showEmpty,
	})

	s.generation = pass.Generation
	s.state = s.executor.State()
	s.window.Update(s.sorted, s.state)
}

func (s *Session) resort() {
	s.sorted = document.Sort(s.documents, s.sort, s.pinned)
}

func (s *Session) publish(ctx context.Context) {
	displayed := s.window.Displayed()

	s.view.Set(View{
		Sort:        s.sort,
		Query:       s.query,
		Displayed:   displayed,
		Tags:        s.tags(ctx, displayed),
		Diagnostics: s.filter.Diagnostics(),
		Progress:    s.state.Progress,
		Total:       len(s.sorted),
		Generation:  s.state.Generation,
		Complete:    s.state.Complete(),
		HasMore:     s.window.HasMore(),
	})
}

// tags ranks the tags of the displayed documents.
func (s *Session) tags(ctx context.Context, displayed []*document.Document) []document.TagCount {
	sets := make([][]string, 0, len(displayed))

	for _, doc := range displayed {
		contents, err := s.accessor.Read(ctx, doc)
		if err != nil || contents == nil {
			continue
		}

		sets = append(sets, contents.Tags)
	}

	return document.RankTags(sets...)
}
