package session

import (
	"context"
	"slices"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/query"
)

// Message changes the session. It is applied on the event loop.
type Message interface {
	apply(ctx context.Context, s *Session)
}

// SetQuery replaces the query. The window shrinks back to one page.
type SetQuery struct {
	Query string
}

func (m SetQuery) apply(ctx context.Context, s *Session) {
	if m.Query == s.query {
		return
	}

	s.query = m.Query
	s.filter = query.Prepare(ctx, m.Query)
	s.window.Reset()
	s.restart(ctx)
}

// SetDocuments replaces the document list.
type SetDocuments struct {
	Documents []*document.Document
}

func (m SetDocuments) apply(ctx context.Context, s *Session) {
	s.documents = slices.Clone(m.Documents)
	s.resort()
	s.restart(ctx)
}

// SetSort changes the order of the cards, keeping the number shown.
type SetSort struct {
	Mode document.SortMode
}

func (m SetSort) apply(ctx context.Context, s *Session) {
	if m.Mode == s.sort {
		return
	}

	s.sort = m.Mode
	s.resort()
	s.window.Resort(s.sorted)
	s.restart(ctx)
}

// SetPinned replaces the pinned paths, which are always listed first.
type SetPinned struct {
	Paths []string
}

func (m SetPinned) apply(ctx context.Context, s *Session) {
	s.pinned = slices.Clone(m.Paths)
	s.resort()
	s.window.Resort(s.sorted)
	s.restart(ctx)
}

// SetCaseSensitive changes the ambient case sensitivity of the query.
type SetCaseSensitive struct {
	CaseSensitive bool
}

func (m SetCaseSensitive) apply(ctx context.Context, s *Session) {
	if m.CaseSensitive == s.caseSensitive {
		return
	}

	s.caseSensitive = m.CaseSensitive
	s.restart(ctx)
}

// SetShowEmpty changes whether documents with a blank body are listed.
type SetShowEmpty struct {
	Show bool
}

func (m SetShowEmpty) apply(ctx context.Context, s *Session) {
	if m.Show == s.showEmpty {
		return
	}

	s.showEmpty = m.Show
	s.restart(ctx)
}

// Scroll reports the distance between the viewport and the bottom of the list.
type Scroll struct {
	Distance float64
}

func (m Scroll) apply(_ context.Context, s *Session) {
	s.window.OnScroll(m.Distance)
}

// LoadMore grows the window by a page.
type LoadMore struct{}

func (LoadMore) apply(_ context.Context, s *Session) {
	s.window.LoadMore()
}
