// Package window maintains the displayed prefix of the filtered document list.
package window

import (
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/search"
)

const (
	// DefaultPageSize is the number of cards added per page.
	DefaultPageSize = 50
	// DefaultScrollThreshold is the distance from the bottom under which the next page is loaded.
	DefaultScrollThreshold = 100
)

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the page increment.
func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithScrollThreshold sets the near-bottom distance, in whatever unit OnScroll receives.
func WithScrollThreshold(threshold float64) Option {
	return func(c *Controller) {
		if threshold >= 0 {
			c.threshold = threshold
		}
	}
}

// Controller computes the displayed documents from the sorted list and the
// search state. It is not safe for concurrent use.
//
// The displayed list has the following properties:
//
//   - It only contains documents that are not excluded, in sorted order.
//
//   - Under a constant filter it grows only when the user asks for more, by a
//     page at a time.
//
//   - While results stream in it keeps the documents up to the previous last
//     displayed one, and never shows documents the search has not evaluated
//     beyond that point.
type Controller struct {
	sorted    []*document.Document
	displayed []*document.Document
	state     search.State
	pageSize  int
	target    int
	threshold float64
}

// New creates a controller showing one page.
func New(opts ...Option) *Controller {
	c := &Controller{
		pageSize:  DefaultPageSize,
		threshold: DefaultScrollThreshold,
		state:     search.State{Excluded: search.EmptySet, Progress: 1},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.target = c.pageSize

	return c
}

// Displayed returns the displayed documents. The slice must not be modified.
func (c *Controller) Displayed() []*document.Document {
	return c.displayed
}

// Target returns the length the window is allowed to reach.
func (c *Controller) Target() int {
	return c.target
}

// PageSize returns the page increment.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// HasMore reports whether documents beyond the displayed ones may still be shown.
func (c *Controller) HasMore() bool {
	shown := 0

	for _, doc := range c.sorted {
		if !c.state.Excluded.Contains(doc.Path) {
			shown++
		}
	}

	return shown > len(c.displayed) || !c.state.Complete()
}

// Update recomputes the window for a new document list or search state.
func (c *Controller) Update(sorted []*document.Document, state search.State) []*document.Document {
	c.sorted = sorted
	c.state = state

	c.displayed = c.compute(c.previousRank())

	return c.displayed
}

// Resort keeps the current length against a newly ordered list.
func (c *Controller) Resort(sorted []*document.Document) []*document.Document {
	c.sorted = sorted
	c.target = max(len(c.displayed), c.pageSize)

	c.displayed = c.compute(-1)

	return c.displayed
}

// Reset shows a single page again, for a new query.
func (c *Controller) Reset() {
	c.target = c.pageSize
}

// LoadMore grows the window by one page.
func (c *Controller) LoadMore() []*document.Document {
	c.target = len(c.displayed) + c.pageSize
	c.displayed = c.compute(c.previousRank())

	return c.displayed
}

// OnScroll loads the next page when the distance to the bottom falls under the
// threshold. It reports whether the window grew.
func (c *Controller) OnScroll(distanceToBottom float64) bool {
	if distanceToBottom >= c.threshold {
		return false
	}

	before := len(c.displayed)

	return len(c.LoadMore()) > before
}

// previousRank is the position in the sorted list of the last displayed
// document that is still listed, or -1.
func (c *Controller) previousRank() int {
	if len(c.displayed) == 0 {
		return -1
	}

	positions := make(map[string]int, len(c.sorted))
	for i, doc := range c.sorted {
		positions[doc.Path] = i
	}

	for i := len(c.displayed) - 1; i >= 0; i-- {
		if pos, ok := positions[c.displayed[i].Path]; ok {
			return pos
		}
	}

	return -1
}

func (c *Controller) compute(rank int) []*document.Document {
	rank = min(rank, len(c.sorted)-1)

	displayed := make([]*document.Document, 0, c.target)

	for _, doc := range c.sorted[:rank+1] {
		if len(displayed) == c.target {
			return displayed
		}

		if !c.state.Excluded.Contains(doc.Path) {
			displayed = append(displayed, doc)
		}
	}

	evaluated := c.evaluated()

	for i := rank + 1; i < evaluated && len(displayed) < c.target; i++ {
		if doc := c.sorted[i]; !c.state.Excluded.Contains(doc.Path) {
			displayed = append(displayed, doc)
		}
	}

	return displayed
}

// evaluated is the length of the prefix of the sorted list the search has covered.
func (c *Controller) evaluated() int {
	switch {
	case c.state.Complete():
		return len(c.sorted)
	case c.state.Total == len(c.sorted):
		return c.state.Processed
	}

	return min(int(c.state.Progress*float64(len(c.sorted))), len(c.sorted))
}
