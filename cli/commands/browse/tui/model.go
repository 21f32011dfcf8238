package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/session"
)

// viewState keeps track of the screen we are currently on.
type viewState int

const (
	listState viewState = iota
	pagerState
)

const (
	// DefaultScrollThreshold is the number of cards under the cursor below which the next page is loaded.
	DefaultScrollThreshold = 5

	inputPrompt      = "search> "
	inputPlaceholder = `lorem -tag:draft "exact phrase" [status:done]`

	cardHeight   = 3
	headerHeight = 3
	footerHeight = 2
)

// Sender delivers messages to a session.
type Sender interface {
	Send(ctx context.Context, msg session.Message) error
}

// ViewMsg carries a new snapshot of the session.
type ViewMsg struct {
	View session.View
}

// Option configures a Model.
type Option func(*Model)

// WithTitleMode sets how cards are titled.
func WithTitleMode(mode document.TitleMode) Option {
	return func(m *Model) {
		m.titleMode = mode
	}
}

// WithPinned marks the pinned paths on their cards.
func WithPinned(paths []string) Option {
	return func(m *Model) {
		m.pinned = paths
	}
}

// WithQuery prefills the query input.
func WithQuery(query string) Option {
	return func(m *Model) {
		m.input.SetValue(query)
	}
}

// WithCaseSensitive sets the initial case sensitivity shown in the status line.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(m *Model) {
		m.caseSensitive = caseSensitive
	}
}

// WithSortChanged registers a function called whenever the user changes the sort mode.
func WithSortChanged(fn func(document.SortMode)) Option {
	return func(m *Model) {
		m.onSort = fn
	}
}

// WithGlamourStyle sets the glamour style of the note pager, e.g. "dark" or
// "notty". By default the style follows the terminal background.
func WithGlamourStyle(style string) Option {
	return func(m *Model) {
		m.glamourStyle = style
	}
}

// WithOpener sets how a note is opened outside the browser. Without one the key does nothing.
func WithOpener(fn func(doc *document.Document) error) Option {
	return func(m *Model) {
		m.opener = fn
	}
}

// Model is the bubbletea model of the card browser.
type Model struct {
	ctx      context.Context
	sender   Sender
	accessor document.Accessor
	views    <-chan session.View
	onSort   func(document.SortMode)
	opener   func(*document.Document) error
	err      error

	keys  keyMap
	help  help.Model
	input textinput.Model
	pager viewport.Model

	view      session.View
	cards     []common.Card
	pinned    []string
	titleMode document.TitleMode

	glamourStyle string

	state  viewState
	cursor int
	offset int
	width  int
	height int

	caseSensitive bool
}

// New creates the browser of a session. views delivers the session snapshots;
// it may be nil when snapshots are fed as ViewMsg by the caller.
func New(ctx context.Context, sender Sender, accessor document.Accessor, views <-chan session.View, opts ...Option) Model {
	input := textinput.New()
	input.Prompt = inputPrompt
	input.Placeholder = inputPlaceholder
	input.Focus()

	m := Model{
		ctx:       ctx,
		sender:    sender,
		accessor:  accessor,
		views:     views,
		keys:      newKeyMap(),
		help:      help.New(),
		input:     input,
		pager:     viewport.New(0, 0),
		titleMode: document.TitleBoth,
		view:      session.View{Sort: document.DefaultSortMode, Progress: 1, Complete: true},
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init implements bubbletea.Model.Init
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForView(m.views))
}

// Err returns the last error of sending a message to the session.
func (m Model) Err() error {
	return m.err
}

// Query returns the text of the query input.
func (m Model) Query() string {
	return m.input.Value()
}

// Cursor returns the index of the selected card.
func (m Model) Cursor() int {
	return m.cursor
}

func waitForView(views <-chan session.View) tea.Cmd {
	if views == nil {
		return nil
	}

	return func() tea.Msg {
		view, ok := <-views
		if !ok {
			return nil
		}

		return ViewMsg{View: view}
	}
}
