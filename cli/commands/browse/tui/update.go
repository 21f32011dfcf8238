package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/session"
)

// Update handles all TUI interactions and implements bubbletea.Model.Update.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(inputPrompt)-1, 1)
		m.help.Width = msg.Width
		m.pager.Width = msg.Width
		m.pager.Height = max(msg.Height-footerHeight, 1)
		m.keepCursorVisible()

		return m, nil

	case ViewMsg:
		m.setView(msg.View)
		return m, waitForView(m.views)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if m.state == pagerState {
			return m.updatePager(msg)
		}

		return m.updateList(msg)
	}

	if m.state == pagerState {
		m.pager, cmd = m.pager.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}

	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.visibleCards())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.visibleCards())
	case key.Matches(msg, m.keys.Open):
		m.openPager()
	case key.Matches(msg, m.keys.External):
		m.openExternal()
	case key.Matches(msg, m.keys.Sort):
		mode := m.view.Sort.Next()
		m.view.Sort = mode
		m.send(session.SetSort{Mode: mode})

		if m.onSort != nil {
			m.onSort(mode)
		}
	case key.Matches(msg, m.keys.Case):
		m.caseSensitive = !m.caseSensitive
		m.send(session.SetCaseSensitive{CaseSensitive: m.caseSensitive})
	case key.Matches(msg, m.keys.Back):
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.queryChanged()
		}
	default:
		before := m.input.Value()

		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		if m.input.Value() != before {
			m.queryChanged()
		}

		return m, cmd
	}

	return m, nil
}

func (m Model) updatePager(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || msg.String() == "q" {
		m.state = listState
		return m, nil
	}

	if key.Matches(msg, m.keys.External) {
		m.openExternal()
		return m, nil
	}

	var cmd tea.Cmd

	m.pager, cmd = m.pager.Update(msg)

	return m, cmd
}

// setView replaces the session snapshot, keeping the cursor on a displayed card.
func (m *Model) setView(view session.View) {
	m.view = view
	m.cards = common.NewCards(m.ctx, m.accessor, view.Displayed, m.titleMode, 0, m.pinned)
	m.cursor = max(min(m.cursor, len(m.cards)-1), 0)
	m.keepCursorVisible()
}

// moveCursor moves the selection and tells the session how far the cursor is
// from the bottom of the list, which loads the next page near the end.
func (m *Model) moveCursor(delta int) {
	if len(m.cards) == 0 {
		return
	}

	m.cursor = max(min(m.cursor+delta, len(m.cards)-1), 0)
	m.keepCursorVisible()

	m.send(session.Scroll{Distance: float64(len(m.cards) - 1 - m.cursor)})
}

func (m *Model) queryChanged() {
	m.cursor = 0
	m.offset = 0
	m.send(session.SetQuery{Query: m.input.Value()})
}

// openPager renders the selected note into the pager.
func (m *Model) openPager() {
	if m.cursor >= len(m.view.Displayed) {
		return
	}

	doc := m.view.Displayed[m.cursor]

	contents, err := m.accessor.Read(m.ctx, doc)
	if err != nil {
		m.pager.SetContent(fmt.Sprintf("could not read %s: %s", doc.Path, err))
	} else {
		m.pager.SetContent(m.render(contents.Body()))
	}

	m.pager.GotoTop()
	m.state = pagerState
}

func (m *Model) openExternal() {
	if m.opener == nil || m.cursor >= len(m.view.Displayed) {
		return
	}

	if err := m.opener(m.view.Displayed[m.cursor]); err != nil {
		m.err = err
	}
}

// render formats markdown for the terminal, falling back to the raw text.
func (m *Model) render(markdown string) string {
	style := glamour.WithAutoStyle()
	if m.glamourStyle != "" {
		style = glamour.WithStandardStyle(m.glamourStyle)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(max(m.width-2, 20)))
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return out
}

func (m *Model) send(msg session.Message) {
	if err := m.sender.Send(m.ctx, msg); err != nil {
		m.err = err
	}
}

func (m *Model) visibleCards() int {
	if m.height == 0 {
		return max(len(m.cards), 1)
	}

	return max((m.height-headerHeight-footerHeight)/cardHeight, 1)
}

func (m *Model) keepCursorVisible() {
	visible := m.visibleCards()

	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}

	m.offset = max(min(m.offset, len(m.cards)-visible), 0)
}
