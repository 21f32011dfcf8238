package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	statusForegroundColor = "#A8ACB1"
	statusBackgroundColor = "#1D252F"
	selectedColor         = "#E8C547"
	pathColor             = "#7D8590"
	tagColor              = "#6BC46D"
	errorColor            = "#E5534B"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(statusForegroundColor)).
			Background(lipgloss.Color(statusBackgroundColor)).
			Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(selectedColor))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(pathColor))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(tagColor))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(errorColor))
)

// View implements bubbletea.Model.View
func (m Model) View() string {
	if m.state == pagerState {
		return m.pager.View() + "\n" + m.help.ShortHelpView(m.keys.pagerHelp())
	}

	var sb strings.Builder

	sb.WriteString(m.input.View() + "\n")
	sb.WriteString(statusStyle.Render(m.status()) + "\n\n")

	end := min(m.offset+m.visibleCards(), len(m.cards))
	now := time.Now()

	for i := m.offset; i < end; i++ {
		sb.WriteString(m.renderCard(i, now))
	}

	if len(m.cards) == 0 && m.view.Complete {
		sb.WriteString("No matching notes\n")
	}

	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}

	sb.WriteString("\n" + m.help.View(m.keys))

	return sb.String()
}

func (m Model) status() string {
	parts := []string{
		fmt.Sprintf("%d of %d notes", len(m.cards), m.view.Total),
		m.view.Sort.Label(),
	}

	if !m.view.Complete {
		parts = append(parts, fmt.Sprintf("searching %d%%", int(m.view.Progress*100)))
	}

	if m.view.HasMore {
		parts = append(parts, "more below")
	}

	if m.caseSensitive {
		parts = append(parts, "match case")
	}

	if len(m.view.Diagnostics) > 0 {
		parts = append(parts, m.view.Diagnostics[0].Title)
	}

	return strings.Join(parts, " · ")
}

func (m Model) renderCard(i int, now time.Time) string {
	card := m.cards[i]

	marker, title := "  ", titleStyle.Render(card.Title)
	if i == m.cursor {
		marker, title = "> ", selectedStyle.Render(card.Title)
	}

	if card.Pinned {
		title = "* " + title
	}

	if card.Subtitle != "" {
		title += " " + pathStyle.Render("("+card.Subtitle+")")
	}

	meta := card.Path + " · edited " + humanize.RelTime(card.Modified, now, "ago", "from now")

	tags := make([]string, len(card.Tags))
	for j, tag := range card.Tags {
		tags[j] = "#" + tag
	}

	if len(tags) > 0 {
		meta += " " + tagStyle.Render(strings.Join(tags, " "))
	}

	return marker + title + "\n  " + pathStyle.Render(meta) + "\n\n"
}
