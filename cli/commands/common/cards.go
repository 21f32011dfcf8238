package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/mgutz/ansi"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const (
	previewIndent = 4
	minWrap       = 20
)

// Card is the rendered form of a document.
type Card struct {
	Modified time.Time `json:"modified"`
	Created  time.Time `json:"created"`
	Path     string    `json:"path"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Preview  string    `json:"preview,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Size     int64     `json:"size"`
	Pinned   bool      `json:"pinned,omitempty"`
}

// NewCards renders the documents. A preview is included when previewLimit is positive.
// Unreadable documents are titled by file name.
func NewCards(ctx context.Context, accessor document.Accessor, docs []*document.Document, mode document.TitleMode, previewLimit int, pinned []string) []Card {
	pins := make(map[string]struct{}, len(pinned))
	for _, path := range pinned {
		pins[path] = struct{}{}
	}

	cards := make([]Card, 0, len(docs))

	for _, doc := range docs {
		card := Card{
			Path:     doc.Path,
			Modified: doc.Modified,
			Created:  doc.Created,
			Size:     doc.Size,
		}

		_, card.Pinned = pins[doc.Path]

		contents, err := accessor.Read(ctx, doc)
		if err != nil || contents == nil {
			card.Title = doc.Basename()
			cards = append(cards, card)

			continue
		}

		card.Title, card.Subtitle = document.CardTitle(doc, contents.Content, mode)
		card.Tags = contents.Tags

		if previewLimit > 0 {
			card.Preview = document.Preview(contents.Content, previewLimit)
		}

		cards = append(cards, card)
	}

	return cards
}

// Colorizer paints the parts of a text card.
type Colorizer struct {
	// wrap is the width previews are wrapped to; zero leaves them as is.
	wrap   int
	title  func(string) string
	path   func(string) string
	meta   func(string) string
	tag    func(string) string
	pinned func(string) string
}

// NewColorizer creates a colorizer. When disabled every part is left as is.
func NewColorizer(enabled bool) *Colorizer {
	if !enabled {
		plain := func(s string) string { return s }
		return &Colorizer{title: plain, path: plain, meta: plain, tag: plain, pinned: plain}
	}

	return &Colorizer{
		title:  ansi.ColorFunc("white+bh"),
		path:   ansi.ColorFunc("blue"),
		meta:   ansi.ColorFunc("white+d"),
		tag:    ansi.ColorFunc("green"),
		pinned: ansi.ColorFunc("yellow+b"),
	}
}

// WithWrap wraps previews so that cards fit in width columns.
func (c *Colorizer) WithWrap(width int) *Colorizer {
	c.wrap = width
	return c
}

// TerminalWidth returns the width of w when it is a terminal, zero otherwise.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return width
}

// WriteText writes the cards as text blocks separated by blank lines.
func WriteText(w io.Writer, cards []Card, colorizer *Colorizer, now time.Time) error {
	for i, card := range cards {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.New(err)
			}
		}

		if _, err := io.WriteString(w, colorizer.card(card, now)); err != nil {
			return errors.New(err)
		}
	}

	return nil
}

func (c *Colorizer) card(card Card, now time.Time) string {
	var sb strings.Builder

	if card.Pinned {
		sb.WriteString(c.pinned("* "))
	}

	sb.WriteString(c.title(card.Title))

	if card.Subtitle != "" {
		sb.WriteString(" " + c.meta("("+card.Subtitle+")"))
	}

	sb.WriteString("\n")
	sb.WriteString(c.path(card.Path) + " " + c.meta("edited "+humanize.RelTime(card.Modified, now, "ago", "from now")))
	sb.WriteString(" " + c.meta(humanize.Bytes(uint64(max(card.Size, 0)))))
	sb.WriteString("\n")

	if len(card.Tags) > 0 {
		tags := make([]string, len(card.Tags))
		for i, tag := range card.Tags {
			tags[i] = c.tag("#" + tag)
		}

		sb.WriteString(strings.Join(tags, " ") + "\n")
	}

	if card.Preview != "" {
		preview := card.Preview
		if c.wrap > previewIndent+minWrap {
			preview = wordwrap.WrapString(preview, uint(c.wrap-previewIndent))
		}

		for line := range strings.SplitSeq(preview, "\n") {
			sb.WriteString(strings.Repeat(" ", previewIndent) + line + "\n")
		}
	}

	return sb.String()
}

// WriteJSON writes the cards as an indented JSON array.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.New(err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return errors.New(err)
	}

	return nil
}
