package document

import (
	"fmt"
	"strings"
)

// TitleMode selects what a card shows as its title.
type TitleMode string

const (
	// TitleBoth shows the level-one heading with the file name underneath.
	TitleBoth TitleMode = "both"
	// TitleHeading shows only the level-one heading.
	TitleHeading TitleMode = "title"
	// TitleFilename shows only the file name.
	TitleFilename TitleMode = "filename"
)

// ParseTitleMode validates a title mode name.
func ParseTitleMode(str string) (TitleMode, error) {
	for _, mode := range []TitleMode{TitleBoth, TitleHeading, TitleFilename} {
		if strings.EqualFold(string(mode), str) {
			return mode, nil
		}
	}

	return "", fmt.Errorf("invalid title mode %q, supported modes: both, title, filename", str)
}

// Heading returns the level-one heading the body starts with, if any.
func Heading(content string) string {
	_, body, _ := SplitFrontmatter(content)
	body = strings.TrimLeft(body, " \t\r\n")

	line, _, _ := strings.Cut(body, "\n")
	line = strings.TrimRight(line, " \t\r")

	if heading, ok := strings.CutPrefix(line, "# "); ok {
		return strings.TrimSpace(heading)
	}

	return ""
}

// CardTitle returns the title of a card and an optional subtitle.
// Notes that do not start with a heading are always titled by their file name.
func CardTitle(doc *Document, content string, mode TitleMode) (title, subtitle string) {
	heading := Heading(content)
	if heading == "" || mode == TitleFilename {
		return doc.Basename(), ""
	}

	if mode == TitleHeading {
		return heading, ""
	}

	return heading, doc.Basename()
}
