package document

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultPreviewLimit is the number of characters extracted for a card preview.
const DefaultPreviewLimit = 1200

const (
	sentenceWindow  = 100
	paragraphWindow = 100
	wordWindow      = 50
	minTableLines   = 10
	codeFence       = "```"
	ellipsis        = " ..."
)

var sentenceEndPattern = regexp.MustCompile(`[.!?]\s`)

// Preview extracts the part of a note shown on its card: the body without
// frontmatter, cut at a sentence, paragraph or word boundary near limit bytes,
// with an unterminated code fence closed and an ellipsis when text was dropped.
// A cut inside a table is moved so that at least ten table lines are kept.
func Preview(content string, limit int) string {
	if content == "" {
		return ""
	}

	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	body := content

	if strings.HasPrefix(content, "---") {
		if end := strings.Index(content[3:], "\n---"); end >= 0 {
			body = content[min(3+end+4, len(content)):]
		}
	}

	if len(body) <= limit {
		return strings.TrimSpace(body)
	}

	for limit > 0 && !utf8.RuneStart(body[limit]) {
		limit--
	}

	var truncated string

	if end, ok := extendTable(body, limit); ok {
		truncated = body[:end]
	} else {
		truncated = safeTruncate(body[:limit])
	}

	truncated = closeCodeFence(truncated)

	if len(truncated) < len(body) {
		truncated = strings.TrimRight(truncated, " \t\r\n") + ellipsis
	}

	return strings.TrimSpace(truncated)
}

// safeTruncate shortens text to the best boundary close to its end.
func safeTruncate(text string) string {
	lastSentenceEnd := -1

	for _, loc := range sentenceEndPattern.FindAllStringIndex(text, -1) {
		lastSentenceEnd = loc[0] + 1
	}

	if lastSentenceEnd > 0 && lastSentenceEnd > len(text)-sentenceWindow {
		return text[:lastSentenceEnd]
	}

	if lastParagraph := strings.LastIndex(text, "\n\n"); lastParagraph > 0 && lastParagraph > len(text)-paragraphWindow {
		return text[:lastParagraph]
	}

	lastSpace := max(strings.LastIndex(text, " "), strings.LastIndex(text, "\n"))
	if lastSpace > 0 && lastSpace > len(text)-wordWindow {
		return text[:lastSpace]
	}

	return text
}

// closeCodeFence appends a closing fence when text stops inside a fenced code block.
func closeCodeFence(text string) string {
	if strings.Count(text, codeFence)%2 == 1 {
		return text + "\n" + codeFence
	}

	return text
}

// extendTable moves a cut that falls inside a markdown table to the end of a
// table line, keeping at least minTableLines lines of the table and never
// going past its last line.
func extendTable(body string, cut int) (int, bool) {
	lineStart := strings.LastIndexByte(body[:cut], '\n') + 1
	if !isTableLine(lineAt(body, lineStart)) {
		return 0, false
	}

	tableStart := lineStart

	for tableStart > 0 {
		prevStart := strings.LastIndexByte(body[:tableStart-1], '\n') + 1
		if !isTableLine(lineAt(body, prevStart)) {
			break
		}

		tableStart = prevStart
	}

	end, count := tableStart, 0

	for pos := tableStart; pos < len(body); {
		line := lineAt(body, pos)
		if !isTableLine(line) {
			break
		}

		end = pos + len(line)
		count++

		if count >= minTableLines && end >= cut {
			break
		}

		pos = end + 1
	}

	return end, true
}

func lineAt(body string, start int) string {
	line, _, _ := strings.Cut(body[start:], "\n")
	return line
}

func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}
