package document

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterFence = "---"

// SplitFrontmatter separates a leading `---` fenced YAML block from the body.
// ok is false when the content has no complete block, in which case body is the whole content.
func SplitFrontmatter(content string) (block, body string, ok bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, " \t\r") != frontmatterFence {
		return "", content, false
	}

	offset := 0

	for offset <= len(rest) {
		line, after, more := strings.Cut(rest[offset:], "\n")

		if strings.TrimRight(line, " \t\r") == frontmatterFence {
			return rest[:offset], after, true
		}

		if !more {
			break
		}

		offset += len(line) + 1
	}

	return "", content, false
}

// ParseFrontmatter decodes the frontmatter of content. Malformed YAML yields nil rather than an error,
// since a note being edited is often briefly invalid.
func ParseFrontmatter(content string) map[string]any {
	block, _, ok := SplitFrontmatter(content)
	if !ok || strings.TrimSpace(block) == "" {
		return nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return nil
	}

	return fields
}

// IsEmpty reports whether the body, once the frontmatter is removed, is blank.
func IsEmpty(content string) bool {
	_, body, _ := SplitFrontmatter(content)
	return strings.TrimSpace(body) == ""
}

// Parse builds the contents of a document from its raw text.
func Parse(content string) *Contents {
	frontmatter := ParseFrontmatter(content)

	return &Contents{
		Content:     content,
		Frontmatter: frontmatter,
		Tags:        ExtractTags(content, frontmatter),
	}
}
