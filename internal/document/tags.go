package document

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var inlineTagPattern = regexp.MustCompile(`(?:^|[\s(,;])#([\p{L}\p{N}_/\-]+)`)

// ExtractTags returns the tags of a note without the leading `#`: the
// `tags`/`tag` frontmatter fields first, then inline tags of the body outside
// fenced code blocks. Duplicates are dropped, first occurrence wins.
func ExtractTags(content string, frontmatter map[string]any) []string {
	var (
		tags []string
		seen = make(map[string]struct{})
	)

	add := func(tag string) {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag == "" || !isValidTag(tag) {
			return
		}

		if _, ok := seen[tag]; ok {
			return
		}

		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for key, val := range frontmatter {
		if strings.EqualFold(key, "tags") || strings.EqualFold(key, "tag") {
			for _, tag := range frontmatterTags(val) {
				add(tag)
			}
		}
	}

	_, body, _ := SplitFrontmatter(content)

	inFence := false

	for line := range strings.SplitSeq(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}

		if inFence {
			continue
		}

		for _, match := range inlineTagPattern.FindAllStringSubmatch(line, -1) {
			add(match[1])
		}
	}

	return tags
}

func frontmatterTags(val any) []string {
	switch v := val.(type) {
	case string:
		return strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	case []any:
		var tags []string

		for _, elem := range v {
			if s, ok := elem.(string); ok {
				tags = append(tags, s)
			}
		}

		return tags
	case []string:
		return v
	}

	return nil
}

// isValidTag rejects purely numeric tags such as `#123`.
func isValidTag(tag string) bool {
	return strings.IndexFunc(tag, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0
}

// TagCount is the number of documents carrying a tag.
type TagCount struct {
	Name  string
	Count int
}

// RankTags counts tags across documents, most frequent first, ties by name.
func RankTags(tagSets ...[]string) []TagCount {
	counts := make(map[string]int)

	for _, tags := range tagSets {
		for _, tag := range tags {
			counts[tag]++
		}
	}

	ranked := make([]TagCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, TagCount{Name: name, Count: count})
	}

	slices.SortFunc(ranked, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return ranked
}
