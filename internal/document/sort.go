package document

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortMode orders the cards.
type SortMode string

const (
	SortTitleAsc    SortMode = "title-asc"
	SortTitleDesc   SortMode = "title-desc"
	SortEditedDesc  SortMode = "edited-desc"
	SortEditedAsc   SortMode = "edited-asc"
	SortCreatedDesc SortMode = "created-desc"
	SortCreatedAsc  SortMode = "created-asc"

	DefaultSortMode = SortEditedDesc
)

// AllSortModes lists the modes in the order they are cycled through.
var AllSortModes = []SortMode{
	SortEditedDesc,
	SortEditedAsc,
	SortCreatedDesc,
	SortCreatedAsc,
	SortTitleAsc,
	SortTitleDesc,
}

// ParseSortMode validates a sort mode name.
func ParseSortMode(str string) (SortMode, error) {
	for _, mode := range AllSortModes {
		if strings.EqualFold(string(mode), str) {
			return mode, nil
		}
	}

	return "", fmt.Errorf("invalid sort mode %q, supported modes: %s", str, strings.Join(sortModeNames(), ", "))
}

// Next returns the mode following m in AllSortModes.
func (m SortMode) Next() SortMode {
	idx := slices.Index(AllSortModes, m)
	return AllSortModes[(idx+1)%len(AllSortModes)]
}

// Label is a human readable name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortTitleAsc:
		return "Title (A-Z)"
	case SortTitleDesc:
		return "Title (Z-A)"
	case SortEditedDesc:
		return "Edited (newest first)"
	case SortEditedAsc:
		return "Edited (oldest first)"
	case SortCreatedDesc:
		return "Created (newest first)"
	case SortCreatedAsc:
		return "Created (oldest first)"
	}

	return string(m)
}

func sortModeNames() []string {
	names := make([]string, len(AllSortModes))
	for i, mode := range AllSortModes {
		names[i] = string(mode)
	}

	return names
}

// Sort returns a sorted copy of docs. Pinned paths come first, then the mode
// decides; ties fall back to the path so the order is total.
func Sort(docs []*Document, mode SortMode, pinned []string) []*Document {
	pinnedSet := make(map[string]struct{}, len(pinned))
	for _, p := range pinned {
		pinnedSet[p] = struct{}{}
	}

	isPinned := func(doc *Document) int {
		if _, ok := pinnedSet[doc.Path]; ok {
			return 0
		}

		return 1
	}

	sorted := slices.Clone(docs)

	slices.SortStableFunc(sorted, func(a, b *Document) int {
		if c := cmp.Compare(isPinned(a), isPinned(b)); c != 0 {
			return c
		}

		if c := compareByMode(a, b, mode); c != 0 {
			return c
		}

		return strings.Compare(a.Path, b.Path)
	})

	return sorted
}

func compareByMode(a, b *Document, mode SortMode) int {
	switch mode {
	case SortTitleAsc:
		return strings.Compare(strings.ToLower(a.Basename()), strings.ToLower(b.Basename()))
	case SortTitleDesc:
		return strings.Compare(strings.ToLower(b.Basename()), strings.ToLower(a.Basename()))
	case SortEditedAsc:
		return a.Modified.Compare(b.Modified)
	case SortCreatedDesc:
		return b.Created.Compare(a.Created)
	case SortCreatedAsc:
		return a.Created.Compare(b.Created)
	case SortEditedDesc:
	}

	return b.Modified.Compare(a.Modified)
}
