package task

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering of the active view.
type SortKey string

const (
	// SortByPriority orders highest priority first.
	SortByPriority SortKey = "priority"

	// SortByEndDate orders earliest end date first.
	SortByEndDate SortKey = "endDate"
)

// DefaultSortKey is used when no key has been chosen.
const DefaultSortKey = SortByPriority

// ParseSortKey parses a key case-insensitively.
// "end-date" and "due" are accepted for endDate.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "priority":
		return SortByPriority, nil
	case "enddate", "end-date", "due":
		return SortByEndDate, nil
	default:
		return "", fmt.Errorf("invalid sort key: %s", s)
	}
}

// SortKeyOrDefault parses s, falling back to DefaultSortKey.
func SortKeyOrDefault(s string) SortKey {
	k, err := ParseSortKey(s)
	if err != nil {
		return DefaultSortKey
	}
	return k
}
