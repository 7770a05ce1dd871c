package rank

import (
	"cmp"
	"slices"
)

// RankedEntry is one label with its document-mention count. Every strategy
// produces exactly one entry per catalog label.
type RankedEntry struct {
	Label string
	Count int
}

// sortByCount orders entries by count descending. Entries arrive in
// catalog order, and the sort is stable, so equal counts keep their
// catalog order.
func sortByCount(entries []RankedEntry) []RankedEntry {
	slices.SortStableFunc(entries, func(left, right RankedEntry) int {
		return cmp.Compare(right.Count, left.Count)
	})
	return entries
}
