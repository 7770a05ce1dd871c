package rank

func init() {
	Register("reduce", RankByReduce)
}

// RankByReduce ranks labels in one parallel pass with partition-local
// pre-aggregation. Every document fans out into a unit count per mentioned
// label, units are summed inside the owning partition first, and only the
// combined per-label sums cross the merge point: at most one entry per
// (partition, label) pair instead of one per mention. The merge is plain
// integer addition, so partition scheduling never affects the result.
func RankByReduce(catalog *Catalog, corpus *Corpus) []RankedEntry {
	partial := foldPartitions(corpus, func(docs []Document) map[string]int {
		counts := make(map[string]int)
		for _, doc := range docs {
			for _, label := range doc.MentionSet(catalog) {
				counts[label]++
			}
		}
		return counts
	})

	totals := make(map[string]int, catalog.Len())
	for _, counts := range partial {
		for label, count := range counts {
			totals[label] += count
		}
	}

	entries := make([]RankedEntry, 0, catalog.Len())
	for _, label := range catalog.labels {
		entries = append(entries, RankedEntry{Label: label, Count: totals[label]})
	}
	return sortByCount(entries)
}
