package rank

func init() {
	Register("naive", RankNaive)
}

// RankNaive ranks labels by scanning the whole corpus once per label.
// Each per-label scan counts partitions in parallel with a local
// accumulator and sums the partial counts; summation is commutative and
// associative, so partition order and count never affect the result.
// O(|catalog| * |corpus|) document checks. This is the reference baseline
// the other strategies are measured against.
func RankNaive(catalog *Catalog, corpus *Corpus) []RankedEntry {
	entries := make([]RankedEntry, 0, catalog.Len())
	for _, label := range catalog.labels {
		partial := foldPartitions(corpus, func(docs []Document) int {
			count := 0
			for _, doc := range docs {
				if doc.Mentions(label) {
					count++
				}
			}
			return count
		})

		total := 0
		for _, count := range partial {
			total += count
		}
		entries = append(entries, RankedEntry{Label: label, Count: total})
	}
	return sortByCount(entries)
}
