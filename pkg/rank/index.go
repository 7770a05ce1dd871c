package rank

func init() {
	Register("index", func(catalog *Catalog, corpus *Corpus) []RankedEntry {
		return RankFromIndex(BuildIndex(catalog, corpus))
	})
}

// Index maps each catalog label to the documents that mention it. Labels
// with no mentions keep an empty postings group; the index retains the
// catalog so ranking can apply the catalog-order tie-break.
type Index struct {
	catalog *Catalog
	groups  map[string][]Document
}

// BuildIndex makes one parallel pass over the corpus: every document fans
// out into one (label, document) posting per mentioned label, postings are
// grouped by label within each partition, and the per-partition groups are
// merged so postings sharing a label end up colocated regardless of which
// partition produced them.
func BuildIndex(catalog *Catalog, corpus *Corpus) *Index {
	partial := foldPartitions(corpus, func(docs []Document) map[string][]Document {
		groups := make(map[string][]Document)
		for _, doc := range docs {
			for _, label := range doc.MentionSet(catalog) {
				groups[label] = append(groups[label], doc)
			}
		}
		return groups
	})

	// Seed every catalog label so zero-mention labels appear as empty
	// groups instead of being dropped.
	merged := make(map[string][]Document, catalog.Len())
	for _, label := range catalog.labels {
		merged[label] = nil
	}
	for _, groups := range partial {
		for label, postings := range groups {
			merged[label] = append(merged[label], postings...)
		}
	}
	return &Index{catalog: catalog, groups: merged}
}

// Postings returns the documents mentioning label. Labels outside the
// catalog return nil.
func (ix *Index) Postings(label string) []Document {
	return ix.groups[label]
}

// RankFromIndex reads each label's count off its postings group size.
func RankFromIndex(ix *Index) []RankedEntry {
	entries := make([]RankedEntry, 0, ix.catalog.Len())
	for _, label := range ix.catalog.labels {
		entries = append(entries, RankedEntry{Label: label, Count: len(ix.groups[label])})
	}
	return sortByCount(entries)
}
