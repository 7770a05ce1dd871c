package rank

import "strings"

// Document is a single corpus record. Documents are immutable once
// constructed; ranking never modifies or copies their contents.
type Document struct {
	Title string
	Body  string
}

// Mentions reports whether label occurs in the document body as an exact
// whitespace-delimited token. Matching is case-sensitive; a label embedded
// in a longer token does not count.
func (d Document) Mentions(label string) bool {
	for _, token := range strings.Fields(d.Body) {
		if token == label {
			return true
		}
	}
	return false
}

// MentionSet returns the catalog labels mentioned by the document, in
// catalog order. Each label appears at most once no matter how many times
// the body repeats it.
func (d Document) MentionSet(catalog *Catalog) []string {
	if catalog.Len() == 0 {
		return nil
	}

	seen := make([]bool, catalog.Len())
	found := 0
	for _, token := range strings.Fields(d.Body) {
		pos, ok := catalog.position[token]
		if !ok || seen[pos] {
			continue
		}
		seen[pos] = true
		if found++; found == catalog.Len() {
			break
		}
	}

	if found == 0 {
		return nil
	}
	labels := make([]string, 0, found)
	for pos, hit := range seen {
		if hit {
			labels = append(labels, catalog.labels[pos])
		}
	}
	return labels
}
