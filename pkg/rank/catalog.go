package rank

import "slices"

// Catalog is the ordered list of candidate labels to rank. The order is
// fixed at construction and serves as the tie-break between labels with
// equal counts.
type Catalog struct {
	labels   []string
	position map[string]int
}

// NewCatalog builds a catalog from the given labels, dropping duplicates
// while keeping the first occurrence's position.
func NewCatalog(labels ...string) *Catalog {
	c := &Catalog{
		labels:   make([]string, 0, len(labels)),
		position: make(map[string]int, len(labels)),
	}
	for _, label := range labels {
		if _, exists := c.position[label]; exists {
			continue
		}
		c.position[label] = len(c.labels)
		c.labels = append(c.labels, label)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.labels)
}

func (c *Catalog) Contains(label string) bool {
	_, ok := c.position[label]
	return ok
}

// Labels returns a copy of the catalog labels in catalog order.
func (c *Catalog) Labels() []string {
	return slices.Clone(c.labels)
}
