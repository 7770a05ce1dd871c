package rank

import (
	"fmt"
	"slices"
)

// Strategy computes a ranking for a catalog over a corpus. All registered
// strategies are count-equivalent; they differ only in how the work is
// organized.
type Strategy func(catalog *Catalog, corpus *Corpus) []RankedEntry

var registry = make(map[string]Strategy)

func Register(name string, strategy Strategy) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("strategy already registered: %s", name))
	}
	registry[name] = strategy
}

func Get(name string) (Strategy, error) {
	strategy, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("strategy not found: %s", name)
	}
	return strategy, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
