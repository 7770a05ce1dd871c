package rank

import (
	"runtime"

	"github.com/nemanja-m/langrank/pkg/parallel"
)

// Corpus is a read-only view over a set of documents, split into
// contiguous partitions of roughly equal size. Partitions are processed
// independently and in parallel; strategies communicate only at explicit
// merge points, so the partition count never changes a ranking.
type Corpus struct {
	partitions [][]Document
}

// NewCorpus partitions docs into numPartitions chunks. The partition count
// is clamped to [1, len(docs)]; an empty corpus has no partitions.
func NewCorpus(docs []Document, numPartitions int) *Corpus {
	if len(docs) == 0 {
		return &Corpus{}
	}
	if numPartitions <= 0 {
		numPartitions = 1
	}
	if numPartitions > len(docs) {
		numPartitions = len(docs)
	}

	partitions := make([][]Document, 0, numPartitions)
	size := len(docs) / numPartitions
	rem := len(docs) % numPartitions
	for start := 0; start < len(docs); {
		end := start + size
		if rem > 0 {
			end++
			rem--
		}
		partitions = append(partitions, docs[start:end])
		start = end
	}
	return &Corpus{partitions: partitions}
}

func (c *Corpus) Len() int {
	total := 0
	for _, part := range c.partitions {
		total += len(part)
	}
	return total
}

func (c *Corpus) NumPartitions() int {
	return len(c.partitions)
}

// foldPartitions runs fold over every partition in parallel and returns
// the partition-local results in partition order. Each task owns exactly
// one result slot, so no synchronization beyond the pool's completion
// barrier is needed. The fold must not retain or mutate its input slice.
func foldPartitions[T any](c *Corpus, fold func(docs []Document) T) []T {
	results := make([]T, len(c.partitions))

	pool := parallel.NewPool(runtime.NumCPU())
	pool.Start()
	for i, part := range c.partitions {
		i, part := i, part
		pool.Submit(func() {
			results[i] = fold(part)
		})
	}
	pool.Close()

	return results
}
