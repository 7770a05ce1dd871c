package timing

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sample is one measured invocation: the label the caller ran it under and
// the wall-clock duration it took.
type Sample struct {
	Label   string
	Elapsed time.Duration
}

// Report accumulates timing samples for a run. It is an explicit value the
// caller owns, not process-global state, so measured code stays
// side-effect-free. Not safe for concurrent use.
type Report struct {
	id      uuid.UUID
	samples []Sample
}

func NewReport() *Report {
	return &Report{id: uuid.New()}
}

func (r *Report) ID() uuid.UUID {
	return r.id
}

// Samples returns the recorded samples in measurement order.
func (r *Report) Samples() []Sample {
	return slices.Clone(r.samples)
}

// String renders one "label: elapsed" line per sample, in milliseconds.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run %s\n", r.id)
	for _, sample := range r.samples {
		fmt.Fprintf(&sb, "%s: %.3fms\n", sample.Label, float64(sample.Elapsed.Nanoseconds())/1e6)
	}
	return sb.String()
}

// Measure runs fn, records its wall-clock duration under label, and
// returns fn's result. The harness only measures; it never aborts or
// retries the wrapped computation.
func Measure[T any](r *Report, label string, fn func() T) T {
	start := time.Now()
	result := fn()
	r.samples = append(r.samples, Sample{Label: label, Elapsed: time.Since(start)})
	return result
}
