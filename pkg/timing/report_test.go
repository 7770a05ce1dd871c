package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeasure_ReturnsWrappedResult(t *testing.T) {
	report := NewReport()

	result := Measure(report, "answer", func() int { return 42 })

	require.Equal(t, 42, result)
}

func TestMeasure_RecordsSamplesInOrder(t *testing.T) {
	report := NewReport()

	Measure(report, "first", func() int { return 1 })
	Measure(report, "second", func() int {
		time.Sleep(10 * time.Millisecond)
		return 2
	})

	samples := report.Samples()
	require.Len(t, samples, 2)
	require.Equal(t, "first", samples[0].Label)
	require.Equal(t, "second", samples[1].Label)
	require.GreaterOrEqual(t, samples[1].Elapsed, 10*time.Millisecond)
}

func TestReport_DistinctRunIDs(t *testing.T) {
	require.NotEqual(t, NewReport().ID(), NewReport().ID())
}

func TestReport_StringRendersMilliseconds(t *testing.T) {
	report := NewReport()
	Measure(report, "scan", func() struct{} {
		time.Sleep(5 * time.Millisecond)
		return struct{}{}
	})

	out := report.String()
	require.Contains(t, out, report.ID().String())
	require.Contains(t, out, "scan: ")
	require.Contains(t, out, "ms")
}

func TestReport_SamplesReturnsACopy(t *testing.T) {
	report := NewReport()
	Measure(report, "scan", func() int { return 0 })

	samples := report.Samples()
	samples[0].Label = "mutated"

	require.Equal(t, "scan", report.Samples()[0].Label)
}
