//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records timing samples of gadget runs and renders a
// profiling report.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label, operation count, and
// random draw count.
func (t *Timing) Sample(label string, ops, draws int) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Ops:   ops,
		Draws: draws,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the profiling report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("ns/op").SetAlign(tabulate.MR)
	tab.Header("Draws").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	var draws int
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(total)*100))
		row.Column(fmt.Sprintf("%.1f", sample.PerOp()))
		row.Column(fmt.Sprintf("%d", sample.Draws))
		draws += sample.Draws
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", draws)).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Ops   int
	Draws int
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// PerOp returns the average duration of one operation in
// nanoseconds.
func (s *Sample) PerOp() float64 {
	if s.Ops == 0 {
		return 0
	}
	return float64(s.Duration().Nanoseconds()) / float64(s.Ops)
}
