// Package probe replays compatibility probes: for a pair of values it evaluates every comparison
// operator and records whether a given boundary crossing latch fired.
package probe

import (
	"github.com/inoxlang/arrcompat/internal/compare"
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/value"
)

// ExnWrap runs thunk and discards any panic it raises.
func ExnWrap(thunk func()) {
	defer func() {
		_ = recover()
	}()
	thunk()
}

// Listen resets the latch of variant, runs thunk through ExnWrap and returns the state of the latch.
func Listen(latches *diag.Latches, variant diag.Variant, thunk func()) bool {
	latches.Reset(variant)
	ExnWrap(thunk)
	return latches.IsSet(variant)
}

type Options struct {
	// defaults to diag.DefaultLatches()
	Latches *diag.Latches

	// additional sinks (a diag.LogSink for example)
	Sinks []diag.Sink

	// variants that are not listed never reach the latches and the sinks, all variants are
	// enabled if the list is nil.
	Enabled []diag.Variant
}

// Harness owns a comparator whose events feed the latches.
type Harness struct {
	latches *diag.Latches
	cmp     *compare.Comparator
}

func NewHarness(opts Options) *Harness {
	latches := opts.Latches
	if latches == nil {
		latches = diag.DefaultLatches()
	}

	sinks := diag.MultiSink{latches}
	sinks = append(sinks, opts.Sinks...)

	gate := diag.NewGate(sinks, opts.Enabled...)
	if opts.Enabled != nil && len(opts.Enabled) == 0 {
		for _, variant := range diag.Variants {
			gate.Disable(variant)
		}
	}

	return &Harness{
		latches: latches,
		cmp:     compare.New(gate),
	}
}

func (h *Harness) Comparator() *compare.Comparator {
	return h.cmp
}

func (h *Harness) Latches() *diag.Latches {
	return h.latches
}

// Row is the outcome of the nine operators for a pair of values.
type Row struct {
	Left    value.Value
	Right   value.Value
	Variant diag.Variant

	// indexed like compare.Ops
	Fired   []bool
	Results []value.Value
}

// DoCompares evaluates every operator of compare.Ops on (a, b) and records whether the
// latch of variant fired for each of them.
func (h *Harness) DoCompares(a, b value.Value, variant diag.Variant) Row {
	row := Row{
		Left:    a,
		Right:   b,
		Variant: variant,
		Fired:   make([]bool, len(compare.Ops)),
		Results: make([]value.Value, len(compare.Ops)),
	}

	for i, op := range compare.Ops {
		op := op
		i := i
		row.Fired[i] = Listen(h.latches, variant, func() {
			row.Results[i] = h.cmp.Apply(op, a, b)
		})
	}
	return row
}

// Run evaluates all the cases of the matrix.
func (h *Harness) Run(m Matrix) []Row {
	rows := make([]Row, 0, len(m.Cases))
	for _, c := range m.Cases {
		rows = append(rows, h.DoCompares(c.Left, c.Right, c.Variant))
	}
	return rows
}
