package diag

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME = "src"
	LOG_SOURCE            = "hack-arr-compat"
)

var (
	_ = []Sink{(*Latches)(nil), (*Counter)(nil), LogSink{}, MultiSink(nil), (*Gate)(nil), Discard}

	defaultLatches = NewLatches()
)

// A Sink receives boundary crossing events. Reporting never changes the result of a comparison.
type Sink interface {
	Report(e Event)
}

type discardSink struct{}

func (discardSink) Report(Event) {}

// Discard ignores all events.
var Discard Sink = discardSink{}

// MultiSink forwards events to each of its sinks in order.
type MultiSink []Sink

func (s MultiSink) Report(e Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Report(e)
		}
	}
}

//-----------------------------------------------------------------------------
// Latches
//-----------------------------------------------------------------------------

// Latches holds one boolean latch per variant. A latch is set by any event of its variant and
// stays set until it is reset. Latches are not safe for concurrent use: probes reset a latch,
// run a single comparison and read the latch from the same goroutine.
type Latches struct {
	bits *bitset.BitSet
}

func NewLatches() *Latches {
	return &Latches{bits: bitset.New(uint(variantCount))}
}

// DefaultLatches returns the process-wide latches.
func DefaultLatches() *Latches {
	return defaultLatches
}

func (l *Latches) Report(e Event) {
	l.bits.Set(uint(e.Variant))
}

func (l *Latches) Reset(v Variant) {
	l.bits.Clear(uint(v))
}

func (l *Latches) ResetAll() {
	l.bits.ClearAll()
}

func (l *Latches) IsSet(v Variant) bool {
	return l.bits.Test(uint(v))
}

//-----------------------------------------------------------------------------
// Counter
//-----------------------------------------------------------------------------

// Counter counts the events of each variant.
type Counter struct {
	counts [variantCount]int
	last   Event
}

func (c *Counter) Report(e Event) {
	c.counts[e.Variant]++
	c.last = e
}

func (c *Counter) Count(v Variant) int {
	return c.counts[v]
}

func (c *Counter) Total() int {
	total := 0
	for _, count := range c.counts {
		total += count
	}
	return total
}

// Last returns the last reported event, ok is false if nothing was reported since the last reset.
func (c *Counter) Last() (e Event, ok bool) {
	return c.last, c.Total() != 0
}

func (c *Counter) Reset() {
	*c = Counter{}
}

//-----------------------------------------------------------------------------
// Logging
//-----------------------------------------------------------------------------

// LogSink writes events to a zerolog logger, the zero value logs nothing.
type LogSink struct {
	Logger zerolog.Logger
	Level  zerolog.Level
}

// NewLogSink creates a sink logging events at level, the logger is tagged with a src field.
func NewLogSink(logger zerolog.Logger, level zerolog.Level) LogSink {
	return LogSink{
		Logger: ChildLoggerForSource(logger, LOG_SOURCE),
		Level:  level,
	}
}

func (s LogSink) Report(e Event) {
	s.Logger.WithLevel(s.Level).
		Stringer("variant", e.Variant).
		Str("op", e.Op).
		Stringer("left", e.Left).
		Stringer("right", e.Right).
		Msg(e.Message())
}

//-----------------------------------------------------------------------------
// Gate
//-----------------------------------------------------------------------------

// Gate forwards the events of the enabled variants to the next sink, it mirrors the runtime
// options switching the compatibility notices on and off.
type Gate struct {
	next    Sink
	enabled *bitset.BitSet
}

// NewGate creates a gate, if no variant is passed all variants are enabled.
func NewGate(next Sink, enabled ...Variant) *Gate {
	bits := bitset.New(uint(variantCount))
	if len(enabled) == 0 {
		enabled = Variants
	}
	for _, v := range enabled {
		bits.Set(uint(v))
	}
	return &Gate{next: next, enabled: bits}
}

func (g *Gate) Disable(v Variant) {
	g.enabled.Clear(uint(v))
}

func (g *Gate) Enabled(v Variant) bool {
	return g.enabled.Test(uint(v))
}

func (g *Gate) Report(e Event) {
	if g.next != nil && g.Enabled(e.Variant) {
		g.next.Report(e)
	}
}
