package core

import "time"

// DefaultRate is the steps-per-second fallback when a caller passes a
// non-positive rate.
const DefaultRate = 10

// FixedStep gates generation advances to a steady steps-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(perSecond int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(perSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate, falling back to DefaultRate for rates that
// cannot pace a clock. It is safe to call from the main loop.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = DefaultRate
	}
	f.step = time.Second / time.Duration(perSecond)
}

// ShouldStep reports whether one step's worth of time has elapsed.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
