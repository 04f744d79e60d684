// Package envelope holds the hand-drawn replacement amplitude state for a
// single waveform: one array per sign side plus a uniform vertical offset.
package envelope

// Side selects which half of the envelope a stroke writes into.
type Side int

const (
	Positive Side = iota
	Negative
)

func (s Side) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// Envelope is the drawn-envelope state for one waveform. The positive side
// replaces samples whose source value is >= 0, the negative side the rest.
// The two sides are fully independent; a stroke only touches the side it was
// routed to. All mutation happens from a single event-delivery goroutine, so
// no locking is needed.
type Envelope struct {
	pos    []float64
	neg    []float64
	offset float64
}

// New returns a zero-filled envelope sized for n samples.
func New(n int) *Envelope {
	return &Envelope{
		pos: make([]float64, n),
		neg: make([]float64, n),
	}
}

// Len returns the number of per-sample slots on each side.
func (e *Envelope) Len() int { return len(e.pos) }

// Positive returns the positive-side array. Callers must treat it as
// read-only; strokes are the only sanctioned mutation path.
func (e *Envelope) Positive() []float64 { return e.pos }

// Negative returns the negative-side array, same contract as Positive.
func (e *Envelope) Negative() []float64 { return e.neg }

// Offset returns the uniform vertical shift.
func (e *Envelope) Offset() float64 { return e.offset }

// SetOffset sets the uniform vertical shift. Stored stroke values stay
// relative to it.
func (e *Envelope) SetOffset(v float64) { e.offset = v }

// Reset zeroes both sides. The offset is left alone.
func (e *Envelope) Reset() {
	for i := range e.pos {
		e.pos[i] = 0
	}
	for i := range e.neg {
		e.neg[i] = 0
	}
}

// SideFor routes a raw pointer value to an envelope side: values at or above
// the offset draw the positive side, values below it the negative side.
func (e *Envelope) SideFor(raw float64) Side {
	if raw >= e.offset {
		return Positive
	}
	return Negative
}

// Apply writes one stroke step into the given side. The stored value is the
// raw pointer value made relative to the offset.
//
// When prevIdx is negative (stroke just started) or equal to newIdx, a single
// point is written. Otherwise every index between prevIdx and newIdx
// inclusive is filled by linear interpolation between the side's existing
// value at prevIdx and the new value, so fast pointer motion leaves no gaps.
// A newIdx outside [0, Len) is ignored and reported via the return value so
// the caller can keep its previous anchor.
func (e *Envelope) Apply(side Side, prevIdx, newIdx int, raw float64) bool {
	if newIdx < 0 || newIdx >= len(e.pos) {
		return false
	}
	value := raw - e.offset
	arr := e.pos
	if side == Negative {
		arr = e.neg
	}

	if prevIdx < 0 || prevIdx >= len(arr) || prevIdx == newIdx {
		arr[newIdx] = value
		return true
	}

	lo, hi := prevIdx, newIdx
	startVal, endVal := arr[prevIdx], value
	if lo > hi {
		lo, hi = hi, lo
		startVal, endVal = value, arr[prevIdx]
	}
	span := hi - lo
	for i := lo; i <= hi; i++ {
		t := float64(i-lo) / float64(span)
		arr[i] = startVal + (endVal-startVal)*t
	}
	return true
}
