package envelope

// Snapshot is a one-slot undo buffer. Begin captures the envelope at stroke
// start, overwriting whatever was captured before; Restore rolls the live
// envelope back to the most recent capture. There is deliberately no stack.
type Snapshot struct {
	pos    []float64
	neg    []float64
	offset float64
	valid  bool
}

// Begin copies the envelope into the snapshot slot.
func (s *Snapshot) Begin(e *Envelope) {
	s.pos = append(s.pos[:0], e.pos...)
	s.neg = append(s.neg[:0], e.neg...)
	s.offset = e.offset
	s.valid = true
}

// Restore copies the snapshot back into the envelope. Without a prior Begin
// it is a no-op.
func (s *Snapshot) Restore(e *Envelope) {
	if !s.valid {
		return
	}
	copy(e.pos, s.pos)
	copy(e.neg, s.neg)
	e.offset = s.offset
}
