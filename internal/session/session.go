// Package session owns the mutable editing state for a set of open
// waveforms and routes collaborator pointer events to the right envelope.
package session

import (
	"fmt"

	"github.com/World-hackr/Advance-stacked-encoding/internal/envelope"
	"github.com/World-hackr/Advance-stacked-encoding/internal/wave"
)

// Slot is the editing state for one open waveform: its read-only source,
// the live envelope, the one-deep undo snapshot and the in-flight stroke.
type Slot struct {
	Source *wave.Source
	Env    *envelope.Envelope
	snap   envelope.Snapshot

	drawing bool
	prevIdx int
}

// Session maps waveform identifiers to slots. Events carry the id of the
// editing surface they landed on, so dispatch is a direct lookup rather than
// a scan over open waveforms. Like the rest of the core it is mutated from a
// single event-delivery goroutine only.
type Session struct {
	slots map[string]*Slot
	order []string
}

// New returns an empty session.
func New() *Session {
	return &Session{slots: make(map[string]*Slot)}
}

// Add opens a waveform under the given id with a fresh zero envelope.
// Duplicate ids are rejected; sibling waveforms are unaffected.
func (s *Session) Add(id string, src *wave.Source) (*Slot, error) {
	if _, ok := s.slots[id]; ok {
		return nil, fmt.Errorf("waveform %q already open", id)
	}
	slot := &Slot{
		Source:  src,
		Env:     envelope.New(src.Len()),
		prevIdx: -1,
	}
	s.slots[id] = slot
	s.order = append(s.order, id)
	return slot, nil
}

// Slot returns the slot for id, or nil when no such waveform is open.
func (s *Session) Slot(id string) *Slot {
	return s.slots[id]
}

// IDs returns the open waveform ids in insertion order.
func (s *Session) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Press begins a stroke: the envelope is snapshotted for undo and the first
// point is written. Events for unknown ids or indices outside the canvas are
// ignored.
func (s *Session) Press(id string, idx int, value float64) {
	slot := s.slots[id]
	if slot == nil {
		return
	}
	slot.snap.Begin(slot.Env)
	slot.drawing = true
	slot.prevIdx = -1
	s.applyStroke(slot, idx, value)
}

// Move extends the stroke to a new point, interpolating every index between
// the previous anchor and this one. Ignored unless a stroke is in progress.
func (s *Session) Move(id string, idx int, value float64) {
	slot := s.slots[id]
	if slot == nil || !slot.drawing {
		return
	}
	s.applyStroke(slot, idx, value)
}

// Release ends the stroke.
func (s *Session) Release(id string) {
	slot := s.slots[id]
	if slot == nil {
		return
	}
	slot.drawing = false
	slot.prevIdx = -1
}

func (s *Session) applyStroke(slot *Slot, idx int, value float64) {
	side := slot.Env.SideFor(value)
	if slot.Env.Apply(side, slot.prevIdx, idx, value) {
		slot.prevIdx = idx
	}
}

// Undo rolls the waveform's envelope back to the state at the most recent
// stroke start.
func (s *Session) Undo(id string) {
	if slot := s.slots[id]; slot != nil {
		slot.snap.Restore(slot.Env)
	}
}

// ResetEnvelope zeroes both sides of the waveform's envelope.
func (s *Session) ResetEnvelope(id string) {
	if slot := s.slots[id]; slot != nil {
		slot.Env.Reset()
	}
}
