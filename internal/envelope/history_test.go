package envelope

import "testing"

func TestSnapshotRestoresToMostRecentBegin(t *testing.T) {
	e := New(5)
	var snap Snapshot

	snap.Begin(e)
	e.Apply(Positive, -1, 0, 0.4)
	e.Apply(Positive, 0, 4, 1.0)
	e.Apply(Negative, -1, 2, -0.6)

	snap.Restore(e)
	for i := 0; i < e.Len(); i++ {
		if e.Positive()[i] != 0 || e.Negative()[i] != 0 {
			t.Fatalf("index %d not restored to zero", i)
		}
	}
}

func TestSnapshotBeginClobbersPrevious(t *testing.T) {
	e := New(3)
	var snap Snapshot

	snap.Begin(e)
	e.Apply(Positive, -1, 1, 0.5)

	// Second stroke: snapshot now holds the post-first-stroke state.
	snap.Begin(e)
	e.Apply(Positive, 1, 2, 0.9)

	snap.Restore(e)
	if got := e.Positive()[1]; got != 0.5 {
		t.Fatalf("pos[1] = %v after restore, want 0.5", got)
	}
	if got := e.Positive()[2]; got != 0 {
		t.Fatalf("pos[2] = %v after restore, want 0", got)
	}
}

func TestRestoreWithoutBeginIsNoop(t *testing.T) {
	e := New(3)
	e.Apply(Positive, -1, 1, 0.5)

	var snap Snapshot
	snap.Restore(e)
	if got := e.Positive()[1]; got != 0.5 {
		t.Fatalf("pos[1] = %v, want 0.5 untouched", got)
	}
}
