package envelope

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRoundTrip(t *testing.T) {
	e := New(5)
	e.SetOffset(0.125)
	e.Apply(Positive, -1, 0, 0.125)        // stored as 0
	e.Apply(Positive, 0, 4, 1.0/3.0+0.125) // endpoint stored as 1/3
	e.Apply(Negative, -1, 2, -0.70000001)

	var buf bytes.Buffer
	if err := e.WriteTable(&buf); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}

	got, hasOffset, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if !hasOffset {
		t.Fatal("ReadTable() hasOffset = false, want true")
	}
	if got.Len() != e.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), e.Len())
	}
	if got.Offset() != e.Offset() {
		t.Fatalf("Offset() = %v, want %v", got.Offset(), e.Offset())
	}
	for i := 0; i < e.Len(); i++ {
		if got.Positive()[i] != e.Positive()[i] {
			t.Fatalf("pos[%d] = %v, want %v", i, got.Positive()[i], e.Positive()[i])
		}
		if got.Negative()[i] != e.Negative()[i] {
			t.Fatalf("neg[%d] = %v, want %v", i, got.Negative()[i], e.Negative()[i])
		}
	}
}

func TestReadTableWithoutOffsetRecord(t *testing.T) {
	in := "index,positive,negative\n0,0.5,-0.25\n1,0.75,0\n"
	e, hasOffset, err := ReadTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if hasOffset {
		t.Fatal("ReadTable() hasOffset = true, want false")
	}
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
	if e.Offset() != 0 {
		t.Fatalf("Offset() = %v, want 0", e.Offset())
	}
	if e.Positive()[1] != 0.75 || e.Negative()[0] != -0.25 {
		t.Fatalf("unexpected values: pos=%v neg=%v", e.Positive(), e.Negative())
	}
}

func TestReadTableZeroOffsetRecordIsPresent(t *testing.T) {
	in := "offset,0\nindex,positive,negative\n0,0.5,0\n"
	e, hasOffset, err := ReadTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if !hasOffset {
		t.Fatal("ReadTable() hasOffset = false, want true for explicit zero record")
	}
	if e.Offset() != 0 {
		t.Fatalf("Offset() = %v, want 0", e.Offset())
	}
}

func TestReadTableRejectsOutOfOrderIndex(t *testing.T) {
	in := "index,positive,negative\n0,0,0\n2,0,0\n"
	if _, _, err := ReadTable(strings.NewReader(in)); err == nil {
		t.Fatal("ReadTable() accepted out-of-order index, want error")
	}
}

func TestSaveAndLoadTable(t *testing.T) {
	e := New(3)
	e.Apply(Positive, -1, 1, 0.5)

	path := t.TempDir() + "/envelope.csv"
	if err := e.SaveTable(path); err != nil {
		t.Fatalf("SaveTable() error = %v", err)
	}
	got, _, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if got.Positive()[1] != 0.5 {
		t.Fatalf("pos[1] = %v, want 0.5", got.Positive()[1])
	}
}
