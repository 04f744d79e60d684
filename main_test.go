package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/World-hackr/Advance-stacked-encoding/internal/envelope"
)

func TestLoadEnvelopeIntoZeroOffsetOverridesFlag(t *testing.T) {
	saved := envelope.New(3)
	saved.Apply(envelope.Positive, -1, 1, 0.5)

	path := filepath.Join(t.TempDir(), "envelope.csv")
	if err := saved.SaveTable(path); err != nil {
		t.Fatalf("SaveTable() error = %v", err)
	}

	// the flag set a nonzero offset before the table load
	live := envelope.New(3)
	live.SetOffset(0.4)
	if err := loadEnvelopeInto(live, path, 3); err != nil {
		t.Fatalf("loadEnvelopeInto() error = %v", err)
	}
	if live.Offset() != 0 {
		t.Fatalf("Offset() = %v, want 0 from the table's offset record", live.Offset())
	}
	if live.Positive()[1] != 0.5 {
		t.Fatalf("pos[1] = %v, want 0.5", live.Positive()[1])
	}
}

func TestLoadEnvelopeIntoKeepsFlagOffsetWithoutRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envelope.csv")
	in := "index,positive,negative\n0,0.5,0\n1,0.25,0\n"
	if err := os.WriteFile(path, []byte(in), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	live := envelope.New(2)
	live.SetOffset(0.4)
	if err := loadEnvelopeInto(live, path, 2); err != nil {
		t.Fatalf("loadEnvelopeInto() error = %v", err)
	}
	if live.Offset() != 0.4 {
		t.Fatalf("Offset() = %v, want 0.4 kept from the flag", live.Offset())
	}
}

func TestLoadEnvelopeIntoRejectsLengthMismatch(t *testing.T) {
	saved := envelope.New(2)
	path := filepath.Join(t.TempDir(), "envelope.csv")
	if err := saved.SaveTable(path); err != nil {
		t.Fatalf("SaveTable() error = %v", err)
	}

	live := envelope.New(5)
	if err := loadEnvelopeInto(live, path, 5); err == nil {
		t.Fatal("loadEnvelopeInto() accepted mismatched table length, want error")
	}
}
