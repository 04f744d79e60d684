package util

import (
	"testing"
	"time"
)

func TestSampleDuration(t *testing.T) {
	if got := SampleDuration(8000, 4000); got != 500*time.Millisecond {
		t.Fatalf("SampleDuration(8000, 4000) = %v, want 500ms", got)
	}
	if got := SampleDuration(0, 100); got != 0 {
		t.Fatalf("SampleDuration(0, 100) = %v, want 0", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(95 * time.Second); got != "1:35" {
		t.Fatalf("FormatDuration(95s) = %q, want 1:35", got)
	}
	if got := FormatDuration(-time.Second); got != "0:00" {
		t.Fatalf("FormatDuration(-1s) = %q, want 0:00", got)
	}
}
