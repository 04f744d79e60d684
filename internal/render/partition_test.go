package render

import "testing"

func TestPartitionUpwardCrossing(t *testing.T) {
	pts := PartitionBySign([]float64{0, 1}, []float64{-1, 1})
	if len(pts) != 3 {
		t.Fatalf("len(pts) = %d, want 3", len(pts))
	}

	want := []Point{
		{X: 0, Y: -1, Tag: TagNegative},
		{X: 0.5, Y: 0, Tag: TagPositive},
		{X: 1, Y: 1, Tag: TagPositive},
	}
	for i, w := range want {
		if pts[i] != w {
			t.Fatalf("pts[%d] = %+v, want %+v", i, pts[i], w)
		}
	}
}

func TestPartitionDownwardCrossingTagsNegative(t *testing.T) {
	pts := PartitionBySign([]float64{0, 1}, []float64{1, -1})
	if len(pts) != 3 {
		t.Fatalf("len(pts) = %d, want 3", len(pts))
	}
	if pts[1].Tag != TagNegative || pts[1].Y != 0 || pts[1].X != 0.5 {
		t.Fatalf("crossing point = %+v, want (0.5, 0, negative)", pts[1])
	}
}

func TestPartitionZeroIsPositive(t *testing.T) {
	pts := PartitionBySign([]float64{0, 1}, []float64{0, 0.5})
	if len(pts) != 2 {
		t.Fatalf("len(pts) = %d, want 2 (no crossing)", len(pts))
	}
	if pts[0].Tag != TagPositive {
		t.Fatalf("tag of zero sample = %v, want positive", pts[0].Tag)
	}
}

func TestPartitionNearFlatSegmentSplitsAtMidpoint(t *testing.T) {
	// Crossing detected (>= 0 to < 0) but the drop is below the epsilon,
	// so the crossing X falls back to the segment midpoint.
	pts := PartitionBySign([]float64{0, 2}, []float64{0, -1e-13})
	if len(pts) != 3 {
		t.Fatalf("len(pts) = %d, want 3", len(pts))
	}
	if pts[1].X != 1 {
		t.Fatalf("crossing X = %v, want midpoint 1", pts[1].X)
	}
	if pts[1].Tag != TagNegative {
		t.Fatalf("crossing tag = %v, want negative", pts[1].Tag)
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	if pts := PartitionBySign(nil, nil); pts != nil {
		t.Fatalf("PartitionBySign(nil) = %v, want nil", pts)
	}
}

func TestPartitionSinglePoint(t *testing.T) {
	pts := PartitionBySign([]float64{3}, []float64{-0.2})
	if len(pts) != 1 {
		t.Fatalf("len(pts) = %d, want 1", len(pts))
	}
	if pts[0].Tag != TagNegative {
		t.Fatalf("tag = %v, want negative", pts[0].Tag)
	}
}
