// Package render produces the sign-partitioned curve geometry and the PNG
// comparison images written next to the exported audio.
package render

// Tag classifies a curve point by the sign of its amplitude. Zero counts as
// positive, matching stroke routing.
type Tag int

const (
	TagPositive Tag = iota
	TagNegative
)

// Point is one emitted vertex of a sign-partitioned polyline. The renderer
// draws each consecutive segment in the color of its starting point's tag,
// so no segment ever straddles a zero crossing.
type Point struct {
	X   float64
	Y   float64
	Tag Tag
}

func tagFor(v float64) Tag {
	if v < 0 {
		return TagNegative
	}
	return TagPositive
}

// PartitionBySign walks consecutive point pairs and inserts an exact
// interpolated point at every zero crossing. The inserted point carries the
// tag of the destination side: crossing upward tags it positive, crossing
// downward negative.
func PartitionBySign(xs, ys []float64) []Point {
	n := len(xs)
	if n == 0 {
		return nil
	}

	out := make([]Point, 0, n)
	for i := 0; i < n-1; i++ {
		yi, yn := ys[i], ys[i+1]
		out = append(out, Point{X: xs[i], Y: yi, Tag: tagFor(yi)})

		crossesUp := yi < 0 && yn >= 0
		crossesDown := yi >= 0 && yn < 0
		if !crossesUp && !crossesDown {
			continue
		}

		dy := yn - yi
		t := 0.5 // near-flat segment, split in the middle
		if dy > 1e-12 || dy < -1e-12 {
			t = -yi / dy
		}
		tag := TagNegative
		if crossesUp {
			tag = TagPositive
		}
		out = append(out, Point{
			X:   xs[i] + t*(xs[i+1]-xs[i]),
			Y:   0,
			Tag: tag,
		})
	}
	last := n - 1
	out = append(out, Point{X: xs[last], Y: ys[last], Tag: tagFor(ys[last])})
	return out
}
