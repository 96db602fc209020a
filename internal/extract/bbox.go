package extract

// CoordinateSpace is the relative coordinate range the model reports
// bounding boxes in: both axes span 0..1000 regardless of the source
// image resolution.
const CoordinateSpace = 1000.0

// BBox is an axis-aligned box as [x1, y1, x2, y2].
type BBox [4]float64

func (b BBox) X1() float64 { return b[0] }
func (b BBox) Y1() float64 { return b[1] }
func (b BBox) X2() float64 { return b[2] }
func (b BBox) Y2() float64 { return b[3] }

// Clip bounds the box into [0, maxX] × [0, maxY]. Models may slightly
// overshoot the declared image bounds; overshooting boxes are clipped,
// never rejected. Clipping is idempotent.
func (b BBox) Clip(maxX, maxY float64) BBox {
	return BBox{
		clamp(b[0], 0, maxX),
		clamp(b[1], 0, maxY),
		clamp(b[2], 0, maxX),
		clamp(b[3], 0, maxY),
	}
}

// Valid reports whether the box has positive area with non-negative
// origin.
func (b BBox) Valid() bool {
	return b[0] >= 0 && b[1] >= 0 && b[0] < b[2] && b[1] < b[3]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
