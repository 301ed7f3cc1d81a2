package gamemath

// Rect is an axis-aligned rectangle in screen space (+Y down).
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter builds a rectangle of size w×h centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether a and b share any area. Rectangles that only
// touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// OutsideVertical reports whether r extends above top or below bottom.
func OutsideVertical(r Rect, top, bottom float64) bool {
	return r.Y < top || r.Bottom() > bottom
}
