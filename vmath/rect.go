package vmath

// Rect is an integer axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Overlaps reports whether two rectangles share interior area
// Touching edges do not count, empty rectangles never overlap
func (r Rect) Overlaps(o Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// RectFromCenter snaps a float-centered box onto the integer grid
func RectFromCenter(cx, cy, width, height float64) Rect {
	return Rect{
		X:      Round(cx - width/2),
		Y:      Round(cy - height/2),
		Width:  int(width),
		Height: int(height),
	}
}

// SpanOverlap reports whether closed intervals [a0, a1] and [b0, b1] intersect
func SpanOverlap(a0, a1, b0, b1 float64) bool {
	return a1 >= b0 && a0 <= b1
}
