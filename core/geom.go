package core

// Vec is a 2D point or displacement in world units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether the two rectangles share positive area.
// Rectangles that only touch along an edge or at a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether o lies entirely within r. A rectangle flush
// against the border still counts as contained.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}
