package game

import (
	"github.com/kuredoro/snake_smooth/core"
)

const (
	// Width is the thickness of the snake's body in world units.
	Width     = 10.0
	HalfWidth = Width / 2

	// spawnSize is the length a segment is born with. It is small enough
	// to be invisible, but keeps the segment's direction unambiguous.
	spawnSize = 0.01
)

// Growable is a body segment that can extend at its leading end and
// retract at its trailing end.
type Growable interface {
	// Grow extends the leading end by dist and returns the part of dist
	// it could not consume.
	Grow(dist float64) float64
	// Shrink retracts the trailing end towards the leading end by dist
	// and returns the part of dist it could not consume.
	Shrink(dist float64) float64
	End() core.Vec
	Dir() core.Direction
}

// Renderable is anything that occupies a rectangle on the field.
type Renderable interface {
	BBox() core.Rect
}

// Segment is one straight run of the snake's body.
type Segment interface {
	Growable
	Renderable
}

// Line is an axis-aligned segment. It is the only segment kind; the
// snake never bends between its two direction changes.
type Line struct {
	beg, end core.Vec
	dir      core.Direction
}

var _ Segment = (*Line)(nil)

// NewLine creates a near-zero-length segment at pos, pointing in dir.
func NewLine(pos core.Vec, dir core.Direction) Line {
	return Line{
		beg: pos,
		end: pos.Add(dir.Vec().Scale(spawnSize)),
		dir: dir,
	}
}

// Beg returns the trailing (tail-ward) point of the segment.
func (l *Line) Beg() core.Vec {
	return l.beg
}

// End returns the leading (head-ward) point of the segment.
func (l *Line) End() core.Vec {
	return l.end
}

func (l *Line) Dir() core.Direction {
	return l.dir
}

// Size returns the extent of the segment along its own axis.
func (l *Line) Size() float64 {
	if l.dir.Vertical() {
		return core.Maxf(l.end.Y-l.beg.Y, l.beg.Y-l.end.Y)
	}
	return core.Maxf(l.end.X-l.beg.X, l.beg.X-l.end.X)
}

// Grow moves the leading end further along the segment's direction.
// Growth is unconstrained, so the leftover is always zero.
func (l *Line) Grow(dist float64) float64 {
	l.end = l.end.Add(l.dir.Vec().Scale(dist))
	return 0
}

// Shrink moves the trailing end towards the leading end by at most the
// segment's own size. The returned leftover is the part of dist the
// segment could not absorb; the caller propagates it tail-wards.
func (l *Line) Shrink(dist float64) float64 {
	left := core.Clamp(dist-l.Size(), 0, dist)
	l.beg = l.beg.Add(l.dir.Vec().Scale(dist - left))
	return left
}

// BBox returns the thickened rectangle around the segment. The same
// rectangle is used for drawing and for collision checks.
func (l *Line) BBox() core.Rect {
	switch l.dir {
	case core.Up:
		return core.Rect{X: l.end.X - HalfWidth, Y: l.end.Y, W: Width, H: l.Size()}
	case core.Down:
		return core.Rect{X: l.end.X - HalfWidth, Y: l.beg.Y, W: Width, H: l.Size()}
	case core.Left:
		return core.Rect{X: l.end.X, Y: l.end.Y - HalfWidth, W: l.Size(), H: Width}
	case core.Right:
		return core.Rect{X: l.beg.X, Y: l.beg.Y - HalfWidth, W: l.Size(), H: Width}
	}
	panic("the value of direction is unknown")
}
