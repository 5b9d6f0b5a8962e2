package game

import (
	"github.com/kuredoro/snake_smooth/core"
)

// Snake is an ordered chain of segments, tail first, head last.
//
// Two invariants hold after every operation: the end of each segment
// equals the beginning of the next one, and no two adjacent segments
// are colinear.
type Snake struct {
	segs []Line
	dir  core.Direction
}

// NewSnake creates a snake of a single near-zero-length segment at
// (x, y), heading in dir.
func NewSnake(x, y float64, dir core.Direction) *Snake {
	return &Snake{
		segs: []Line{NewLine(core.Vec{X: x, Y: y}, dir)},
		dir:  dir,
	}
}

// Dir returns the direction the snake is currently travelling in. It is
// always the direction of the head segment.
func (s *Snake) Dir() core.Direction {
	return s.dir
}

// Head returns the leading segment.
func (s *Snake) Head() *Line {
	return &s.segs[len(s.segs)-1]
}

// Segments returns the chain tail first. The slice is owned by the
// snake and must not be mutated.
func (s *Snake) Segments() []Line {
	return s.segs
}

// Length returns the total body length.
func (s *Snake) Length() float64 {
	total := 0.0
	for i := range s.segs {
		total += s.segs[i].Size()
	}
	return total
}

// Turn changes the direction of travel. A direction colinear with the
// current one is a no-op. A real turn appends a fresh near-zero-length
// segment at the head point, which becomes the new head; the previous
// head turns into a fixed interior segment.
func (s *Snake) Turn(dir core.Direction) {
	if dir.IsColinear(s.dir) {
		return
	}

	s.segs = append(s.segs, NewLine(s.Head().End(), dir))
	s.dir = dir
}

// Move advances the snake by dist while conserving total length: the
// head grows by dist and the same amount is consumed at the tail. A
// tail segment that cannot absorb the remaining distance is dropped and
// the leftover is applied to the next one.
func (s *Snake) Move(dist float64) {
	s.Head().Grow(dist)

	rem := dist
	for rem > 0 {
		left := s.segs[0].Shrink(rem)
		if left <= 0 {
			break
		}
		if len(s.segs) == 1 {
			break
		}
		s.segs = s.segs[1:]
		rem = left
	}
}

// Grow extends the head by dist without retracting the tail, so the
// total length increases by exactly dist.
func (s *Snake) Grow(dist float64) {
	s.Head().Grow(dist)
}

// Collide reports whether any segment of the body overlaps box.
func (s *Snake) Collide(box core.Rect) bool {
	for i := range s.segs {
		if s.segs[i].BBox().Intersects(box) {
			return true
		}
	}
	return false
}

// SelfCollide reports whether the head overlaps a non-adjacent segment.
// The head's immediate neighbour always touches it at the shared pivot
// point, so it is excluded from the check.
func (s *Snake) SelfCollide() bool {
	head := s.Head().BBox()
	for i := 0; i < len(s.segs)-2; i++ {
		if s.segs[i].BBox().Intersects(head) {
			return true
		}
	}
	return false
}

// WallCollide reports whether the head sticks out of the field.
func (s *Snake) WallCollide(field core.Rect) bool {
	return !field.Contains(s.Head().BBox())
}
