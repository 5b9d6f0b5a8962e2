package core

// Direction is one of the four cardinal directions a snake can travel in.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = map[Direction]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

func (d Direction) String() string {
	return directionNames[d]
}

// Vec returns the unit vector of the direction in screen coordinates,
// where Y grows downwards.
func (d Direction) Vec() Vec {
	switch d {
	case Up:
		return Vec{X: 0, Y: -1}
	case Down:
		return Vec{X: 0, Y: 1}
	case Left:
		return Vec{X: -1, Y: 0}
	case Right:
		return Vec{X: 1, Y: 0}
	}
	panic("the value of direction is unknown")
}

// Vertical reports whether the direction lies on the Y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// IsColinear reports whether both directions lie on the same axis.
// A direction is colinear with itself and with its opposite.
func (d Direction) IsColinear(o Direction) bool {
	return d.Vertical() == o.Vertical()
}
