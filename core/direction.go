package core

// Direction is one of the four grid movement directions
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Unit deltas indexed by Direction, screen coordinates (y grows downward)
var directionDeltas = [...][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Delta returns the unit vector (dx, dy) for the direction
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d]
	return v[0], v[1]
}

// Opposite returns the direction with the negated delta
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsOpposite reports whether o points exactly against d
func (d Direction) IsOpposite(o Direction) bool {
	dx, dy := d.Delta()
	ox, oy := o.Delta()
	return dx == -ox && dy == -oy
}

// Valid reports whether d is one of the four defined directions
func (d Direction) Valid() bool {
	return d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
