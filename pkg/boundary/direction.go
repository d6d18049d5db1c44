package boundary

// Direction selects one scalar component of a boundary point.
type Direction int

const (
	X Direction = iota
	Y

	// XY is the number of directions.
	XY = 2
)

func (d Direction) Valid() bool { return d >= X && d <= Y }

func (d Direction) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return "Direction(?)"
}
