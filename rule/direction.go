package rule

import "strconv"

// Direction tells which mapping operation is running.
type Direction int

const (
	ToSource Direction = iota
	ToDestination
)

// String returns "source" or "destination".
func (d Direction) String() string {
	switch d {
	case ToSource:
		return "source"
	case ToDestination:
		return "destination"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}
