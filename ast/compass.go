package ast

// Compass is a compass point on a node port. The zero value means no
// compass point was given.
type Compass string

const (
	CompassNone      Compass = ""
	CompassNorth     Compass = "n"
	CompassNorthEast Compass = "ne"
	CompassEast      Compass = "e"
	CompassSouthEast Compass = "se"
	CompassSouth     Compass = "s"
	CompassSouthWest Compass = "sw"
	CompassWest      Compass = "w"
	CompassNorthWest Compass = "nw"
	CompassCenter    Compass = "c"
	CompassAny       Compass = "_"
)

var compassPoints = map[string]Compass{
	"n":  CompassNorth,
	"ne": CompassNorthEast,
	"e":  CompassEast,
	"se": CompassSouthEast,
	"s":  CompassSouth,
	"sw": CompassSouthWest,
	"w":  CompassWest,
	"nw": CompassNorthWest,
	"c":  CompassCenter,
	"_":  CompassAny,
}

// ParseCompass returns the compass point named by s.
func ParseCompass(s string) (Compass, bool) {
	c, ok := compassPoints[s]
	return c, ok
}

// IsCompass reports whether s names a compass point.
func IsCompass(s string) bool {
	_, ok := compassPoints[s]
	return ok
}
