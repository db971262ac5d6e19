package board

import "fmt"

// BoundaryMode selects how coordinates outside the grid are resolved
type BoundaryMode uint8

const (
	// Solid treats any position outside the grid as fatal for the snake head
	Solid BoundaryMode = iota
	// Teleport wraps positions outside the grid to the opposite edge
	Teleport
)

// String returns the config name of the mode
func (m BoundaryMode) String() string {
	switch m {
	case Solid:
		return "solid"
	case Teleport:
		return "teleport"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler
func (m BoundaryMode) MarshalText() ([]byte, error) {
	switch m {
	case Solid, Teleport:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown boundary mode %d", uint8(m))
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *BoundaryMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "solid", "SOLID", "Solid":
		*m = Solid
	case "teleport", "TELEPORT", "Teleport":
		*m = Teleport
	default:
		return fmt.Errorf("unknown boundary mode %q (expected solid or teleport)", text)
	}
	return nil
}

// resolve applies the boundary policy to p on a width x height grid
func (m BoundaryMode) resolve(p Point, width, height int) (Point, bool) {
	if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
		return p, true
	}
	if m != Teleport {
		return p, false
	}
	return Point{X: wrap(p.X, width), Y: wrap(p.Y, height)}, true
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
