package common

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Direction is a cardinal direction in clockwise order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every cardinal direction in clockwise order.
var Directions = [4]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Left returns the next direction counter-clockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the next direction clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Vector returns the unit vector of d scaled by magnitude. North is +Y.
func (d Direction) Vector(magnitude float64) cp.Vector {
	var v cp.Vector
	switch d {
	case North:
		v = cp.Vector{X: 0, Y: 1}
	case East:
		v = cp.Vector{X: 1, Y: 0}
	case South:
		v = cp.Vector{X: 0, Y: -1}
	case West:
		v = cp.Vector{X: -1, Y: 0}
	}
	return cp.Vector{X: v.X * magnitude, Y: v.Y * magnitude}
}

// ParseDirection accepts the full name or its first letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return 0, fmt.Errorf("common: unknown direction %q", s)
}
