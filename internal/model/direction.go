// internal/model/direction.go
package model

import "fmt"

// Direction is where a tee shot or approach shot finished relative to the target.
type Direction string

const (
	DirectionHit   Direction = "hit"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// AllDirections lists every direction in display order.
var AllDirections = []Direction{DirectionLeft, DirectionHit, DirectionRight, DirectionLong, DirectionShort}

// DriveDirections lists the directions that are meaningful for a tee shot.
var DriveDirections = []Direction{DirectionLeft, DirectionHit, DirectionRight}

func (d Direction) ValidForApproach() bool {
	switch d {
	case DirectionHit, DirectionLeft, DirectionRight, DirectionLong, DirectionShort:
		return true
	}
	return false
}

func (d Direction) ValidForDrive() bool {
	switch d {
	case DirectionHit, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// ParseDirection validates s against the full direction set.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.ValidForApproach() {
		return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, s)
	}
	return d, nil
}
