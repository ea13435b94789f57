package battleship

import (
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type Direction uint8

const (
	// Row-wise, x grows
	DirectionX Direction = iota
	// Column-wise, y grows
	DirectionY
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "x", "X":
		return DirectionX, nil
	case "y", "Y":
		return DirectionY, nil
	default:
		return DirectionX, cerr.ErrInvalidDirection(s)
	}
}

func (d Direction) Other() Direction {
	if d == DirectionX {
		return DirectionY
	}
	return DirectionX
}

func (d Direction) String() string {
	if d == DirectionX {
		return "x"
	}
	return "y"
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Along returns the component of the point on the axis of d.
func (p Point) Along(d Direction) int {
	if d == DirectionX {
		return p.X
	}
	return p.Y
}

// Step returns the point i cells further along d.
func (p Point) Step(d Direction, i int) Point {
	if d == DirectionX {
		return Point{X: p.X + i, Y: p.Y}
	}
	return Point{X: p.X, Y: p.Y + i}
}
