package board

import (
	"fmt"
	"strings"
)

// Size is the number of rows and columns on the board
const Size = 8

// Position addresses a cell by zero-based row and column
type Position struct {
	Row int
	Col int
}

// IsValidPos reports whether both coordinates lie in [0, Size)
func IsValidPos(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

func (p Position) Valid() bool {
	return IsValidPos(p)
}

func (p Position) step(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// String renders the position in column-letter row-number notation, "d3" for (2,3)
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("[%d,%d]", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%c", 'a'+p.Col, '1'+p.Row)
}

// ParsePosition is the inverse of Position.String
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q is not a square", ErrInvalidPosition, s)
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: %q is off the board", ErrInvalidPosition, s)
	}
	return Position{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}

// Direction is a unit step on the grid
type Direction struct {
	DRow int
	DCol int
}

var (
	East      = Direction{0, 1}
	SouthEast = Direction{1, 1}
	South     = Direction{1, 0}
	SouthWest = Direction{1, -1}
	West      = Direction{0, -1}
	NorthWest = Direction{-1, -1}
	North     = Direction{-1, 0}
	NorthEast = Direction{-1, 1}
)

// Directions lists the eight scan directions in evaluation order
var Directions = [8]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}
