package board

import "othello/internal/core"

// Piece is a disc on the board. Its identity is fixed, its color is not.
type Piece struct {
	color core.Color
}

func NewPiece(color core.Color) *Piece {
	return &Piece{color: color}
}

func (p *Piece) Color() core.Color {
	return p.color
}

// Flip toggles the piece to the other color
func (p *Piece) Flip() {
	p.color = p.color.Opposite()
}

// Cell is a read-only view of one grid square: either empty or holding a piece of some color
type Cell struct {
	color core.Color
}

// Empty is the value of an unoccupied cell
var Empty = Cell{}

func (c Cell) Occupied() bool {
	return c.color != 0
}

// Color returns the occupant's color, ok is false for an empty cell
func (c Cell) Color() (color core.Color, ok bool) {
	return c.color, c.Occupied()
}

func (c Cell) Is(color core.Color) bool {
	return c.Occupied() && c.color == color
}
