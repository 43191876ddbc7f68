// FILE: internal/board/board.go
package board

import (
	"errors"
	"fmt"

	"othello/internal/core"
)

var (
	// ErrInvalidPosition reports coordinates outside the grid; a caller bug
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidMove reports a placement on an occupied cell or one that captures nothing
	ErrInvalidMove = errors.New("invalid move")
)

// Board owns the grid and every piece on it. It carries no turn state.
type Board struct {
	grid [Size][Size]*Piece
}

// New returns a board with the standard four-disc opening
func New() *Board {
	b := &Board{}
	mid := Size / 2
	b.grid[mid-1][mid-1] = NewPiece(core.ColorWhite)
	b.grid[mid][mid] = NewPiece(core.ColorWhite)
	b.grid[mid-1][mid] = NewPiece(core.ColorBlack)
	b.grid[mid][mid-1] = NewPiece(core.ColorBlack)
	return b
}

// Clone creates a deep copy, pieces are not shared between boards
func (b *Board) Clone() *Board {
	c := &Board{}
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if p := b.grid[r][col]; p != nil {
				c.grid[r][col] = NewPiece(p.color)
			}
		}
	}
	return c
}

func checkPos(pos Position) error {
	if !IsValidPos(pos) {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}
	return nil
}

func (b *Board) at(pos Position) *Piece {
	return b.grid[pos.Row][pos.Col]
}

// GetPiece returns the occupant of pos, which may be Empty
func (b *Board) GetPiece(pos Position) (Cell, error) {
	if err := checkPos(pos); err != nil {
		return Empty, err
	}
	if p := b.at(pos); p != nil {
		return Cell{color: p.color}, nil
	}
	return Empty, nil
}

func (b *Board) IsOccupied(pos Position) (bool, error) {
	if err := checkPos(pos); err != nil {
		return false, err
	}
	return b.at(pos) != nil, nil
}

// IsMine is false for an empty cell, otherwise whether the occupant has the given color
func (b *Board) IsMine(pos Position, color core.Color) (bool, error) {
	if err := checkPos(pos); err != nil {
		return false, err
	}
	p := b.at(pos)
	return p != nil && p.color == color, nil
}

// PositionsToFlip runs the bracketing scan from pos in one direction.
// It returns the run of opposing pieces closed by a piece of color, or nil
// when the run hits the edge, an empty cell, or starts with a friendly piece.
func (b *Board) PositionsToFlip(pos Position, color core.Color, dir Direction) ([]Position, error) {
	if err := checkPos(pos); err != nil {
		return nil, err
	}
	return b.scan(pos, color, dir), nil
}

func (b *Board) scan(pos Position, color core.Color, dir Direction) []Position {
	var run []Position
	for next := pos.step(dir); ; next = next.step(dir) {
		if !IsValidPos(next) {
			return nil
		}
		p := b.at(next)
		if p == nil {
			return nil
		}
		if p.color == color {
			if len(run) == 0 {
				return nil
			}
			return run
		}
		run = append(run, next)
	}
}

func (b *Board) validMove(pos Position, color core.Color) bool {
	if b.at(pos) != nil {
		return false
	}
	for _, dir := range Directions {
		if len(b.scan(pos, color, dir)) > 0 {
			return true
		}
	}
	return false
}

// ValidMove reports whether color may legally play at pos
func (b *Board) ValidMove(pos Position, color core.Color) (bool, error) {
	if err := checkPos(pos); err != nil {
		return false, err
	}
	return b.validMove(pos, color), nil
}

// ValidMoves lists the legal plays for color in row-major order
func (b *Board) ValidMoves(color core.Color) []Position {
	var moves []Position
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pos := Position{Row: r, Col: c}
			if b.validMove(pos, color) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

// Captures returns every piece a play by color at pos would flip, grouped by direction
// in scan order. An occupied cell captures nothing.
func (b *Board) Captures(pos Position, color core.Color) ([]Position, error) {
	if err := checkPos(pos); err != nil {
		return nil, err
	}
	if b.at(pos) != nil {
		return nil, nil
	}
	var all []Position
	for _, dir := range Directions {
		all = append(all, b.scan(pos, color, dir)...)
	}
	return all, nil
}

// PlacePiece puts a new piece of color at pos and flips every bracketed run.
// The grid is left untouched when the move is not legal.
func (b *Board) PlacePiece(pos Position, color core.Color) error {
	_, err := b.Play(pos, color)
	return err
}

// Play is PlacePiece that also reports the flipped positions
func (b *Board) Play(pos Position, color core.Color) ([]Position, error) {
	flips, err := b.Captures(pos, color)
	if err != nil {
		return nil, err
	}
	if len(flips) == 0 {
		return nil, fmt.Errorf("%w: %s for %s", ErrInvalidMove, pos, color.Name())
	}

	b.grid[pos.Row][pos.Col] = NewPiece(color)
	for _, f := range flips {
		b.at(f).Flip()
	}
	return flips, nil
}

func (b *Board) HasMove(color core.Color) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.validMove(Position{Row: r, Col: c}, color) {
				return true
			}
		}
	}
	return false
}

// IsOver is true when neither side can move. A full board is not checked separately.
func (b *Board) IsOver() bool {
	return !b.HasMove(core.ColorBlack) && !b.HasMove(core.ColorWhite)
}

// Count returns the number of pieces of color
func (b *Board) Count(color core.Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p := b.grid[r][c]; p != nil && p.color == color {
				n++
			}
		}
	}
	return n
}
