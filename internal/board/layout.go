package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"othello/internal/core"
)

// ErrInvalidLayout is returned by Parse for malformed layout strings
var ErrInvalidLayout = errors.New("invalid layout")

const (
	blackSymbol = 'B'
	whiteSymbol = 'W'
	emptySymbol = '.'
)

// Parse builds a board from 64 cell symbols in row-major order.
// 'B' is black, 'W' is white, '.' or '-' is empty; whitespace is ignored.
func Parse(layout string) (*Board, error) {
	b := &Board{}
	i := 0
	for _, ch := range layout {
		if unicode.IsSpace(ch) {
			continue
		}
		if i >= Size*Size {
			return nil, fmt.Errorf("%w: more than %d cells", ErrInvalidLayout, Size*Size)
		}
		switch ch {
		case 'B', 'b':
			b.grid[i/Size][i%Size] = NewPiece(core.ColorBlack)
		case 'W', 'w':
			b.grid[i/Size][i%Size] = NewPiece(core.ColorWhite)
		case '.', '-':
		default:
			return nil, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidLayout, ch, i)
		}
		i++
	}
	if i != Size*Size {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidLayout, Size*Size, i)
	}
	return b, nil
}

// Layout is the compact form accepted by Parse
func (b *Board) Layout() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteRune(Symbol(b.cell(r, c)))
		}
	}
	return sb.String()
}

func (b *Board) cell(r, c int) Cell {
	if p := b.grid[r][c]; p != nil {
		return Cell{color: p.color}
	}
	return Empty
}

// Symbol returns the layout character for a cell
func Symbol(c Cell) rune {
	switch {
	case c.Is(core.ColorBlack):
		return blackSymbol
	case c.Is(core.ColorWhite):
		return whiteSymbol
	default:
		return emptySymbol
	}
}
