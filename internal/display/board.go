// FILE: internal/display/board.go
package display

import (
	"fmt"
	"strings"

	"othello/internal/board"
	"othello/internal/core"
)

type Theme string

const (
	ThemeOff   Theme = "off"
	ThemeGreen Theme = "green"
	ThemeBrown Theme = "brown"
	ThemeGray  Theme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	hint    string
	reset   string
}

var themes = map[Theme]themeColors{
	ThemeOff: {},
	ThemeGreen: {
		lightBg: "\033[48;5;34m", // Felt
		darkBg:  "\033[48;5;28m",
		white:   "\033[1;97m",
		black:   "\033[1;30m",
		hint:    "\033[33m",
		reset:   "\033[0m",
	},
	ThemeBrown: {
		lightBg: "\033[48;5;180m",
		darkBg:  "\033[48;5;137m",
		white:   "\033[1;97m",
		black:   "\033[1;30m",
		hint:    "\033[34m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m",
		darkBg:  "\033[48;5;245m",
		white:   "\033[1;97m",
		black:   "\033[1;30m",
		hint:    "\033[31m",
		reset:   "\033[0m",
	},
}

// ValidTheme reports whether t names a known theme
func ValidTheme(t Theme) bool {
	_, ok := themes[t]
	return ok
}

const (
	hintSymbol = '*'
	header     = "  a b c d e f g h"
)

// ASCII renders the board without colors or hints
func ASCII(b *board.Board) string {
	return Render(b, ThemeOff, nil)
}

// Render draws the board row by row through GetPiece; hints mark legal squares
func Render(b *board.Board, theme Theme, hints []board.Position) string {
	colors, ok := themes[theme]
	if !ok {
		colors = themes[ThemeOff]
	}

	marked := make(map[board.Position]bool, len(hints))
	for _, h := range hints {
		marked[h] = true
	}

	var sb strings.Builder
	sb.WriteString(header + "\n")

	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for c := 0; c < board.Size; c++ {
			pos := board.Position{Row: r, Col: c}
			cell, _ := b.GetPiece(pos)

			symbol := board.Symbol(cell)
			fg := ""
			switch {
			case cell.Is(core.ColorBlack):
				fg = colors.black
			case cell.Is(core.ColorWhite):
				fg = colors.white
			case marked[pos]:
				symbol = hintSymbol
				fg = colors.hint
			}

			if theme == ThemeOff || colors.reset == "" {
				sb.WriteString(fmt.Sprintf("%c ", symbol))
				continue
			}

			bg := colors.darkBg
			if (r+c)%2 == 0 {
				bg = colors.lightBg
			}
			sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, fg, symbol, colors.reset))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString(header)

	return sb.String()
}
