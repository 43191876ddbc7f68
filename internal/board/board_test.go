package board

import (
	"strings"
	"testing"

	"othello/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initialLayout = "........" +
	"........" +
	"........" +
	"...WB..." +
	"...BW..." +
	"........" +
	"........" +
	"........"

func mustParse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := Parse(strings.Join(rows, ""))
	require.NoError(t, err)
	return b
}

func emptyRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "........"
	}
	return rows
}

func TestNew(t *testing.T) {
	b := New()

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pos := Position{Row: r, Col: c}
			cell, err := b.GetPiece(pos)
			require.NoError(t, err)

			color, ok := cell.Color()
			switch pos {
			case Position{3, 4}, Position{4, 3}:
				require.True(t, ok, pos.String())
				assert.Equal(t, core.ColorBlack, color, pos.String())
			case Position{3, 3}, Position{4, 4}:
				require.True(t, ok, pos.String())
				assert.Equal(t, core.ColorWhite, color, pos.String())
			default:
				assert.False(t, ok, pos.String())
				assert.Equal(t, Empty, cell)
			}
		}
	}

	assert.Equal(t, initialLayout, b.Layout())
	assert.Equal(t, 2, b.Count(core.ColorBlack))
	assert.Equal(t, 2, b.Count(core.ColorWhite))
}

func TestBoard_InvalidPosition(t *testing.T) {
	b := New()
	bad := []Position{{-1, 0}, {0, 8}, {8, 0}, {3, -2}}

	for _, pos := range bad {
		t.Run(pos.String(), func(t *testing.T) {
			_, err := b.GetPiece(pos)
			assert.ErrorIs(t, err, ErrInvalidPosition)

			_, err = b.IsOccupied(pos)
			assert.ErrorIs(t, err, ErrInvalidPosition)

			_, err = b.IsMine(pos, core.ColorBlack)
			assert.ErrorIs(t, err, ErrInvalidPosition)

			_, err = b.ValidMove(pos, core.ColorBlack)
			assert.ErrorIs(t, err, ErrInvalidPosition)

			_, err = b.PositionsToFlip(pos, core.ColorBlack, East)
			assert.ErrorIs(t, err, ErrInvalidPosition)

			err = b.PlacePiece(pos, core.ColorBlack)
			assert.ErrorIs(t, err, ErrInvalidPosition)
		})
	}

	assert.Equal(t, initialLayout, b.Layout())
}

func TestBoard_Occupancy(t *testing.T) {
	b := New()

	occupied, err := b.IsOccupied(Position{3, 3})
	require.NoError(t, err)
	assert.True(t, occupied)

	occupied, err = b.IsOccupied(Position{0, 0})
	require.NoError(t, err)
	assert.False(t, occupied)

	mine, err := b.IsMine(Position{3, 4}, core.ColorBlack)
	require.NoError(t, err)
	assert.True(t, mine)

	mine, err = b.IsMine(Position{3, 4}, core.ColorWhite)
	require.NoError(t, err)
	assert.False(t, mine)

	// Empty cells belong to nobody
	mine, err = b.IsMine(Position{0, 0}, core.ColorBlack)
	require.NoError(t, err)
	assert.False(t, mine)
}

func TestBoard_PositionsToFlip(t *testing.T) {
	origin := Position{0, 0}

	tests := []struct {
		name string
		row  string
		want []Position
	}{
		{"single capture", ".WB.....", []Position{{0, 1}}},
		{"run of captures", ".WWB....", []Position{{0, 1}, {0, 2}}},
		{"gap breaks the run", ".W.WB...", nil},
		{"adjacent friendly piece", ".BW.....", nil},
		{"runs off the edge", ".WWWWWWW", nil},
		{"empty neighbour", "..WB....", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, append([]string{tt.row}, emptyRows(7)...)...)

			got, err := b.PositionsToFlip(origin, core.ColorBlack, East)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoard_PositionsToFlip_Diagonal(t *testing.T) {
	// Given: white run on the main diagonal closed by black at (3,3)
	b := mustParse(t,
		"........",
		".W......",
		"..W.....",
		"...B....",
		"........",
		"........",
		"........",
		"........",
	)

	got, err := b.PositionsToFlip(Position{0, 0}, core.ColorBlack, SouthEast)
	require.NoError(t, err)
	assert.Equal(t, []Position{{1, 1}, {2, 2}}, got)

	// Then: scanning back from the anchor towards the origin finds nothing to bracket
	got, err = b.PositionsToFlip(Position{3, 3}, core.ColorBlack, NorthWest)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBoard_ValidMoves_Initial(t *testing.T) {
	b := New()

	assert.Equal(t, []Position{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, b.ValidMoves(core.ColorBlack))
	assert.Equal(t, []Position{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, b.ValidMoves(core.ColorWhite))

	ok, err := b.ValidMove(Position{2, 3}, core.ColorBlack)
	require.NoError(t, err)
	assert.True(t, ok)

	// Occupied cells are never legal
	ok, err = b.ValidMove(Position{3, 3}, core.ColorBlack)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.ValidMove(Position{0, 0}, core.ColorBlack)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoard_PlacePiece(t *testing.T) {
	t.Run("opening move", func(t *testing.T) {
		// Given: the standard opening
		b := New()

		// When: black plays d3
		err := b.PlacePiece(Position{2, 3}, core.ColorBlack)
		require.NoError(t, err)

		// Then: the white disc on d4 is flipped
		for _, pos := range []Position{{2, 3}, {3, 3}, {3, 4}, {4, 3}} {
			mine, err := b.IsMine(pos, core.ColorBlack)
			require.NoError(t, err)
			assert.True(t, mine, pos.String())
		}
		mine, err := b.IsMine(Position{4, 4}, core.ColorWhite)
		require.NoError(t, err)
		assert.True(t, mine)

		assert.Equal(t, 4, b.Count(core.ColorBlack))
		assert.Equal(t, 1, b.Count(core.ColorWhite))
	})

	t.Run("occupied cell", func(t *testing.T) {
		b := New()

		err := b.PlacePiece(Position{3, 3}, core.ColorBlack)
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, initialLayout, b.Layout())
	})

	t.Run("no captures", func(t *testing.T) {
		b := New()

		err := b.PlacePiece(Position{0, 0}, core.ColorBlack)
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, initialLayout, b.Layout())
	})

	t.Run("gap contributes no flips", func(t *testing.T) {
		// Given: a broken white run east of a1 and a capturable run to the south
		b := mustParse(t,
			".W.WB...",
			"W.......",
			"B.......",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		// When: black plays a1
		flipped, err := b.Play(Position{0, 0}, core.ColorBlack)
		require.NoError(t, err)

		// Then: only the southern run flips
		assert.Equal(t, []Position{{1, 0}}, flipped)
		assert.Equal(t, "BW.WB..."+"B......."+"B.......", b.Layout()[:24])
	})

	t.Run("several directions", func(t *testing.T) {
		b := mustParse(t,
			"B.B.....",
			".WW.....",
			"BW......",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		flipped, err := b.Play(Position{2, 2}, core.ColorBlack)
		require.NoError(t, err)

		// West, north-west and north in scan order
		assert.Equal(t, []Position{{2, 1}, {1, 1}, {1, 2}}, flipped)
		assert.Equal(t, 0, b.Count(core.ColorWhite))
	})
}

func TestBoard_PlacePiece_RoundTrip(t *testing.T) {
	start := New()
	require.NoError(t, start.PlacePiece(Position{2, 3}, core.ColorBlack))

	for _, color := range []core.Color{core.ColorBlack, core.ColorWhite} {
		for _, pos := range start.ValidMoves(color) {
			t.Run(color.Name()+" "+pos.String(), func(t *testing.T) {
				b := start.Clone()
				before := b.Layout()

				flipped, err := b.Play(pos, color)
				require.NoError(t, err)
				require.NotEmpty(t, flipped)

				cell, err := b.GetPiece(pos)
				require.NoError(t, err)
				assert.True(t, cell.Is(color))

				for _, f := range flipped {
					idx := f.Row*Size + f.Col
					was, err := Parse(before)
					require.NoError(t, err)
					prev, _ := was.GetPiece(f)
					assert.True(t, prev.Is(color.Opposite()), "flipped %s was not an opponent piece", f)
					assert.Equal(t, Symbol(Cell{color: color}), rune(b.Layout()[idx]))
				}

				assert.Equal(t, start.Count(color)+len(flipped)+1, b.Count(color))
				assert.Equal(t, start.Count(color.Opposite())-len(flipped), b.Count(color.Opposite()))
			})
		}
	}

	// The shared starting board was never touched
	assert.Equal(t, 4, start.Count(core.ColorBlack))
}

func TestBoard_HasMoveAndIsOver(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		b := New()
		assert.True(t, b.HasMove(core.ColorBlack))
		assert.True(t, b.HasMove(core.ColorWhite))
		assert.False(t, b.IsOver())
	})

	t.Run("full board", func(t *testing.T) {
		b := mustParse(t, strings.Repeat("BW", 32))
		assert.False(t, b.HasMove(core.ColorBlack))
		assert.False(t, b.HasMove(core.ColorWhite))
		assert.True(t, b.IsOver())
	})

	t.Run("blocked board with an empty cell", func(t *testing.T) {
		b := mustParse(t, "."+strings.Repeat("B", 63))
		assert.Empty(t, b.ValidMoves(core.ColorBlack))
		assert.Empty(t, b.ValidMoves(core.ColorWhite))
		assert.True(t, b.IsOver())
	})

	t.Run("only one side can move", func(t *testing.T) {
		b := mustParse(t, append([]string{"BW......"}, emptyRows(7)...)...)

		assert.Equal(t, []Position{{0, 2}}, b.ValidMoves(core.ColorBlack))
		assert.True(t, b.HasMove(core.ColorBlack))
		assert.False(t, b.HasMove(core.ColorWhite))
		assert.False(t, b.IsOver())
	})
}

func TestBoard_Clone(t *testing.T) {
	b := New()
	c := b.Clone()

	require.NoError(t, c.PlacePiece(Position{2, 3}, core.ColorBlack))

	assert.Equal(t, initialLayout, b.Layout())
	assert.NotEqual(t, b.Layout(), c.Layout())
}

func TestPiece_Flip(t *testing.T) {
	p := NewPiece(core.ColorBlack)

	p.Flip()
	assert.Equal(t, core.ColorWhite, p.Color())

	p.Flip()
	assert.Equal(t, core.ColorBlack, p.Color())
}
