package game

import (
	"strings"
	"testing"

	"othello/internal/board"
	"othello/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayers() (*core.Player, *core.Player) {
	return core.NewPlayer(core.PlayerConfig{Name: "alice"}, core.ColorBlack),
		core.NewPlayer(core.PlayerConfig{}, core.ColorWhite)
}

func mustPos(t *testing.T, s string) board.Position {
	t.Helper()
	pos, err := board.ParsePosition(s)
	require.NoError(t, err)
	return pos
}

func mustBoard(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := board.Parse(strings.Join(rows, ""))
	require.NoError(t, err)
	return b
}

func TestNewGame(t *testing.T) {
	black, white := newPlayers()
	g := New(board.New(), black, white, core.ColorBlack)

	assert.Equal(t, core.StateOngoing, g.State())
	assert.Equal(t, core.ColorBlack, g.NextTurn())
	assert.Equal(t, black, g.NextPlayer())
	assert.Equal(t, "alice", g.Player(core.ColorBlack).Name)
	assert.Equal(t, "White", g.Player(core.ColorWhite).Name)
	assert.Empty(t, g.Moves())

	var moves []string
	for _, pos := range g.ValidMoves() {
		moves = append(moves, pos.String())
	}
	assert.Equal(t, []string{"d3", "c4", "f5", "e6"}, moves)

	b, w := g.Score()
	assert.Equal(t, 2, b)
	assert.Equal(t, 2, w)
}

func TestNewGame_InvalidStartingTurn(t *testing.T) {
	black, white := newPlayers()

	g := New(board.New(), black, white, core.Color(0))

	assert.Equal(t, core.ColorBlack, g.NextTurn())
	assert.Len(t, g.ValidMoves(), 4)
}

func TestGame_Play(t *testing.T) {
	t.Run("opening move", func(t *testing.T) {
		// Given: a fresh game
		black, white := newPlayers()
		g := New(board.New(), black, white, core.ColorBlack)

		// When: black plays d3
		result, err := g.Play(mustPos(t, "d3"))
		require.NoError(t, err)

		// Then: d4 flips and white is to move
		assert.Equal(t, "d3", result.Move)
		assert.Equal(t, core.ColorBlack, result.Player)
		assert.Equal(t, []board.Position{mustPos(t, "d4")}, result.Flipped)
		assert.False(t, result.Passed)
		assert.Equal(t, core.StateOngoing, result.GameState)

		assert.Equal(t, core.ColorWhite, g.NextTurn())
		assert.Equal(t, []string{"d3"}, g.Moves())
		assert.Equal(t, result, g.LastResult())

		b, w := g.Score()
		assert.Equal(t, 4, b)
		assert.Equal(t, 1, w)
	})

	t.Run("illegal move leaves the game unchanged", func(t *testing.T) {
		black, white := newPlayers()
		g := New(board.New(), black, white, core.ColorBlack)
		before := g.CurrentLayout()

		_, err := g.Play(mustPos(t, "a1"))
		assert.ErrorIs(t, err, board.ErrInvalidMove)

		_, err = g.Play(board.Position{Row: 9, Col: 0})
		assert.ErrorIs(t, err, board.ErrInvalidPosition)

		assert.Equal(t, before, g.CurrentLayout())
		assert.Equal(t, core.ColorBlack, g.NextTurn())
		assert.Empty(t, g.Moves())
	})

	t.Run("board returned is a copy", func(t *testing.T) {
		black, white := newPlayers()
		g := New(board.New(), black, white, core.ColorBlack)

		b := g.Board()
		require.NoError(t, b.PlacePiece(mustPos(t, "d3"), core.ColorBlack))

		assert.Equal(t, board.New().Layout(), g.CurrentLayout())
	})
}

func TestGame_PassAndEnd(t *testing.T) {
	// Given: white's only disc on row 1 is capturable and white has nothing on row 8
	black, white := newPlayers()
	g := New(mustBoard(t,
		".WB.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"BW......",
	), black, white, core.ColorBlack)

	// When: black captures on row 1
	result, err := g.Play(mustPos(t, "a1"))
	require.NoError(t, err)

	// Then: white has no reply and black moves again
	assert.True(t, result.Passed)
	assert.Equal(t, core.ColorBlack, g.NextTurn())
	assert.True(t, g.CurrentSnapshot().Passed)
	assert.Equal(t, core.StateOngoing, g.State())

	// When: black takes the last white disc
	result, err = g.Play(mustPos(t, "c8"))
	require.NoError(t, err)

	// Then: nobody can move and black wins on discs
	assert.Equal(t, core.StateBlackWins, result.GameState)
	assert.Equal(t, core.StateBlackWins, g.State())
	assert.Empty(t, g.ValidMoves())

	_, err = g.Play(mustPos(t, "h8"))
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Len(t, g.History(), 2)
}

func TestGame_StartingSideWithoutMoves(t *testing.T) {
	black, white := newPlayers()
	g := New(mustBoard(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	), black, white, core.ColorWhite)

	assert.Equal(t, core.ColorBlack, g.NextTurn())
	assert.Equal(t, core.StateOngoing, g.State())
}

func TestGame_FinishedPosition(t *testing.T) {
	black, white := newPlayers()
	g := New(mustBoard(t, strings.Repeat("BW", 32)), black, white, core.ColorBlack)

	assert.Equal(t, core.StateDraw, g.State())
	assert.Empty(t, g.ValidMoves())
}

func TestGame_UndoMoves(t *testing.T) {
	black, white := newPlayers()
	g := New(board.New(), black, white, core.ColorBlack)

	_, err := g.Play(mustPos(t, "d3"))
	require.NoError(t, err)
	_, err = g.Play(mustPos(t, "c3"))
	require.NoError(t, err)
	require.Equal(t, []string{"d3", "c3"}, g.Moves())

	t.Run("invalid counts", func(t *testing.T) {
		assert.Error(t, g.UndoMoves(0))
		assert.Error(t, g.UndoMoves(3))
		assert.Len(t, g.Moves(), 2)
	})

	t.Run("undo one", func(t *testing.T) {
		require.NoError(t, g.UndoMoves(1))
		assert.Equal(t, []string{"d3"}, g.Moves())
		assert.Equal(t, core.ColorWhite, g.NextTurn())
		assert.Nil(t, g.LastResult())
	})

	t.Run("back to the start", func(t *testing.T) {
		require.NoError(t, g.UndoMoves(1))
		assert.Empty(t, g.Moves())
		assert.Equal(t, g.InitialLayout(), g.CurrentLayout())
		assert.Equal(t, core.ColorBlack, g.NextTurn())
	})
}

func TestGame_UndoAfterGameOver(t *testing.T) {
	black, white := newPlayers()
	g := New(mustBoard(t,
		".WB.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	), black, white, core.ColorBlack)

	_, err := g.Play(mustPos(t, "a1"))
	require.NoError(t, err)
	require.Equal(t, core.StateBlackWins, g.State())

	require.NoError(t, g.UndoMoves(1))
	assert.Equal(t, core.StateOngoing, g.State())
	assert.NotEmpty(t, g.ValidMoves())
}
