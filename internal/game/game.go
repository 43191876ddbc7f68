// FILE: internal/game/game.go
package game

import (
	"errors"
	"fmt"

	"othello/internal/board"
	"othello/internal/core"
)

// ErrGameOver is returned when a move is submitted after the game has ended
var ErrGameOver = errors.New("game is over")

type Snapshot struct {
	Board        *board.Board // Position at this point, owned by the snapshot
	PreviousMove string       // Move that created this position (empty for initial)
	NextTurn     core.Color   // Whose turn it is at this position
	Passed       bool         // The side after the mover had no legal move and was skipped
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      string
	Player    core.Color
	Flipped   []board.Position
	Passed    bool
	GameState core.State
}

// Game drives turn order over a board: who moves, passes and the end of play
type Game struct {
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	state      core.State
	lastResult *MoveResult
}

// New starts a game from initial, which is cloned. When the starting side has no
// move the turn passes to the opponent; a position with no moves at all is already over.
func New(initial *board.Board, blackPlayer, whitePlayer *core.Player, startingTurn core.Color) *Game {
	b := initial.Clone()

	g := &Game{
		players: map[core.Color]*core.Player{
			core.ColorBlack: blackPlayer,
			core.ColorWhite: whitePlayer,
		},
		state: core.StateOngoing,
	}

	turn := startingTurn
	if !turn.Valid() {
		turn = core.ColorBlack
	}
	if !b.HasMove(turn) && b.HasMove(turn.Opposite()) {
		turn = turn.Opposite()
	}
	g.snapshots = []Snapshot{{Board: b, NextTurn: turn}}

	if b.IsOver() {
		g.state = outcome(b)
	}
	return g
}

func (g *Game) current() *Snapshot {
	return &g.snapshots[len(g.snapshots)-1]
}

// Play places a piece for the side to move and advances the turn
func (g *Game) Play(pos board.Position) (*MoveResult, error) {
	if g.state != core.StateOngoing {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, g.state)
	}

	snap := g.current()
	mover := snap.NextTurn

	next := snap.Board.Clone()
	flipped, err := next.Play(pos, mover)
	if err != nil {
		return nil, err
	}

	nextTurn := mover.Opposite()
	passed := false
	if !next.HasMove(nextTurn) && next.HasMove(mover) {
		nextTurn = mover
		passed = true
	}

	g.snapshots = append(g.snapshots, Snapshot{
		Board:        next,
		PreviousMove: pos.String(),
		NextTurn:     nextTurn,
		Passed:       passed,
	})

	if next.IsOver() {
		g.state = outcome(next)
	}

	result := &MoveResult{
		Move:      pos.String(),
		Player:    mover,
		Flipped:   flipped,
		Passed:    passed,
		GameState: g.state,
	}
	g.lastResult = result
	return result, nil
}

func outcome(b *board.Board) core.State {
	black, white := b.Count(core.ColorBlack), b.Count(core.ColorWhite)
	switch {
	case black > white:
		return core.StateBlackWins
	case white > black:
		return core.StateWhiteWins
	default:
		return core.StateDraw
	}
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

func (g *Game) CurrentSnapshot() Snapshot {
	return *g.current()
}

// Board returns a copy of the current position
func (g *Game) Board() *board.Board {
	return g.current().Board.Clone()
}

func (g *Game) CurrentLayout() string {
	return g.current().Board.Layout()
}

func (g *Game) NextTurn() core.Color {
	return g.current().NextTurn
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurn()]
}

func (g *Game) Player(color core.Color) *core.Player {
	return g.players[color]
}

// ValidMoves lists legal plays for the side to move, empty once the game is over
func (g *Game) ValidMoves() []board.Position {
	if g.state != core.StateOngoing {
		return nil
	}
	snap := g.current()
	return snap.Board.ValidMoves(snap.NextTurn)
}

// Score returns the disc count for each side
func (g *Game) Score() (black, white int) {
	b := g.current().Board
	return b.Count(core.ColorBlack), b.Count(core.ColorWhite)
}

func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.state = core.StateOngoing
	if g.current().Board.IsOver() {
		g.state = outcome(g.current().Board)
	}
	g.lastResult = nil
	return nil
}

// Moves returns the played squares in order
func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

// History returns every snapshot after the initial position
func (g *Game) History() []Snapshot {
	return append([]Snapshot(nil), g.snapshots[1:]...)
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) InitialLayout() string {
	return g.snapshots[0].Board.Layout()
}
