// FILE: internal/transport/transport.go
package transport

import (
	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/game"
)

// View abstracts display/output operations for interactive front ends
type View interface {
	DisplayBoard(b *board.Board, hints []board.Position)
	ShowMessage(msg string)
	ShowError(err error)
	ShowPrompt(prompt string)
	ShowHelp()
	ShowScore(black, white int)
	ShowValidMoves(turn core.Color, moves []board.Position)
	ShowGameHistory(g *game.Game)
	ShowMove(result *game.MoveResult)
	ShowGameOver(state core.State, black, white int)
}
