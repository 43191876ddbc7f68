// FILE: internal/transport/cli/handler.go
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"othello/internal/board"
	"othello/internal/cli"
	"othello/internal/core"
	"othello/internal/display"
	"othello/internal/game"
	"othello/internal/service"
	"othello/internal/transport"
)

// View is the terminal front end driven by the handler
type View interface {
	transport.View
	GetCommand() (*cli.Command, error)
	SetTheme(theme display.Theme) error
	ToggleVerbose() bool
	ToggleHints() bool
}

type CLIHandler struct {
	svc    *service.Service
	view   View
	gameID string
}

func New(svc *service.Service, view View) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Main game loop - simple command processing
func (h *CLIHandler) Run() error {
	for {
		h.view.ShowPrompt(h.getPrompt())

		cmd, err := h.view.GetCommand()
		if err != nil {
			return err
		}

		if !h.ProcessCommand(cmd) {
			return nil
		}
	}
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	if h.gameID == "" {
		return "> "
	}
	resp, err := h.svc.Describe(h.gameID)
	if err != nil || resp.State != core.StateOngoing.Code() {
		return "> "
	}
	return fmt.Sprintf("[%s]> ", strings.ToUpper(resp.Turn))
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		h.startGame(core.CreateGameRequest{})

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <layout> [b|w]")
			return true
		}
		args := cmd.Args
		req := core.CreateGameRequest{}
		if last := args[len(args)-1]; len(args) > 1 && (last == "b" || last == "w") {
			req.Turn = last
			args = args[:len(args)-1]
		}
		req.Layout = strings.Join(args, "")
		h.startGame(req)

	case cli.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <layout>'.")
			return true
		}
		h.play(cmd.Args[0])

	case cli.CmdMoves:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		turn, moves, err := h.svc.ValidMoves(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowValidMoves(turn, moves)

	case cli.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.UndoMoves(h.gameID, count); err != nil {
			h.view.ShowError(err)
			return true
		}
		if count == 1 {
			h.view.ShowMessage("Move undone")
		} else {
			h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
		}
		h.showBoard()

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|green|brown|gray>")
			return true
		}

		theme := display.Theme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
		if h.gameID != "" {
			h.showBoard()
		}

	case cli.CmdHints:
		hints := h.view.ToggleHints()
		h.view.ShowMessage(fmt.Sprintf("Move hints: %t", hints))
		if h.gameID != "" {
			h.showBoard()
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		err := h.svc.View(h.gameID, func(g *game.Game) error {
			h.view.ShowGameHistory(g)
			return nil
		})
		if err != nil {
			h.view.ShowError(err)
		}

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) play(square string) {
	result, err := h.svc.MakeMove(h.gameID, square)
	switch {
	case errors.Is(err, board.ErrInvalidPosition):
		h.view.ShowError(fmt.Errorf("unknown square %q, use column a-h and row 1-8", square))
		return
	case errors.Is(err, board.ErrInvalidMove):
		h.view.ShowError(fmt.Errorf("illegal move %s, type 'moves' for legal squares", square))
		return
	case err != nil:
		h.view.ShowError(err)
		return
	}

	h.view.ShowMove(result)
	h.showBoard()

	if result.GameState != core.StateOngoing {
		resp, _ := h.svc.Describe(h.gameID)
		h.view.ShowGameOver(result.GameState, resp.Score.Black, resp.Score.White)
		h.endGame()
	}
}

func (h *CLIHandler) startGame(req core.CreateGameRequest) {
	id, err := h.svc.NewGame(req)
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		return
	}

	h.endGame()
	h.gameID = id

	h.view.ShowMessage("Game started.")
	h.showBoard()

	// A resumed position may already be finished
	var (
		state        core.State
		black, white int
	)
	h.svc.View(id, func(g *game.Game) error {
		state = g.State()
		black, white = g.Score()
		return nil
	})
	if state != core.StateOngoing {
		h.view.ShowGameOver(state, black, white)
		h.endGame()
	}
}

// endGame drops the current game from the service
func (h *CLIHandler) endGame() {
	if h.gameID == "" {
		return
	}
	h.svc.DeleteGame(h.gameID)
	h.gameID = ""
}

func (h *CLIHandler) showBoard() {
	b, err := h.svc.CurrentBoard(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	_, moves, _ := h.svc.ValidMoves(h.gameID)
	h.view.DisplayBoard(b, moves)

	resp, err := h.svc.Describe(h.gameID)
	if err == nil {
		h.view.ShowScore(resp.Score.Black, resp.Score.White)
	}
}
