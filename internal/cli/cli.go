// FILE: internal/cli/cli.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/display"
	"othello/internal/game"

	"github.com/chzyer/readline"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdMoves
	CmdUndo
	CmdColor
	CmdHints
	CmdVerbose
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// LineReader is satisfied by *readline.Instance
type LineReader interface {
	Readline() (string, error)
}

type prompter interface {
	SetPrompt(string)
}

type CLI struct {
	input   LineReader
	output  io.Writer
	theme   display.Theme
	verbose bool
	hints   bool
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  display.ThemeOff,
	}
}

// Reads a command synchronously
func (c *CLI) GetCommand() (*Command, error) {
	line, err := c.input.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return &Command{Type: CmdNone}, nil
	}
	if errors.Is(err, io.EOF) {
		return &Command{Type: CmdQuit}, nil
	}
	if err != nil {
		return nil, err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "moves", "m":
		return &Command{Type: CmdMoves}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "hints":
		return &Command{Type: CmdHints}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: []string{cmd}}
	}
}

func (c *CLI) SetTheme(theme display.Theme) error {
	if !display.ValidTheme(theme) {
		return fmt.Errorf("invalid theme: %s (use: off, green, brown, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) ToggleHints() bool {
	c.hints = !c.hints
	return c.hints
}

func (c *CLI) HintsEnabled() bool {
	return c.hints
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v\n", err))
}

// ShowPrompt hands the prompt to readline when available, otherwise prints it
func (c *CLI) ShowPrompt(prompt string) {
	if p, ok := c.input.(prompter); ok {
		p.SetPrompt(prompt)
		return
	}
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) DisplayBoard(b *board.Board, hints []board.Position) {
	if !c.hints {
		hints = nil
	}
	c.ShowMessage("\n" + display.Render(b, c.theme, hints) + "\n")
}

func (c *CLI) ShowScore(black, white int) {
	c.ShowMessage(fmt.Sprintf("Black %d - %d White", black, white))
}

func (c *CLI) ShowValidMoves(turn core.Color, moves []board.Position) {
	if len(moves) == 0 {
		c.ShowMessage(fmt.Sprintf("%s has no legal moves.", turn.Name()))
		return
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	c.ShowMessage(fmt.Sprintf("%s can play: %s", turn.Name(), strings.Join(names, " ")))
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new              - Start a new game from the standard opening
  resume <layout> [b|w]
                   - Start from a 64-cell layout (B, W, .) with the given side to move
  <square>         - Place a disc (e.g., d3, c4)
  moves/m          - List legal squares for the side to move
  undo [count]     - Undo last move(s), default 1
  color <theme>    - Set board color theme (off|green|brown|gray)
  hints            - Toggle legal-move markers on the board
  verbose          - Toggle flipped-disc details
  history          - Show game move history
  quit/exit        - Exit the program
  help/?           - Show this help message

A side with no legal move passes automatically.`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Othello!")
	c.ShowMessage("Commands: new, resume <layout>, <square>, moves, undo, hints, history, help/?, quit/exit")
	c.ShowMessage("Black moves first. Squares are named by column a-h and row 1-8, e.g. 'd3'.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting layout: %s\n", g.InitialLayout()))

	for i, snap := range g.History() {
		line := fmt.Sprintf("%d. %s", i+1, snap.PreviousMove)
		if snap.Passed {
			line += fmt.Sprintf(" (%s passes)", snap.NextTurn.Opposite().Name())
		}
		c.ShowMessage(line)
	}

	black, white := g.Score()
	c.ShowMessage("")
	c.ShowScore(black, white)
	c.ShowMessage(fmt.Sprintf("Game state: %s\n", g.State()))
}

func (c *CLI) ShowMove(result *game.MoveResult) {
	if c.verbose {
		flipped := make([]string, len(result.Flipped))
		for i, p := range result.Flipped {
			flipped[i] = p.String()
		}
		c.ShowMessage(fmt.Sprintf("%s: %s flips %s", result.Player.Name(), result.Move, strings.Join(flipped, " ")))
	} else {
		c.ShowMessage(fmt.Sprintf("%s: %s (%d flipped)", result.Player.Name(), result.Move, len(result.Flipped)))
	}

	if result.Passed {
		c.ShowMessage(fmt.Sprintf("%s has no legal move and passes.", result.Player.Opposite().Name()))
	}
}

func (c *CLI) ShowGameOver(state core.State, black, white int) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s", state))
	c.ShowScore(black, white)
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}
