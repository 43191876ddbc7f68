// FILE: cmd/othello/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"othello/internal/cli"
	"othello/internal/display"
	"othello/internal/service"
	clitransport "othello/internal/transport/cli"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".othello_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	svc := service.New(nil)
	defer svc.Shutdown(time.Second)

	view := cli.New(rl, rl.Stdout())
	if term.IsTerminal(int(os.Stdout.Fd())) {
		_ = view.SetTheme(display.ThemeGreen)
	}
	handler := clitransport.New(svc, view)

	view.ShowWelcome()
	if err := handler.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
