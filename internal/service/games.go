package service

import (
	"context"
	"fmt"
	"time"

	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/game"
	"othello/internal/storage"

	"github.com/rs/zerolog/log"
)

// CreateGame registers a new game. An empty layout starts from the standard opening
// and an empty turn gives black the first move.
func (s *Service) CreateGame(id string, req core.CreateGameRequest) error {
	initial := board.New()
	if req.Layout != "" {
		b, err := board.Parse(req.Layout)
		if err != nil {
			return err
		}
		initial = b
	}

	startingTurn := core.ColorBlack
	if req.Turn != "" {
		c, ok := core.ParseColor(req.Turn)
		if !ok {
			return fmt.Errorf("invalid turn: %q", req.Turn)
		}
		startingTurn = c
	}

	blackPlayer := core.NewPlayer(req.Black, core.ColorBlack)
	whitePlayer := core.NewPlayer(req.White, core.ColorWhite)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	g := game.New(initial, blackPlayer, whitePlayer, startingTurn)
	s.games[id] = g

	log.Debug().Str("game", id).Str("turn", g.NextTurn().String()).Msg("game created")

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:        id,
			InitialLayout: g.InitialLayout(),
			StartingTurn:  g.NextTurn().String(),
			BlackPlayerID: blackPlayer.ID,
			BlackName:     blackPlayer.Name,
			WhitePlayerID: whitePlayer.ID,
			WhiteName:     whitePlayer.Name,
			StartTimeUTC:  time.Now().UTC(),
		})
		if g.State() != core.StateOngoing {
			s.recordResult(id, g)
		}
	}

	return nil
}

// NewGame creates a game under a fresh ID
func (s *Service) NewGame(req core.CreateGameRequest) (string, error) {
	id := s.GenerateGameID()
	if err := s.CreateGame(id, req); err != nil {
		return "", err
	}
	return id, nil
}

// Describe builds the API view of a game
func (s *Service) Describe(gameID string) (core.GameResponse, error) {
	var resp core.GameResponse
	err := s.View(gameID, func(g *game.Game) error {
		resp = BuildGameResponse(gameID, g)
		return nil
	})
	return resp, err
}

// BuildGameResponse converts game state to its wire form; the caller holds the game lock
func BuildGameResponse(gameID string, g *game.Game) core.GameResponse {
	black, white := g.Score()
	resp := core.GameResponse{
		GameID: gameID,
		Layout: g.CurrentLayout(),
		Turn:   g.NextTurn().String(),
		State:  g.State().Code(),
		Score:  core.ScoreResponse{Black: black, White: white},
		Moves:  g.Moves(),
		Players: core.PlayersResponse{
			Black: g.Player(core.ColorBlack),
			White: g.Player(core.ColorWhite),
		},
	}

	if result := g.LastResult(); result != nil {
		resp.LastMove = &core.MoveInfo{
			Move:        result.Move,
			PlayerColor: result.Player.String(),
			Flipped:     squares(result.Flipped),
			Passed:      result.Passed,
		}
	}
	return resp
}

func squares(positions []board.Position) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.String()
	}
	return out
}

// CurrentBoard returns a copy of the game's current position
func (s *Service) CurrentBoard(gameID string) (*board.Board, error) {
	var b *board.Board
	err := s.View(gameID, func(g *game.Game) error {
		b = g.Board()
		return nil
	})
	return b, err
}

// ValidMoves returns the side to move and its legal plays
func (s *Service) ValidMoves(gameID string) (core.Color, []board.Position, error) {
	var (
		turn  core.Color
		moves []board.Position
	)
	err := s.View(gameID, func(g *game.Game) error {
		turn = g.NextTurn()
		moves = g.ValidMoves()
		return nil
	})
	return turn, moves, err
}

// MakeMove plays a square in "d3" notation for the side to move
func (s *Service) MakeMove(gameID, move string) (*game.MoveResult, error) {
	pos, err := board.ParsePosition(move)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}

	result, err := g.Play(pos)
	if err != nil {
		return nil, err
	}

	moveCount := len(g.Moves())
	s.waiter.NotifyGame(gameID, moveCount)

	log.Debug().
		Str("game", gameID).
		Str("move", result.Move).
		Int("flipped", len(result.Flipped)).
		Bool("passed", result.Passed).
		Msg("move played")

	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:          gameID,
			MoveNumber:      moveCount,
			Square:          result.Move,
			Flipped:         len(result.Flipped),
			LayoutAfterMove: g.CurrentLayout(),
			PlayerColor:     result.Player.String(),
			OpponentPassed:  result.Passed,
			MoveTimeUTC:     time.Now().UTC(),
		})
		if result.GameState != core.StateOngoing {
			s.recordResult(gameID, g)
		}
	}

	return result, nil
}

func (s *Service) recordResult(gameID string, g *game.Game) {
	black, white := g.Score()
	s.store.RecordResult(storage.ResultRecord{
		GameID:     gameID,
		Result:     g.State().Code(),
		BlackDiscs: black,
		WhiteDiscs: white,
	})
}

// UndoMoves removes the specified number of moves from game history
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lookup(gameID)
	if err != nil {
		return err
	}

	if err := g.UndoMoves(count); err != nil {
		return err
	}

	remaining := len(g.Moves())
	s.waiter.NotifyGame(gameID, remaining)

	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, remaining)
	}

	return nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(gameID); err != nil {
		return err
	}

	s.waiter.RemoveGame(gameID)

	delete(s.games, gameID)
	return nil
}

// WaitForChange returns a channel that fires when the game's move count differs
// from moveCount, the wait times out, or ctx ends. It fires at once if the count
// already differs.
func (s *Service) WaitForChange(ctx context.Context, gameID string, moveCount int) (<-chan struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}

	if current := len(g.Moves()); current != moveCount {
		ch := make(chan struct{}, 1)
		ch <- struct{}{}
		return ch, nil
	}

	return s.waiter.RegisterWait(ctx, gameID, moveCount), nil
}
