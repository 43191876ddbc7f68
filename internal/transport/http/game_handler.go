// FILE: internal/transport/http/game_handler.go
package http

import (
	"errors"

	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/display"
	"othello/internal/game"
	"othello/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGame starts a game from the standard opening or a supplied layout
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, _ := c.Locals(validatedBodyKey).(*core.CreateGameRequest)
	if req == nil {
		req = &core.CreateGameRequest{}
	}

	gameID, err := h.svc.NewGame(*req)
	if err != nil {
		return respondError(c, err, "failed to create game")
	}

	response, err := h.svc.Describe(gameID)
	if err != nil {
		return respondError(c, err, "failed to create game")
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetGame returns the game state. With wait=true it blocks until the move
// count differs from moveCount or the wait times out.
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID, err := gameIDParam(c)
	if err != nil {
		return err
	}

	if c.QueryBool("wait") {
		moveCount := c.QueryInt("moveCount", -1)

		// The registry wakes the client on a change, a deletion or its own timeout
		ctx := c.Context()
		changed, err := h.svc.WaitForChange(ctx, gameID, moveCount)
		if err != nil {
			return respondError(c, err, "failed to wait for game")
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return nil
		}
	}

	response, err := h.svc.Describe(gameID)
	if err != nil {
		return respondError(c, err, "failed to get game")
	}
	return c.JSON(response)
}

// DeleteGame drops a game from memory
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID, err := gameIDParam(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteGame(gameID); err != nil {
		return respondError(c, err, "failed to delete game")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetValidMoves lists the legal plays for the side to move
func (h *HTTPHandler) GetValidMoves(c *fiber.Ctx) error {
	gameID, err := gameIDParam(c)
	if err != nil {
		return err
	}

	turn, moves, err := h.svc.ValidMoves(gameID)
	if err != nil {
		return respondError(c, err, "failed to list moves")
	}

	squares := make([]string, len(moves))
	for i, m := range moves {
		squares[i] = m.String()
	}

	return c.JSON(core.ValidMovesResponse{
		Turn:  turn.String(),
		Moves: squares,
	})
}

// MakeMove plays a square for the side to move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID, err := gameIDParam(c)
	if err != nil {
		return err
	}

	req, ok := c.Locals(validatedBodyKey).(*core.MoveRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing move")
	}

	if _, err := h.svc.MakeMove(gameID, req.Move); err != nil {
		return respondError(c, err, "move rejected")
	}

	response, err := h.svc.Describe(gameID)
	if err != nil {
		return respondError(c, err, "failed to get game")
	}
	return c.JSON(response)
}

// UndoMove takes back one or more moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID, err := gameIDParam(c)
	if err != nil {
		return err
	}

	count := 1
	if req, ok := c.Locals(validatedBodyKey).(*core.UndoRequest); ok && req.Count > 0 {
		count = req.Count
	}

	if err := h.svc.UndoMoves(gameID, count); err != nil {
		return respondError(c, err, "undo failed")
	}

	response, err := h.svc.Describe(gameID)
	if err != nil {
		return respondError(c, err, "failed to get game")
	}
	return c.JSON(response)
}

// GetBoard returns the position as a layout string and an ASCII diagram
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID, err := gameIDParam(c)
	if err != nil {
		return err
	}

	b, err := h.svc.CurrentBoard(gameID)
	if err != nil {
		return respondError(c, err, "failed to get board")
	}

	return c.JSON(core.BoardResponse{
		Layout: b.Layout(),
		Board:  display.ASCII(b),
	})
}

func gameIDParam(c *fiber.Ctx) (string, error) {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid game ID")
	}
	return gameID, nil
}

// respondError maps domain errors to status codes
func respondError(c *fiber.Ctx, err error, msg string) error {
	status := fiber.StatusBadRequest
	code := core.ErrInvalidRequest

	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status, code, msg = fiber.StatusNotFound, core.ErrGameNotFound, "game not found"
	case errors.Is(err, game.ErrGameOver):
		status, code = fiber.StatusConflict, core.ErrGameOver
	case errors.Is(err, board.ErrInvalidMove):
		code = core.ErrInvalidMove
	case errors.Is(err, board.ErrInvalidPosition):
		code = core.ErrInvalidPosition
	case errors.Is(err, board.ErrInvalidLayout):
		code = core.ErrInvalidLayout
	}

	return c.Status(status).JSON(core.ErrorResponse{
		Error:   msg,
		Code:    code,
		Details: err.Error(),
	})
}
