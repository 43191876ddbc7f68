// FILE: internal/core/api.go
package core

// Request types

type CreateGameRequest struct {
	Black  PlayerConfig `json:"black"`
	White  PlayerConfig `json:"white"`
	Layout string       `json:"layout,omitempty" validate:"omitempty,max=200"`
	Turn   string       `json:"turn,omitempty" validate:"omitempty,oneof=b w"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,len=2"` // "d3" style, column a-h then row 1-8
}

type UndoRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=60"` // 60 placements fill the board
}

// Response types

type GameResponse struct {
	GameID   string          `json:"gameId"`
	Layout   string          `json:"layout"`
	Turn     string          `json:"turn"`  // "b" or "w"
	State    string          `json:"state"` // "ongoing", "black_wins", etc
	Score    ScoreResponse   `json:"score"`
	Moves    []string        `json:"moves"`
	Players  PlayersResponse `json:"players"`
	LastMove *MoveInfo       `json:"lastMove,omitempty"`
}

type ScoreResponse struct {
	Black int `json:"black"`
	White int `json:"white"`
}

type MoveInfo struct {
	Move        string   `json:"move"`
	PlayerColor string   `json:"playerColor"` // "b" or "w"
	Flipped     []string `json:"flipped"`
	Passed      bool     `json:"opponentPassed,omitempty"`
}

type ValidMovesResponse struct {
	Turn  string   `json:"turn"`
	Moves []string `json:"moves"`
}

type BoardResponse struct {
	Layout string `json:"layout"`
	Board  string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
