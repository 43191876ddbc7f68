// FILE: internal/core/player.go
package core

import (
	"github.com/google/uuid"
)

// Player is a seat in a game
type Player struct {
	ID    string `json:"id"`
	Color Color  `json:"color"`
	Name  string `json:"name,omitempty"`
}

// PlayerConfig for API requests and configuration
type PlayerConfig struct {
	Name string `json:"name,omitempty" validate:"omitempty,max=32,printascii"`
}

// PlayersResponse for API responses
type PlayersResponse struct {
	Black *Player `json:"black"`
	White *Player `json:"white"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	name := config.Name
	if name == "" {
		name = color.Name()
	}

	return &Player{
		ID:    uuid.New().String(),
		Color: color,
		Name:  name,
	}
}
