package service

import (
	"time"

	"github.com/gmarchal/labyrinth/game/engine"
)

// SessionInfo provides information about a game session.
type SessionInfo struct {
	ID             string    `json:"id"`
	PlayerCount    int       `json:"player_count"`
	HumanCount     int       `json:"human_count"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	GameState      string    `json:"game_state"`
}

// TileInfo is the JSON shape of one tile.
type TileInfo struct {
	Type      string   `json:"type"`
	Rotation  int      `json:"rotation"`
	Openings  []string `json:"openings"`
	Fixed     bool     `json:"fixed,omitempty"`
	Objective string   `json:"objective,omitempty"`
}

// PlayerInfo is the JSON shape of one player.
type PlayerInfo struct {
	Name             string          `json:"name"`
	AI               bool            `json:"ai"`
	Position         engine.Position `json:"position"`
	Start            engine.Position `json:"start"`
	CurrentObjective string          `json:"current_objective,omitempty"`
	Collected        int             `json:"collected"`
	Total            int             `json:"total"`
}

// GameSnapshot is the full board and turn state, rebuilt on every query.
type GameSnapshot struct {
	State         string       `json:"state"`
	Grid          [][]TileInfo `json:"grid"`
	ExtraTile     TileInfo     `json:"extra_tile"`
	Players       []PlayerInfo `json:"players"`
	CurrentPlayer string       `json:"current_player,omitempty"`
	TileInserted  bool         `json:"tile_inserted"`
	CanUndo       bool         `json:"can_undo"`
	CanRedo       bool         `json:"can_redo"`
	Winner        string       `json:"winner,omitempty"`
}

// ActionResult is the outcome of a turn action, carrying whatever the action
// produced plus the resulting snapshot.
type ActionResult struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message,omitempty"`
	Insert    *engine.InsertResult `json:"insert,omitempty"`
	Move      *engine.MoveResult   `json:"move,omitempty"`
	GameState *GameSnapshot        `json:"game_state"`
}
