package service

import (
	"context"
	"time"

	"github.com/gmarchal/labyrinth/game/command"
	"github.com/gmarchal/labyrinth/game/engine"
)

// GameService defines all game-related operations exposed to transports.
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, playerCount, humanCount int) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Turn Actions
	RotateExtraTile(ctx context.Context, sessionID string) (*ActionResult, error)
	InsertTile(ctx context.Context, sessionID, direction string, index int) (*ActionResult, error)
	MovePlayer(ctx context.Context, sessionID string, row, col int) (*ActionResult, error)
	Undo(ctx context.Context, sessionID string) (*ActionResult, error)
	Redo(ctx context.Context, sessionID string) (*ActionResult, error)
	PlayAITurn(ctx context.Context, sessionID string) (*ActionResult, error)
	AbandonGame(ctx context.Context, sessionID string) (*ActionResult, error)

	// Game State
	GameState(ctx context.Context, sessionID string) (*GameSnapshot, error)
	ReachablePositions(ctx context.Context, sessionID string) ([]engine.Position, error)
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, playerCount, humanCount int) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// Session represents an active game session.
type Session struct {
	ID             string
	Controller     *command.Controller
	PlayerCount    int
	HumanCount     int
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
