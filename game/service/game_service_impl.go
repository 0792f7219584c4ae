package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/gmarchal/labyrinth/game/engine"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	sessions SessionManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance.
func NewGameService(sessions SessionManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
	}
}

// CreateSession creates a new game session and starts its game.
func (s *gameServiceImpl) CreateSession(ctx context.Context, playerCount, humanCount int) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Create("", playerCount, humanCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(sess), nil
}

// GetSession retrieves session information.
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(sess), nil
}

// ListSessions returns all active sessions.
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session.
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// RotateExtraTile rotates the session's held tile 90 degrees clockwise.
func (s *gameServiceImpl) RotateExtraTile(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Controller.RotateExtraTile(); err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:   true,
		Message:   "extra tile rotated",
		GameState: snapshot(sess),
	}, nil
}

// InsertTile performs the turn's insertion for the session.
func (s *gameServiceImpl) InsertTile(ctx context.Context, sessionID, direction string, index int) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	result, err := sess.Controller.InsertTile(dir, index)
	if err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:   true,
		Message:   fmt.Sprintf("inserted %s at index %d", dir, index),
		Insert:    &result,
		GameState: snapshot(sess),
	}, nil
}

// MovePlayer performs the turn's movement for the session.
func (s *gameServiceImpl) MovePlayer(ctx context.Context, sessionID string, row, col int) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	dest, err := engine.NewPosition(row, col)
	if err != nil {
		return nil, err
	}

	result, err := sess.Controller.MovePlayer(dest)
	if err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:   true,
		Message:   moveMessage(result),
		Move:      &result,
		GameState: snapshot(sess),
	}, nil
}

// Undo reverts the session's most recent turn action.
func (s *gameServiceImpl) Undo(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Controller.Undo(); err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:   true,
		Message:   "action undone",
		GameState: snapshot(sess),
	}, nil
}

// Redo re-applies the session's most recently undone turn action.
func (s *gameServiceImpl) Redo(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Controller.Redo(); err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:   true,
		Message:   "action redone",
		GameState: snapshot(sess),
	}, nil
}

// PlayAITurn runs a full strategy-driven turn for the acting AI player.
func (s *gameServiceImpl) PlayAITurn(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	result, err := sess.Controller.PlayAITurn()
	if err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:   true,
		Message:   moveMessage(result),
		Move:      &result,
		GameState: snapshot(sess),
	}, nil
}

// AbandonGame finishes the session's game without a winner.
func (s *gameServiceImpl) AbandonGame(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Controller.AbandonGame()
	return &ActionResult{
		Success:   true,
		Message:   "game abandoned",
		GameState: snapshot(sess),
	}, nil
}

// GameState returns the session's full snapshot.
func (s *gameServiceImpl) GameState(ctx context.Context, sessionID string) (*GameSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return snapshot(sess), nil
}

// ReachablePositions returns where the acting player can move right now.
func (s *gameServiceImpl) ReachablePositions(ctx context.Context, sessionID string) ([]engine.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.sessions.UpdateLastAccessed(sessionID)

	reachable := sess.Controller.Facade().ReachablePositions()
	positions := make([]engine.Position, 0, len(reachable))
	for row := 0; row < engine.BoardSize; row++ {
		for col := 0; col < engine.BoardSize; col++ {
			pos := engine.Position{Row: row, Col: col}
			if reachable[pos] {
				positions = append(positions, pos)
			}
		}
	}
	return positions, nil
}

// session fetches a session under the already-held lock and touches its
// access time.
func (s *gameServiceImpl) session(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

func moveMessage(result engine.MoveResult) string {
	msg := fmt.Sprintf("%s moved from %s to %s", result.Player, result.From, result.To)
	if result.ObjectiveCollected {
		msg += fmt.Sprintf(", collected %s", result.Objective)
	}
	if result.Finished {
		msg += fmt.Sprintf(", %s wins", result.Winner)
	}
	return msg
}

func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		PlayerCount:    sess.PlayerCount,
		HumanCount:     sess.HumanCount,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Controller.Facade().State().String(),
	}
}

func tileInfo(t engine.Tile) TileInfo {
	openings := t.Openings()
	names := make([]string, len(openings))
	for i, d := range openings {
		names[i] = d.String()
	}
	info := TileInfo{
		Type:     t.Type.String(),
		Rotation: t.Rotation,
		Openings: names,
		Fixed:    t.Fixed,
	}
	if t.HasObjective() {
		info.Objective = t.Objective.String()
	}
	return info
}

func playerInfo(p *engine.Player) PlayerInfo {
	info := PlayerInfo{
		Name:      p.Name(),
		AI:        p.IsAI(),
		Position:  p.Position(),
		Start:     p.StartPosition(),
		Collected: p.ObjectiveIndex(),
		Total:     len(p.Objectives()),
	}
	if current, ok := p.CurrentObjective(); ok {
		info.CurrentObjective = current.String()
	}
	return info
}

// snapshot rebuilds the full JSON-friendly state from the session's facade.
func snapshot(sess *Session) *GameSnapshot {
	ctrl := sess.Controller
	facade := ctrl.Facade()

	snap := &GameSnapshot{
		State:        facade.State().String(),
		TileInserted: facade.IsTileInsertedThisTurn(),
		CanUndo:      ctrl.CanUndo(),
		CanRedo:      ctrl.CanRedo(),
	}

	snap.Grid = make([][]TileInfo, engine.BoardSize)
	for row := 0; row < engine.BoardSize; row++ {
		snap.Grid[row] = make([]TileInfo, engine.BoardSize)
		for col := 0; col < engine.BoardSize; col++ {
			tile, _ := facade.TileAt(engine.Position{Row: row, Col: col})
			snap.Grid[row][col] = tileInfo(tile)
		}
	}
	if extra, ok := facade.ExtraTile(); ok {
		snap.ExtraTile = tileInfo(extra)
	}

	for _, p := range facade.Players() {
		snap.Players = append(snap.Players, playerInfo(p))
	}
	if current, err := facade.CurrentPlayer(); err == nil {
		snap.CurrentPlayer = current.Name()
	}
	if winner, ok := facade.Winner(); ok {
		snap.Winner = winner.Name()
	}
	return snap
}
