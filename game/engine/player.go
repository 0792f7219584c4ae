package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Player is one participant: identity, start corner, current position and
// an ordered personal objective list with a progress pointer. A player with
// a Strategy attached is AI-controlled; a nil strategy means a human. This
// is a capability flag, not a subtype.
type Player struct {
	id       uuid.UUID
	name     string
	start    Position
	position Position

	objectives     []Objective
	objectiveIndex int

	strategy Strategy
}

// NewPlayer creates a human player at its start corner.
func NewPlayer(name string, start Position) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: player name must not be empty", ErrValidation)
	}
	return &Player{
		id:       uuid.New(),
		name:     name,
		start:    start,
		position: start,
	}, nil
}

// NewAIPlayer creates an AI-controlled player driven by the given strategy.
func NewAIPlayer(name string, start Position, strategy Strategy) (*Player, error) {
	if strategy == nil {
		return nil, fmt.Errorf("%w: AI player needs a strategy", ErrValidation)
	}
	p, err := NewPlayer(name, start)
	if err != nil {
		return nil, err
	}
	p.strategy = strategy
	return p, nil
}

// ID returns the stable unique identity assigned at creation.
func (p *Player) ID() uuid.UUID { return p.id }

// Name returns the display name. Names are unique within a game and serve
// as the stable identity in undo snapshots.
func (p *Player) Name() string { return p.name }

// StartPosition returns the corner the player must return to after
// collecting all objectives.
func (p *Player) StartPosition() Position { return p.start }

// Position returns the player's current position.
func (p *Player) Position() Position { return p.position }

// SetPosition moves the player. The board/game layer is responsible for
// validating reachability first.
func (p *Player) SetPosition(pos Position) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: position %s off the board", ErrValidation, pos)
	}
	p.position = pos
	return nil
}

// AddObjective appends an objective to the player's ordered list.
func (p *Player) AddObjective(obj Objective) error {
	if !obj.Valid() {
		return fmt.Errorf("%w: not a catalog objective: %v", ErrValidation, obj)
	}
	p.objectives = append(p.objectives, obj)
	return nil
}

// Objectives returns a copy of the player's ordered objective list.
func (p *Player) Objectives() []Objective {
	return append([]Objective(nil), p.objectives...)
}

// CurrentObjective returns the objective the player is hunting. The second
// return value is false once every objective has been collected, signaling
// the return-to-start phase.
func (p *Player) CurrentObjective() (Objective, bool) {
	if p.objectiveIndex < len(p.objectives) {
		return p.objectives[p.objectiveIndex], true
	}
	return NoObjective, false
}

// ObjectiveIndex returns how many objectives have been collected.
func (p *Player) ObjectiveIndex() int { return p.objectiveIndex }

// SetObjectiveIndex restores the progress pointer. Used by undo.
func (p *Player) SetObjectiveIndex(index int) error {
	if index < 0 || index > len(p.objectives) {
		return fmt.Errorf("%w: objective index %d out of range 0..%d", ErrValidation, index, len(p.objectives))
	}
	p.objectiveIndex = index
	return nil
}

// NextObjective advances the progress pointer by one. At the end of the
// list it is a no-op; the pointer never leaves its valid range.
func (p *Player) NextObjective() {
	if p.objectiveIndex < len(p.objectives) {
		p.objectiveIndex++
	}
}

// CollectedAll reports whether every objective has been collected.
func (p *Player) CollectedAll() bool {
	return p.objectiveIndex >= len(p.objectives)
}

// HasWon reports the win condition: all objectives collected and the player
// back on its start corner.
func (p *Player) HasWon() bool {
	return p.CollectedAll() && p.position == p.start
}

// IsAI reports whether the player is driven by a strategy.
func (p *Player) IsAI() bool { return p.strategy != nil }

// Strategy returns the decision strategy, or nil for human players.
func (p *Player) Strategy() Strategy { return p.strategy }

func (p *Player) String() string {
	s := fmt.Sprintf("%s at %s [%d/%d]", p.name, p.position, p.objectiveIndex, len(p.objectives))
	if p.IsAI() {
		s += " (AI)"
	}
	return s
}
