package engine

import "fmt"

// TileType is the corridor shape of a tile. Each type defines its fixed set
// of openings at rotation 0.
type TileType int

const (
	// TypeI is a straight corridor: north-south at 0 degrees.
	TypeI TileType = iota
	// TypeL is a corner corridor: north-east at 0 degrees.
	TypeL
	// TypeT is a T-junction: north, east and west at 0 degrees (wall south).
	TypeT

	tileTypeCount
)

var tileTypeNames = [tileTypeCount]string{
	TypeI: "I",
	TypeL: "L",
	TypeT: "T",
}

// baseOpenings holds each type's openings at rotation 0, shared by all tiles
// of that type.
var baseOpenings = [tileTypeCount][]Direction{
	TypeI: {North, South},
	TypeL: {North, East},
	TypeT: {North, East, West},
}

func (t TileType) String() string {
	if t < 0 || t >= tileTypeCount {
		return fmt.Sprintf("tiletype(%d)", int(t))
	}
	return tileTypeNames[t]
}

// BaseOpenings returns the openings at rotation 0. The result is a fresh
// slice; callers may not mutate the shared table through it.
func (t TileType) BaseOpenings() []Direction {
	return append([]Direction(nil), baseOpenings[t]...)
}

// Tile is one corridor piece: a shape, a rotation, a fixed/mobile flag and an
// optional objective. Tile is used as a value; the board grid stores tiles
// directly, so copying the grid array is a full snapshot.
type Tile struct {
	Type      TileType
	Fixed     bool
	Objective Objective
	Rotation  int
}

// NewTile builds a tile without an objective, at rotation 0.
func NewTile(t TileType, fixed bool) Tile {
	return Tile{Type: t, Fixed: fixed}
}

// NewObjectiveTile builds a tile carrying an objective. Its rotation is
// locked to the objective's base rotation so the artwork stays upright.
func NewObjectiveTile(t TileType, fixed bool, obj Objective) Tile {
	return Tile{Type: t, Fixed: fixed, Objective: obj, Rotation: obj.BaseRotation()}
}

// HasObjective reports whether the tile carries an objective.
func (t Tile) HasObjective() bool {
	return t.Objective != NoObjective
}

// Openings returns the directions the tile opens toward, after rotation.
func (t Tile) Openings() []Direction {
	steps := t.Rotation / 90
	out := make([]Direction, 0, len(baseOpenings[t.Type]))
	for _, d := range baseOpenings[t.Type] {
		for i := 0; i < steps; i++ {
			d = d.Clockwise()
		}
		out = append(out, d)
	}
	return out
}

// HasOpening reports whether the tile opens toward d after rotation.
func (t Tile) HasOpening(d Direction) bool {
	for _, o := range t.Openings() {
		if o == d {
			return true
		}
	}
	return false
}

// HasPath reports whether a corridor runs through the tile between the two
// directions, i.e. both are open.
func (t Tile) HasPath(from, to Direction) bool {
	return t.HasOpening(from) && t.HasOpening(to)
}

// Rotate turns a mobile tile 90 degrees clockwise. Rotating a fixed tile is
// a state error. Rotating an objective tile is a silent no-op: its rotation
// is locked to the objective's base rotation so the artwork stays upright.
func (t *Tile) Rotate() error {
	if t.Fixed {
		return fmt.Errorf("%w: cannot rotate a fixed tile", ErrState)
	}
	if t.HasObjective() {
		return nil
	}
	t.Rotation = (t.Rotation + 90) % 360
	return nil
}

// SetRotation sets the rotation to a specific angle, used during board
// construction. The angle must be a multiple of 90 in [0,360). For objective
// tiles any requested angle is overridden by the locked base rotation; that
// is a corrective measure, not a failure.
func (t *Tile) SetRotation(angle int) error {
	if angle < 0 || angle >= 360 || angle%90 != 0 {
		return fmt.Errorf("%w: rotation must be 0, 90, 180 or 270, got %d", ErrValidation, angle)
	}
	if t.HasObjective() {
		t.Rotation = t.Objective.BaseRotation()
		return nil
	}
	t.Rotation = angle
	return nil
}

func (t Tile) String() string {
	s := fmt.Sprintf("%s %d°", t.Type, t.Rotation)
	if t.HasObjective() {
		s += fmt.Sprintf(" [%s]", t.Objective)
	}
	if t.Fixed {
		s += " (fixed)"
	}
	return s
}
