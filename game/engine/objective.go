package engine

import "fmt"

// Objective identifies one entry of the fixed 24-objective catalog. The zero
// value NoObjective means a tile carries no objective.
type Objective int

const (
	NoObjective Objective = iota

	// Mobile L-tile objectives.
	Butterfly
	Owl
	Beetle
	Lizard
	Spider
	Mouse

	// Mobile T-tile creatures.
	Bat
	Dragon
	Ghost
	Specter
	Pig
	Cupid

	// Fixed T-tile treasures.
	Book
	Purse
	TreasureMap
	Crown
	Keys
	Skull
	Ring
	Chest
	Sapphire
	Sword
	Candelabra
	Helmet

	objectiveEnd
)

// ObjectiveCount is the size of the objective catalog.
const ObjectiveCount = int(objectiveEnd) - 1

// ObjectiveCategory partitions the catalog by the tiles the objectives sit on.
type ObjectiveCategory int

const (
	// MobileL objectives sit on mobile L tiles (6 entries).
	MobileL ObjectiveCategory = iota
	// MobileT objectives are the creatures on mobile T tiles (6 entries).
	MobileT
	// FixedT objectives are the treasures on the 12 fixed T tiles.
	FixedT
)

// objectiveInfo is the catalog metadata, indexed by Objective. Every entry
// uses base rotation 0; tile artwork is pre-oriented to the base openings of
// its shape.
var objectiveInfo = [objectiveEnd]struct {
	name     string
	shape    TileType
	category ObjectiveCategory
}{
	Butterfly: {"butterfly", TypeL, MobileL},
	Owl:       {"owl", TypeL, MobileL},
	Beetle:    {"beetle", TypeL, MobileL},
	Lizard:    {"lizard", TypeL, MobileL},
	Spider:    {"spider", TypeL, MobileL},
	Mouse:     {"mouse", TypeL, MobileL},

	Bat:     {"bat", TypeT, MobileT},
	Dragon:  {"dragon", TypeT, MobileT},
	Ghost:   {"ghost", TypeT, MobileT},
	Specter: {"specter", TypeT, MobileT},
	Pig:     {"pig", TypeT, MobileT},
	Cupid:   {"cupid", TypeT, MobileT},

	Book:        {"book", TypeT, FixedT},
	Purse:       {"purse", TypeT, FixedT},
	TreasureMap: {"map", TypeT, FixedT},
	Crown:       {"crown", TypeT, FixedT},
	Keys:        {"keys", TypeT, FixedT},
	Skull:       {"skull", TypeT, FixedT},
	Ring:        {"ring", TypeT, FixedT},
	Chest:       {"chest", TypeT, FixedT},
	Sapphire:    {"sapphire", TypeT, FixedT},
	Sword:       {"sword", TypeT, FixedT},
	Candelabra:  {"candelabra", TypeT, FixedT},
	Helmet:      {"helmet", TypeT, FixedT},
}

// Valid reports whether o names a catalog entry (NoObjective is not one).
func (o Objective) Valid() bool {
	return o > NoObjective && o < objectiveEnd
}

func (o Objective) String() string {
	if o == NoObjective {
		return "none"
	}
	if !o.Valid() {
		return fmt.Sprintf("objective(%d)", int(o))
	}
	return objectiveInfo[o].name
}

// Shape returns the tile shape this objective is printed on.
func (o Objective) Shape() TileType {
	return objectiveInfo[o].shape
}

// Category returns the catalog partition the objective belongs to.
func (o Objective) Category() ObjectiveCategory {
	return objectiveInfo[o].category
}

// BaseRotation returns the rotation an objective tile is locked to.
// All catalog artwork is pre-oriented, so this is always 0.
func (o Objective) BaseRotation() int {
	return 0
}

// AllObjectives returns the full catalog in declaration order.
func AllObjectives() []Objective {
	out := make([]Objective, 0, ObjectiveCount)
	for o := NoObjective + 1; o < objectiveEnd; o++ {
		out = append(out, o)
	}
	return out
}

// ObjectivesInCategory returns the catalog entries of one category, in
// declaration order.
func ObjectivesInCategory(c ObjectiveCategory) []Objective {
	var out []Objective
	for o := NoObjective + 1; o < objectiveEnd; o++ {
		if objectiveInfo[o].category == c {
			out = append(out, o)
		}
	}
	return out
}
