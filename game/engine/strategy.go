package engine

import (
	"math/rand"
	"sort"
)

// InsertChoice is a strategy's pick for the insertion phase.
type InsertChoice struct {
	Direction Direction
	Index     int
}

// Strategy decides an AI player's turn. Implementations read game state
// through the facade only; the facade's validated operations perform the
// actual moves, so a strategy can never corrupt state.
type Strategy interface {
	// DecideRotation returns how many 90 degree clockwise rotations to
	// apply to the extra tile before inserting, in [0,3].
	DecideRotation(f *Facade) int

	// DecideInsertion picks a legal insertion for the current board.
	DecideInsertion(f *Facade) InsertChoice

	// DecideMovement picks the destination after the insertion happened.
	DecideMovement(f *Facade) Position

	// Name identifies the strategy for display.
	Name() string
}

// RandomStrategy is the baseline AI: it picks uniformly among all legal
// insertions and all reachable destinations, ignoring objectives entirely.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates the baseline strategy. rng may be nil, in which
// case an unseeded source is used; pass a seeded one for reproducible games.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandomStrategy{rng: rng}
}

// Name implements Strategy.
func (s *RandomStrategy) Name() string { return "random" }

// DecideRotation returns a uniform count in [0,3] for rotatable extra tiles
// and 0 for fixed or objective-bearing tiles, which never rotate.
func (s *RandomStrategy) DecideRotation(f *Facade) int {
	extra, ok := f.ExtraTile()
	if !ok || extra.Fixed || extra.HasObjective() {
		return 0
	}
	return s.rng.Intn(4)
}

// DecideInsertion enumerates every legal (direction, index) pair under the
// no-reverse rule and picks one uniformly.
func (s *RandomStrategy) DecideInsertion(f *Facade) InsertChoice {
	var legal []InsertChoice
	for _, dir := range Directions() {
		for _, index := range InsertIndexes {
			if f.CanInsertTile(dir, index) {
				legal = append(legal, InsertChoice{Direction: dir, Index: index})
			}
		}
	}
	// At most one of the twelve insertions is ever forbidden, so legal is
	// never empty while the game runs.
	return legal[s.rng.Intn(len(legal))]
}

// DecideMovement picks uniformly among the reachable positions. The
// reachable set always contains the player's own position, so staying put
// is always an option. Choices are sorted so a seeded rng replays the same
// game.
func (s *RandomStrategy) DecideMovement(f *Facade) Position {
	reachable := f.ReachablePositions()
	choices := make([]Position, 0, len(reachable))
	for pos := range reachable {
		choices = append(choices, pos)
	}
	sort.Slice(choices, func(i, j int) bool {
		if choices[i].Row != choices[j].Row {
			return choices[i].Row < choices[j].Row
		}
		return choices[i].Col < choices[j].Col
	})
	if len(choices) == 0 {
		player, err := f.CurrentPlayer()
		if err != nil {
			return Position{}
		}
		return player.Position()
	}
	return choices[s.rng.Intn(len(choices))]
}
