// Command simulate runs batches of all-AI games and prints summary
// statistics: wins per seat, game lengths and objective progress. Useful for
// sanity-checking rule changes and comparing strategy tweaks.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gmarchal/labyrinth/game/command"
)

var (
	games    = flag.Int("games", 100, "Number of games to simulate")
	players  = flag.Int("players", 2, "Players per game (2-4)")
	maxTurns = flag.Int("max-turns", 1000, "Abandon a game after this many turns")
	seed     = flag.Int64("seed", 0, "Base random seed (0 uses the current time)")
)

// gameOutcome records one finished simulation.
type gameOutcome struct {
	winnerSeat int // -1 when the game hit the turn cap
	turns      int
	collected  []int
}

func main() {
	flag.Parse()

	if *players < 2 || *players > 4 {
		fmt.Fprintln(os.Stderr, "players must be between 2 and 4")
		os.Exit(1)
	}

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d games, %d AI players each (seed %d)\n\n",
		*games, *players, baseSeed)

	start := time.Now()
	outcomes := make([]gameOutcome, 0, *games)
	for i := 0; i < *games; i++ {
		outcome, err := runGame(rand.New(rand.NewSource(baseSeed + int64(i))))
		if err != nil {
			log.Fatalf("game %d failed: %v", i, err)
		}
		outcomes = append(outcomes, outcome)
	}

	printSummary(outcomes, time.Since(start))
}

// runGame plays one all-AI game to completion or the turn cap.
func runGame(rng *rand.Rand) (gameOutcome, error) {
	controller := command.NewController()
	if err := controller.StartGame(*players, 0, rng); err != nil {
		return gameOutcome{}, err
	}
	facade := controller.Facade()

	turns := 0
	for !facade.IsGameOver() && turns < *maxTurns {
		if _, err := controller.PlayAITurn(); err != nil {
			return gameOutcome{}, fmt.Errorf("turn %d: %w", turns, err)
		}
		turns++
	}

	outcome := gameOutcome{winnerSeat: -1, turns: turns}
	for _, p := range facade.Players() {
		outcome.collected = append(outcome.collected, p.ObjectiveIndex())
	}
	if winner, ok := facade.Winner(); ok {
		for seat, p := range facade.Players() {
			if p == winner {
				outcome.winnerSeat = seat
			}
		}
	} else {
		controller.AbandonGame()
	}
	return outcome, nil
}

func printSummary(outcomes []gameOutcome, elapsed time.Duration) {
	wins := make([]int, *players)
	capped := 0
	totalTurns := 0
	minTurns, maxSeen := -1, 0
	totalCollected := make([]int, *players)

	for _, o := range outcomes {
		totalTurns += o.turns
		if minTurns == -1 || o.turns < minTurns {
			minTurns = o.turns
		}
		if o.turns > maxSeen {
			maxSeen = o.turns
		}
		if o.winnerSeat >= 0 {
			wins[o.winnerSeat]++
		} else {
			capped++
		}
		for seat, n := range o.collected {
			totalCollected[seat] += n
		}
	}

	n := len(outcomes)
	fmt.Printf("=== Results (%d games in %s) ===\n", n, elapsed.Round(time.Millisecond))
	for seat := 0; seat < *players; seat++ {
		fmt.Printf("Player %d: %d wins (%.1f%%), avg %.1f objectives collected\n",
			seat+1, wins[seat],
			100*float64(wins[seat])/float64(n),
			float64(totalCollected[seat])/float64(n))
	}
	if capped > 0 {
		fmt.Printf("Turn-capped: %d games (%.1f%%)\n", capped, 100*float64(capped)/float64(n))
	}
	fmt.Printf("Turns per game: min %d, avg %.1f, max %d\n",
		minTurns, float64(totalTurns)/float64(n), maxSeen)
}
