package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gmarchal/labyrinth/game/service"
)

// tileGlyphs maps an opening set to a box-drawing rune. The key is the
// sorted opening names joined by commas.
var tileGlyphs = map[string]rune{
	"north,south":           '│',
	"east,west":             '─',
	"east,north":            '└',
	"east,south":            '┌',
	"south,west":            '┐',
	"north,west":            '┘',
	"east,north,west":       '┴',
	"east,north,south":      '├',
	"east,south,west":       '┬',
	"north,south,west":      '┤',
	"east,north,south,west": '┼',
}

func glyphFor(tile service.TileInfo) rune {
	openings := append([]string(nil), tile.Openings...)
	sort.Strings(openings)
	if g, ok := tileGlyphs[strings.Join(openings, ",")]; ok {
		return g
	}
	return '?'
}

// RenderSnapshot draws the board as text: one cell per tile, corridor glyphs
// from the tiles' openings, player numbers overlaid on their positions and a
// legend below. Objective tiles are marked with a star next to the corridor.
func RenderSnapshot(snap *service.GameSnapshot) string {
	var b strings.Builder

	// Player positions by cell, 1-based display numbers.
	occupants := map[[2]int]int{}
	for i, p := range snap.Players {
		occupants[[2]int{p.Position.Row, p.Position.Col}] = i + 1
	}

	b.WriteString("    ")
	for col := range snap.Grid {
		fmt.Fprintf(&b, " %d ", col)
	}
	b.WriteByte('\n')

	for row, tiles := range snap.Grid {
		fmt.Fprintf(&b, "  %d ", row)
		for col, tile := range tiles {
			marker := ' '
			if n, ok := occupants[[2]int{row, col}]; ok {
				marker = rune('0' + n)
			}
			objective := ' '
			if tile.Objective != "" {
				objective = '*'
			}
			b.WriteRune(marker)
			b.WriteRune(glyphFor(tile))
			b.WriteRune(objective)
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n  extra tile: %c", glyphFor(snap.ExtraTile))
	if snap.ExtraTile.Objective != "" {
		fmt.Fprintf(&b, " [%s]", snap.ExtraTile.Objective)
	}
	b.WriteByte('\n')

	for i, p := range snap.Players {
		seat := "human"
		if p.AI {
			seat = "AI"
		}
		fmt.Fprintf(&b, "  %d. %s (%s) at (%d,%d), %d/%d collected",
			i+1, p.Name, seat, p.Position.Row, p.Position.Col, p.Collected, p.Total)
		if p.CurrentObjective != "" {
			fmt.Fprintf(&b, ", hunting %s", p.CurrentObjective)
		} else {
			b.WriteString(", heading home")
		}
		b.WriteByte('\n')
	}

	switch {
	case snap.Winner != "":
		fmt.Fprintf(&b, "\n  %s wins!\n", snap.Winner)
	case snap.State == "finished":
		b.WriteString("\n  game over, no winner\n")
	case snap.TileInserted:
		fmt.Fprintf(&b, "\n  %s to move\n", snap.CurrentPlayer)
	default:
		fmt.Fprintf(&b, "\n  %s to insert\n", snap.CurrentPlayer)
	}

	return b.String()
}
