package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gmarchal/labyrinth/game/service"
)

const helpText = `commands:
  state                 show the board
  rotate                rotate the extra tile 90 degrees clockwise
  insert <dir> <index>  insert the extra tile (north/south/east/west, 1/3/5)
  move <row> <col>      move to a reachable position
  reachable             list reachable positions
  undo                  undo the last turn action
  redo                  redo the last undone action
  ai                    let the acting AI player take its turn
  abandon               give up the game
  help                  show this help
  quit                  leave`

// View is the interactive text interface: it reads commands from in, drives
// one session through the game service and prints the board to out.
type View struct {
	svc       service.GameService
	sessionID string
	in        io.Reader
	out       io.Writer
}

// NewView creates a console view bound to an existing session.
func NewView(svc service.GameService, sessionID string, in io.Reader, out io.Writer) *View {
	return &View{svc: svc, sessionID: sessionID, in: in, out: out}
}

// Run processes commands until quit, EOF or the game finishing.
func (v *View) Run(ctx context.Context) error {
	v.showState(ctx)
	fmt.Fprintln(v.out, helpText)

	scanner := bufio.NewScanner(v.in)
	for {
		fmt.Fprint(v.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(v.out, helpText)
		case "state":
			v.showState(ctx)
		case "rotate":
			v.report(v.svc.RotateExtraTile(ctx, v.sessionID))
		case "insert":
			v.handleInsert(ctx, fields[1:])
		case "move":
			v.handleMove(ctx, fields[1:])
		case "reachable":
			v.handleReachable(ctx)
		case "undo":
			v.report(v.svc.Undo(ctx, v.sessionID))
		case "redo":
			v.report(v.svc.Redo(ctx, v.sessionID))
		case "ai":
			v.report(v.svc.PlayAITurn(ctx, v.sessionID))
		case "abandon":
			v.report(v.svc.AbandonGame(ctx, v.sessionID))
		default:
			fmt.Fprintf(v.out, "unknown command %q, try help\n", fields[0])
		}

		if snap, err := v.svc.GameState(ctx, v.sessionID); err == nil && snap.State == "finished" {
			return nil
		}
	}
}

func (v *View) handleInsert(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(v.out, "usage: insert <dir> <index>")
		return
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(v.out, "bad index %q\n", args[1])
		return
	}
	v.report(v.svc.InsertTile(ctx, v.sessionID, args[0], index))
}

func (v *View) handleMove(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(v.out, "usage: move <row> <col>")
		return
	}
	row, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(v.out, "coordinates must be numbers")
		return
	}
	v.report(v.svc.MovePlayer(ctx, v.sessionID, row, col))
}

func (v *View) handleReachable(ctx context.Context) {
	positions, err := v.svc.ReachablePositions(ctx, v.sessionID)
	if err != nil {
		fmt.Fprintln(v.out, err)
		return
	}
	if len(positions) == 0 {
		fmt.Fprintln(v.out, "nothing reachable, insert a tile first")
		return
	}
	for _, pos := range positions {
		fmt.Fprintf(v.out, "  (%d,%d)", pos.Row, pos.Col)
	}
	fmt.Fprintln(v.out)
}

// report prints an action's outcome, or its error, plus the fresh board.
func (v *View) report(result *service.ActionResult, err error) {
	if err != nil {
		fmt.Fprintln(v.out, err)
		return
	}
	if result.Message != "" {
		fmt.Fprintln(v.out, result.Message)
	}
	fmt.Fprint(v.out, RenderSnapshot(result.GameState))
}

func (v *View) showState(ctx context.Context) {
	snap, err := v.svc.GameState(ctx, v.sessionID)
	if err != nil {
		fmt.Fprintln(v.out, err)
		return
	}
	fmt.Fprint(v.out, RenderSnapshot(snap))
}
