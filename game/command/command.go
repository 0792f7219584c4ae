// Package command implements reversible operations over the game facade:
// the two mutating turn actions wrapped as commands with undo snapshots, a
// two-stack history, and the controller binding them together as the entry
// point presentation layers drive.
//
// Commands hold copied snapshots, never live aliases, so undo restoration
// cannot race with anything; the whole layer is as single-threaded as the
// engine underneath it.
package command

import "fmt"

// Command is a reversible operation. Execute captures whatever snapshot its
// inverse needs before mutating; Undo restores exactly that snapshot.
type Command interface {
	// CanExecute reports whether the command would be accepted right now.
	CanExecute() bool

	// Execute performs the mutation. Executing a command whose CanExecute
	// is false is a state error.
	Execute() error

	// Undo reverts the mutation using the snapshot captured by Execute.
	Undo() error

	fmt.Stringer
}
