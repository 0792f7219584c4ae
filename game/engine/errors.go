package engine

import "errors"

// Error kinds surfaced by the engine. Specific failures wrap one of these so
// callers can discriminate with errors.Is without depending on message text.
var (
	// ErrValidation marks malformed input: out-of-range positions, bad
	// rotation angles, invalid player counts.
	ErrValidation = errors.New("invalid input")

	// ErrState marks an operation invoked outside its legal phase: moving
	// before inserting, inserting twice, acting on a game that is not
	// running. The matching Can predicate would have returned false.
	ErrState = errors.New("invalid state")

	// ErrNotFound marks a lookup that failed to resolve, such as an undo
	// referencing a player that no longer exists. Under correct sequencing
	// this never happens.
	ErrNotFound = errors.New("not found")
)
