// Package session manages the lifecycle of concurrent game sessions.
//
// The session package implements:
//   - Session creation with generated 8-character IDs
//   - Case-insensitive session lookup
//   - Last-access tracking and age-based cleanup
//
// Each session wraps one controller, so every game carries its own board,
// players and undo history. Sessions live in memory for the lifetime of the
// process; there is no persistence layer.
//
// Usage:
//
//	manager := session.NewManager()
//	sess, err := manager.Create("", 2, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
package session
