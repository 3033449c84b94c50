// Package thermal classifies temperature measurements against an
// environment profile.
//
// The classifier is pure and total: every reading, including an unreadable
// one, maps to a defined condition, so the boot state machine always has a
// definite transition. Hysteresis state is threaded explicitly by the caller
// between classifications within one attempt; the package itself holds no
// mutable state.
package thermal
