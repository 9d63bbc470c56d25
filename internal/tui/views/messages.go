package views

import "github.com/glasshq/glass/internal/mode"

// SwitchModeMsg requests a mode switch. It is a request, not a state
// mutation: the app routes it through the mode controller, where it is
// idempotent and safe to interleave with user-initiated switches.
type SwitchModeMsg struct {
	Target mode.ID
}

// OpenPathMsg requests that the editor open a file. Dispatched
// independently of any SwitchModeMsg emitted alongside it; the two are
// safe to run in either order.
type OpenPathMsg struct {
	Path string
}

// AttachMsg requests attaching the terminal to a backing tmux session.
type AttachMsg struct {
	TmuxName string
}

// SessionsChangedMsg tells presentations that the session set changed
// and their lists should be rebuilt.
type SessionsChangedMsg struct{}
