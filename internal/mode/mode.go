package mode

import "errors"

// ID identifies a workspace mode. The string values are persisted in the
// workspace record, so they must stay stable across versions.
type ID string

// Built-in mode identifiers.
const (
	Editor   ID = "editor"
	Terminal ID = "terminal"
)

// DefaultID is the mode a workspace falls back to when nothing valid
// has been persisted for it.
const DefaultID = Editor

// Sentinel errors returned by the registry and controller.
var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrDuplicateMode = errors.New("mode already registered")
	ErrUnavailable   = errors.New("mode is not available")
)

// Transition carries context through activation and deactivation hooks.
// From is empty when a mode is entered for the first time after restore.
type Transition struct {
	From ID
	To   ID
}

// View is the uniform contract every mode presentation implements.
// Hooks are for readiness and focus handover only; views never own the
// resources they display.
type View interface {
	// ModeID returns the identifier of the mode this view presents.
	ModeID() ID

	// Activate is called when the workspace switches to this mode.
	Activate(t Transition) error

	// Deactivate is called when the workspace switches away from this
	// mode. It releases transient UI focus, nothing else.
	Deactivate(t Transition) error

	// Focus moves input focus to the mode's canonical focus target.
	Focus()
}

// Descriptor describes a registerable mode: its identity, the name shown
// in the mode switcher, and a factory for its view. Available, when set,
// gates activation (e.g. terminal mode requires tmux).
type Descriptor struct {
	ID          ID
	DisplayName string
	New         func() (View, error)
	Available   func() error
}
