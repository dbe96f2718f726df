// Package engine is the mode/state orchestration runtime: a stack of
// windows, each owning at most one active form, the factories that build
// them from a declarative registration table, the input pipeline that
// gates and routes typed commands, and the cooperative scheduler that
// ticks it all and redraws only on change.
package engine

// ModeID is a unique identifier for a kind of window
type ModeID int

const (
	ModeInvalid ModeID = iota
	ModeMainMenu
	ModeTravel
	ModeStore
	ModeRiverCrossing
)

// String returns the window label used in frame headers and logs
func (id ModeID) String() string {
	switch id {
	case ModeMainMenu:
		return "main-menu"
	case ModeTravel:
		return "travel"
	case ModeStore:
		return "store"
	case ModeRiverCrossing:
		return "river-crossing"
	default:
		return "invalid"
	}
}

// StateID is a unique identifier for a kind of form within a window
type StateID int

const (
	StateNone StateID = iota
	StateNameEntry
	StateFordConfirm
	StateDepthExplainer
)

// String returns the form label used in frame headers and logs
func (id StateID) String() string {
	switch id {
	case StateNameEntry:
		return "name-entry"
	case StateFordConfirm:
		return "ford-confirm"
	case StateDepthExplainer:
		return "depth-explainer"
	default:
		return "none"
	}
}

// ModeConstructor builds a window instance. Registered once at startup;
// construction must not touch the window stack itself.
type ModeConstructor func(ctx *Context) Mode

// StateConstructor builds a form instance bound to its owning window.
type StateConstructor func(ctx *Context, owner ModeID) State
