package engine

// Mode is one window in the stack. Implementations live outside the
// engine and are registered into the ModeFactory at startup; the engine
// only sees this capability set.
type Mode interface {
	// ID returns the identifier this window was registered under
	ID() ModeID

	// Text returns the window's rendered text for the current tick.
	// Empty text makes the renderer substitute its default marker.
	Text() string

	// AcceptsInput reports whether the window wants typed commands
	AcceptsInput() bool

	// CurrentState returns the active form, or nil when none is attached
	CurrentState() State

	// SetState attaches a form, replacing any previous one. A nil form
	// clears the slot; replaced forms are discarded, not pooled.
	SetState(State)

	// RemovalFlagged reports whether the scheduler should sweep this
	// window on its next tick
	RemovalFlagged() bool

	// FlagRemoval marks the window for the sweep. Irreversible.
	FlagRemoval()

	// Tick advances the window one simulation step. The window is
	// responsible for ticking its own active form.
	Tick(ctx *Context)

	// Command delivers one dequeued command. Called at most once per
	// scheduler tick, only while this window is active.
	Command(ctx *Context, input string)
}

// State is a sub-dialog (form) owned by exactly one window: one step of
// a multi-step interaction.
type State interface {
	// ID returns the identifier this form was registered under
	ID() StateID

	// Prompt returns the form's prompt text
	Prompt() string

	// AcceptsInput reports whether the form wants typed responses
	AcceptsInput() bool

	// Respond parses the player's response and returns the identifier of
	// the follow-up form, or StateNone to clear back to the bare window.
	Respond(ctx *Context, input string) StateID

	// Tick advances any form-local timers
	Tick(ctx *Context)
}

// StatusSource supplies the domain numbers rendered in the frame header.
// The engine reads strings and a turn counter; the domain's data model
// stays entirely outside it.
type StatusSource interface {
	// TurnCount returns the number of completed turns (days)
	TurnCount() int

	// StatusLine returns the one-line vehicle/location summary
	StatusLine() string

	// TakeTurn advances the domain one turn. skipDay forces the turn
	// without advancing simulated time; the engine forwards the flag
	// without interpreting it.
	TakeTurn(skipDay bool)
}
