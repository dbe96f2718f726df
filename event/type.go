package event

// Notification payloads carried by the engine's signals. Each signal
// fires only on actual change; a tick that changes nothing emits nothing.

// ModeChanged signals that the active window changed
// Trigger: WindowManager on add or post-removal reactivation
// Consumer: audio cues, logging | Payload: newly active window name
type ModeChanged struct {
	Window string
}

// InputUpdated signals a character was appended to the line buffer
// Trigger: InputRouter.AddChar while input is accepted
// Consumer: display echo | Payload: full buffer plus the appended rune
type InputUpdated struct {
	Buffer string
	Added  rune
}

// CommandReady signals a queued command is being dispatched this tick
// Trigger: InputRouter.Tick, at most once per tick
// Consumer: active window | Payload: trimmed command text (may be empty)
type CommandReady struct {
	Command string
}

// BufferChanged signals the rendered frame differs from the previous one
// Trigger: SceneGraph.Tick on textual difference (case-insensitive)
// Consumer: display sink | Payload: the complete new frame, not a diff
type BufferChanged struct {
	Frame string
}
