package engine

import (
	"strings"
	"unicode"

	"github.com/calloway-games/wagontrail/event"
)

// InputRouter accumulates raw characters into a line buffer and, on
// submission, enqueues the trimmed command onto a FIFO queue. Each tick
// drains at most one command to whichever window is active at that
// instant, so a flood of queued commands cannot overwhelm a single
// simulation step.
type InputRouter struct {
	windows *WindowManager
	buffer  []rune
	queue   []string

	// InputUpdatedSignal fires on each accepted character, carrying the
	// full buffer and the appended rune
	InputUpdatedSignal event.Signal[event.InputUpdated]

	// CommandReadySignal fires when a command is dispatched, once per
	// tick at most
	CommandReadySignal event.Signal[event.CommandReady]
}

func NewInputRouter(windows *WindowManager) *InputRouter {
	return &InputRouter{windows: windows}
}

// AddChar appends one typed character. Non-alphanumeric characters are
// filtered silently; characters typed while nobody accepts input leave
// the buffer untouched.
func (r *InputRouter) AddChar(ch rune) {
	if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
		return
	}
	if !r.windows.AcceptingInput() {
		return
	}

	r.buffer = append(r.buffer, ch)
	r.InputUpdatedSignal.Emit(event.InputUpdated{
		Buffer: string(r.buffer),
		Added:  ch,
	})
}

// RemoveLastChar pops the last buffered character. Unlike AddChar this
// is not gated by acceptance: backspace always works so the player can
// clear stray input.
func (r *InputRouter) RemoveLastChar() {
	if len(r.buffer) == 0 {
		return
	}
	r.buffer = r.buffer[:len(r.buffer)-1]
}

// Buffer returns the current line buffer contents
func (r *InputRouter) Buffer() string {
	return string(r.buffer)
}

// Submit trims and enqueues the buffer. When input is not accepted the
// typed text is discarded and the empty string is enqueued in its place,
// keeping the queue active without leaking stale text. A command equal
// to any entry already queued is dropped. The buffer is cleared
// afterward regardless.
func (r *InputRouter) Submit() {
	command := strings.TrimSpace(string(r.buffer))
	if !r.windows.AcceptingInput() {
		command = ""
	}

	if !r.queued(command) {
		r.queue = append(r.queue, command)
	}
	r.buffer = r.buffer[:0]
}

func (r *InputRouter) queued(command string) bool {
	for _, pending := range r.queue {
		if pending == command {
			return true
		}
	}
	return false
}

// QueueLen returns the number of pending commands
func (r *InputRouter) QueueLen() int {
	return len(r.queue)
}

// Tick dequeues at most one command, announces it, and forwards it to
// the window active at this instant. Once queued a command is always
// eventually dispatched; there is no cancellation.
func (r *InputRouter) Tick(ctx *Context) {
	if len(r.queue) == 0 {
		return
	}

	command := r.queue[0]
	r.queue = r.queue[1:]

	r.CommandReadySignal.Emit(event.CommandReady{Command: command})

	if active := r.windows.ActiveMode(); active != nil {
		active.Command(ctx, command)
	}
}
