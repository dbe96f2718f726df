package engine

import (
	"fmt"
	"strings"

	"github.com/calloway-games/wagontrail/event"
)

// Fallback markers rendered when a window is missing or renders nothing
const (
	NoWindowText      = "[NO WINDOW ATTACHED]"
	DefaultWindowText = "[DEFAULT WINDOW TEXT]"
)

// tickPhases is the diagnostic phase marker cycle shown in the frame
// header. It advances with the domain day, not the raw tick, so an idle
// tick produces a byte-identical frame.
var tickPhases = []rune{'|', '/', '-', '\\'}

// SceneGraph composes the textual frame each tick and diffs it against
// the previous one, notifying the display sink only when the text
// actually changed. Whole-frame replacement: the notification carries
// the full frame, never a diff.
type SceneGraph struct {
	windows *WindowManager
	input   *InputRouter
	status  StatusSource

	lastFrame string
	rendered  bool

	// BufferChangedSignal fires with the complete new frame whenever it
	// differs (case-insensitively) from the previous one
	BufferChangedSignal event.Signal[event.BufferChanged]
}

func NewSceneGraph(windows *WindowManager, input *InputRouter, status StatusSource) *SceneGraph {
	return &SceneGraph{
		windows: windows,
		input:   input,
		status:  status,
	}
}

// Frame returns the most recently rendered frame
func (sg *SceneGraph) Frame() string {
	return sg.lastFrame
}

// Tick renders the current frame and emits a buffer-changed
// notification when it differs from the last one. Two consecutive
// identical frames never notify.
func (sg *SceneGraph) Tick() {
	frame := sg.compose()

	if sg.rendered && strings.EqualFold(frame, sg.lastFrame) {
		return
	}

	sg.lastFrame = frame
	sg.rendered = true
	sg.BufferChangedSignal.Emit(event.BufferChanged{Frame: frame})
}

// compose builds the frame: tick-phase marker, window/form label, turn
// counter and domain status, the active window's text, and the live
// input echo when input is accepted.
func (sg *SceneGraph) compose() string {
	var b strings.Builder

	// Sign-safe modulo: a status source reporting a negative turn count
	// must not crash the renderer
	idx := sg.status.TurnCount() % len(tickPhases)
	if idx < 0 {
		idx += len(tickPhases)
	}
	fmt.Fprintf(&b, "[%c] wagontrail\n", tickPhases[idx])
	fmt.Fprintf(&b, "windows: %d | active: %s\n", sg.windows.Count(), sg.activeLabel())
	fmt.Fprintf(&b, "day %d | %s\n\n", sg.status.TurnCount(), sg.status.StatusLine())

	b.WriteString(sg.body())

	if sg.windows.AcceptingInput() {
		fmt.Fprintf(&b, "\n> %s", sg.input.Buffer())
	}

	return b.String()
}

func (sg *SceneGraph) activeLabel() string {
	active := sg.windows.ActiveMode()
	if active == nil {
		return "none"
	}
	if state := active.CurrentState(); state != nil {
		return active.ID().String() + "/" + state.ID().String()
	}
	return active.ID().String()
}

func (sg *SceneGraph) body() string {
	active := sg.windows.ActiveMode()
	if active == nil {
		return NoWindowText
	}
	if text := active.Text(); text != "" {
		return text
	}
	return DefaultWindowText
}
