package engine

import (
	"github.com/hashicorp/go-hclog"

	"github.com/calloway-games/wagontrail/event"
)

// WindowManager is the ordered window stack. Insertion order defines
// precedence: the last-inserted surviving entry is the active window and
// the only one eligible for input and rendering.
type WindowManager struct {
	modes  *ModeFactory
	states *StateFactory
	log    hclog.Logger

	order   []ModeID
	entries map[ModeID]Mode

	// ModeChangedSignal fires when the active window changes, carrying
	// the newly active window's label
	ModeChangedSignal event.Signal[event.ModeChanged]
}

func NewWindowManager(modes *ModeFactory, states *StateFactory, log hclog.Logger) *WindowManager {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &WindowManager{
		modes:   modes,
		states:  states,
		log:     log,
		entries: make(map[ModeID]Mode),
	}
}

// Add constructs and pushes a window, making it active. Re-adding an
// identifier already in the stack is a no-op: at most one instance per
// identifier exists at any time.
func (wm *WindowManager) Add(ctx *Context, id ModeID) error {
	if _, ok := wm.entries[id]; ok {
		return nil
	}

	mode, err := wm.modes.Create(ctx, id)
	if err != nil {
		return err
	}

	wm.order = append(wm.order, id)
	wm.entries[id] = mode
	wm.log.Debug("window pushed", "window", id.String(), "depth", len(wm.order))
	wm.ModeChangedSignal.Emit(event.ModeChanged{Window: id.String()})
	return nil
}

// ActiveMode returns the last surviving entry, or nil when the stack is
// empty.
func (wm *WindowManager) ActiveMode() Mode {
	if len(wm.order) == 0 {
		return nil
	}
	return wm.entries[wm.order[len(wm.order)-1]]
}

// Count returns the number of windows in the stack
func (wm *WindowManager) Count() int {
	return len(wm.order)
}

// AcceptingInput computes whether typed input reaches anyone this tick.
// The two-layer policy is deliberately asymmetric: a window without a
// form is gated by its own flag alone, a window with a form needs both
// the window's flag and the form's flag to agree.
func (wm *WindowManager) AcceptingInput() bool {
	active := wm.ActiveMode()
	if active == nil {
		return false
	}

	state := active.CurrentState()
	if state == nil {
		return active.AcceptsInput()
	}
	if !active.AcceptsInput() {
		return false
	}
	return state.AcceptsInput()
}

// RemoveFlagged sweeps every window flagged for removal. Calling it
// with an empty stack violates the cleanup precondition and returns
// ErrNoActiveWindow; the tick step aborts. After each removal the
// newly active window, if any, is announced.
func (wm *WindowManager) RemoveFlagged() error {
	if wm.ActiveMode() == nil {
		return ErrNoActiveWindow
	}

	// Snapshot: removal mutates the live order slice
	snapshot := make([]ModeID, len(wm.order))
	copy(snapshot, wm.order)

	for _, id := range snapshot {
		mode, ok := wm.entries[id]
		if !ok || !mode.RemovalFlagged() {
			continue
		}

		wm.remove(id)
		wm.log.Debug("window removed", "window", id.String(), "depth", len(wm.order))

		if active := wm.ActiveMode(); active != nil {
			wm.ModeChangedSignal.Emit(event.ModeChanged{Window: active.ID().String()})
		}
	}
	return nil
}

func (wm *WindowManager) remove(id ModeID) {
	delete(wm.entries, id)
	for i, entry := range wm.order {
		if entry == id {
			wm.order = append(wm.order[:i], wm.order[i+1:]...)
			break
		}
	}
}

// CreateStateForActiveMode builds a form owned by the active window.
// The caller (normally the active window itself) attaches the result
// with SetState; replaced forms are discarded.
func (wm *WindowManager) CreateStateForActiveMode(ctx *Context, id StateID) (State, error) {
	active := wm.ActiveMode()
	if active == nil {
		return nil, ErrNoActiveWindow
	}
	return wm.states.Create(ctx, id, active.ID())
}

// Tick sweeps a flagged active window first, so the rest of this tick
// sees the recomputed stack, then ticks whichever window is now active.
func (wm *WindowManager) Tick(ctx *Context) error {
	if active := wm.ActiveMode(); active != nil && active.RemovalFlagged() {
		if err := wm.RemoveFlagged(); err != nil {
			return err
		}
	}

	if active := wm.ActiveMode(); active != nil {
		active.Tick(ctx)
	}
	return nil
}
