package engine

import (
	"errors"
	"fmt"
)

// ErrNoActiveWindow reports a stack-cleanup invariant violation: the
// flagged-removal sweep was invoked while no window was active. Caller
// misuse; the tick step aborts rather than recovering.
var ErrNoActiveWindow = errors.New("removal sweep with no active window")

// UnregisteredModeError reports a window identifier with no constructor
// in the factory table. A programming error, surfaced immediately.
type UnregisteredModeError struct {
	ID ModeID
}

func (e *UnregisteredModeError) Error() string {
	return fmt.Sprintf("no window constructor registered for %q", e.ID)
}

// UnregisteredStateError reports a (window, form) pair with no
// constructor in the factory table.
type UnregisteredStateError struct {
	Owner ModeID
	ID    StateID
}

func (e *UnregisteredStateError) Error() string {
	return fmt.Sprintf("no form constructor registered for %q under window %q", e.ID, e.Owner)
}
