package modes

import (
	"github.com/calloway-games/wagontrail/engine"
)

// baseMode carries the window plumbing every content window shares:
// identity, the removal flag and the single form slot.
type baseMode struct {
	id      engine.ModeID
	accepts bool
	flagged bool
	state   engine.State
}

func (b *baseMode) ID() engine.ModeID { return b.id }
func (b *baseMode) AcceptsInput() bool { return b.accepts }
func (b *baseMode) CurrentState() engine.State { return b.state }
func (b *baseMode) SetState(s engine.State) { b.state = s }
func (b *baseMode) RemovalFlagged() bool { return b.flagged }
func (b *baseMode) FlagRemoval() { b.flagged = true }

// tickState forwards the tick to the active form, if any
func (b *baseMode) tickState(ctx *engine.Context) {
	if b.state != nil {
		b.state.Tick(ctx)
	}
}

// respondState routes one command into the active form and applies its
// transition: clear on StateNone, keep the instance when the form names
// itself, otherwise build the follow-up form through the factory.
// Returns false when no form was active.
func (b *baseMode) respondState(ctx *engine.Context, input string) bool {
	if b.state == nil {
		return false
	}

	next := b.state.Respond(ctx, input)
	switch next {
	case engine.StateNone:
		b.state = nil
	case b.state.ID():
		// Form stays as-is; re-creating it would discard its progress
	default:
		replacement, err := ctx.Windows.CreateStateForActiveMode(ctx, next)
		if err != nil {
			ctx.Log.Error("form transition failed", "window", b.id.String(), "form", next.String(), "error", err)
			b.state = nil
			return true
		}
		b.state = replacement
	}
	return true
}

// stateText returns the active form's prompt, or "" when none
func (b *baseMode) stateText() string {
	if b.state == nil {
		return ""
	}
	return b.state.Prompt()
}
