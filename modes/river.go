package modes

import (
	"fmt"

	"github.com/calloway-games/wagontrail/audio"
	"github.com/calloway-games/wagontrail/engine"
	"github.com/calloway-games/wagontrail/sim"
)

// RiverCrossing interrupts travel at a river landmark. Its forms carry
// the whole interaction; once the crossing resolves the window flags
// itself for removal and travel resumes beneath it.
type RiverCrossing struct {
	baseMode
	world   *sim.Simulation
	cues    *audio.Cues
	depth   int
	outcome string
}

func NewRiverCrossing(world *sim.Simulation, cues *audio.Cues) *RiverCrossing {
	return &RiverCrossing{
		baseMode: baseMode{id: engine.ModeRiverCrossing, accepts: true},
		world:    world,
		cues:     cues,
	}
}

func (r *RiverCrossing) Text() string {
	if prompt := r.stateText(); prompt != "" {
		return prompt
	}
	if r.outcome != "" {
		return r.outcome
	}
	return "A river blocks the trail."
}

func (r *RiverCrossing) Tick(ctx *engine.Context) {
	if r.CurrentState() == nil && r.outcome == "" {
		// Roll the depth once, on first activation
		if r.depth == 0 {
			r.depth = 2 + ctx.Rand.Intn(8)
			r.cues.Play(audio.CueRiver)
		}
		form, err := ctx.Windows.CreateStateForActiveMode(ctx, engine.StateFordConfirm)
		if err != nil {
			ctx.Log.Error("ford confirm unavailable", "error", err)
			r.FlagRemoval()
			return
		}
		r.SetState(form)
	}
	r.tickState(ctx)
}

func (r *RiverCrossing) Command(ctx *engine.Context, input string) {
	r.respondState(ctx, input)
}

// resolve applies the ford attempt and retires the window
func (r *RiverCrossing) resolve(ctx *engine.Context) {
	if r.depth <= 3 || ctx.Rand.Intn(r.depth) < 3 {
		r.outcome = "You ford the river safely."
	} else {
		lost := 10 * r.depth
		if lost > r.world.Vessel.FoodLbs {
			lost = r.world.Vessel.FoodLbs
		}
		r.world.Vessel.FoodLbs -= lost
		r.outcome = fmt.Sprintf("The wagon tips in the current. You lose %d lbs of food.", lost)
	}
	r.FlagRemoval()
}

// FordConfirm asks whether to attempt the ford
type FordConfirm struct {
	owner *RiverCrossing
}

func (s *FordConfirm) ID() engine.StateID { return engine.StateFordConfirm }
func (s *FordConfirm) AcceptsInput() bool { return true }
func (s *FordConfirm) Tick(*engine.Context) {}

func (s *FordConfirm) Prompt() string {
	return fmt.Sprintf("The river ahead runs %d feet deep.\nDo you want to ford it? What is your response? Y/N", s.owner.depth)
}

func (s *FordConfirm) Respond(ctx *engine.Context, input string) engine.StateID {
	switch normalize(input) {
	case "y", "yes":
		s.owner.resolve(ctx)
		return engine.StateNone
	case "n", "no":
		return engine.StateDepthExplainer
	default:
		return engine.StateFordConfirm
	}
}

// DepthExplainer tells the player what the depth means before sending
// them back to the ford decision
type DepthExplainer struct {
	owner *RiverCrossing
}

func (s *DepthExplainer) ID() engine.StateID { return engine.StateDepthExplainer }
func (s *DepthExplainer) AcceptsInput() bool { return true }
func (s *DepthExplainer) Tick(*engine.Context) {}

func (s *DepthExplainer) Prompt() string {
	return fmt.Sprintf("A crossing under 4 feet is usually safe to ford.\nThis one runs %d feet.\nPress ENTER KEY to continue", s.owner.depth)
}

func (s *DepthExplainer) Respond(*engine.Context, string) engine.StateID {
	// Any response, including the empty submit, returns to the decision
	return engine.StateFordConfirm
}
