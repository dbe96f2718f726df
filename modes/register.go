package modes

import (
	"github.com/calloway-games/wagontrail/audio"
	"github.com/calloway-games/wagontrail/engine"
	"github.com/calloway-games/wagontrail/sim"
)

// Deps carries the collaborators content needs: the domain world, the
// audio cues and where saves go.
type Deps struct {
	World    *sim.Simulation
	Cues     *audio.Cues
	SavePath string
}

// RegisterAll populates both factory tables. This is the declarative
// mode/state association: one call at process start, no runtime
// discovery. Every window the engine can be asked for is listed here.
func RegisterAll(mf *engine.ModeFactory, sf *engine.StateFactory, deps Deps) {
	mf.Register(engine.ModeMainMenu, func(*engine.Context) engine.Mode {
		return NewMainMenu(deps.World)
	})
	mf.Register(engine.ModeTravel, func(*engine.Context) engine.Mode {
		return NewTravel(deps.World, deps.Cues, deps.SavePath)
	})
	mf.Register(engine.ModeStore, func(*engine.Context) engine.Mode {
		return NewStore(deps.World)
	})
	mf.Register(engine.ModeRiverCrossing, func(*engine.Context) engine.Mode {
		return NewRiverCrossing(deps.World, deps.Cues)
	})

	sf.Register(engine.ModeMainMenu, engine.StateNameEntry, func(*engine.Context, engine.ModeID) engine.State {
		return NewNameEntry(deps.World)
	})
	sf.Register(engine.ModeRiverCrossing, engine.StateFordConfirm, func(ctx *engine.Context, _ engine.ModeID) engine.State {
		return &FordConfirm{owner: activeRiver(ctx)}
	})
	sf.Register(engine.ModeRiverCrossing, engine.StateDepthExplainer, func(ctx *engine.Context, _ engine.ModeID) engine.State {
		return &DepthExplainer{owner: activeRiver(ctx)}
	})
}

// activeRiver resolves the owning river window. River forms are only
// ever built through CreateStateForActiveMode while the river window is
// active, so the assertion holds by construction.
func activeRiver(ctx *engine.Context) *RiverCrossing {
	rc, _ := ctx.Windows.ActiveMode().(*RiverCrossing)
	return rc
}
