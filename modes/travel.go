package modes

import (
	"fmt"
	"strings"

	"github.com/calloway-games/wagontrail/audio"
	"github.com/calloway-games/wagontrail/engine"
	"github.com/calloway-games/wagontrail/savegame"
	"github.com/calloway-games/wagontrail/sim"
)

var travelCommands = newMatcher(
	commandDef{canonical: "continue", aliases: []string{"go", "travel", "onward"}},
	commandDef{canonical: "rest", aliases: []string{"camp", "stop"}},
	commandDef{canonical: "status", aliases: []string{"party", "health"}},
	commandDef{canonical: "save", aliases: nil},
	commandDef{canonical: "load", aliases: nil},
	commandDef{canonical: "menu", aliases: []string{"back", "leave"}},
)

// Travel is the window the party spends most of the journey in: each
// "continue" takes one turn, and arriving at a river pushes the
// river-crossing window on top.
type Travel struct {
	baseMode
	world    *sim.Simulation
	cues     *audio.Cues
	savePath string
	message  string
}

func NewTravel(world *sim.Simulation, cues *audio.Cues, savePath string) *Travel {
	return &Travel{
		baseMode: baseMode{id: engine.ModeTravel, accepts: true},
		world:    world,
		cues:     cues,
		savePath: savePath,
	}
}

func (t *Travel) Text() string {
	var b strings.Builder
	if t.world.TrailComplete() {
		b.WriteString("You have reached the Willamette Valley. The journey is over.\n")
	} else {
		fmt.Fprintf(&b, "The wagon rolls west. Party of %d, led by %s.\n", len(t.world.Party), t.world.Leader)
	}
	b.WriteString("Commands: continue, rest, status, save, load, menu")
	if t.message != "" {
		b.WriteString("\n\n" + t.message)
	}
	return b.String()
}

func (t *Travel) Tick(ctx *engine.Context) {
	t.tickState(ctx)
}

func (t *Travel) Command(ctx *engine.Context, input string) {
	if t.respondState(ctx, input) {
		return
	}

	canonical, ok := travelCommands.Match(input)
	if !ok {
		if hint := travelCommands.Suggest(input); hint != "" {
			t.message = "Unknown command. Did you mean \"" + hint + "\"?"
		} else {
			t.message = "Unknown command."
		}
		return
	}

	t.message = ""
	switch canonical {
	case "continue":
		t.world.TakeTurn(ctx.SkipDay)
		if arrived := t.world.ArrivedAt(); arrived != "" {
			t.message = "You have reached " + arrived + "."
			t.cues.Play(audio.CueArrival)
			if t.world.AtRiver() {
				if err := ctx.Windows.Add(ctx, engine.ModeRiverCrossing); err != nil {
					ctx.Log.Error("river window unavailable", "error", err)
				}
			}
		}
	case "rest":
		// A skipped day consumes nothing, so don't arm a rest that
		// would silently turn the next real day into one
		if !ctx.SkipDay {
			t.world.Rest()
		}
		t.world.TakeTurn(ctx.SkipDay)
		t.message = "The party rests for a day."
	case "status":
		t.message = t.world.PartySummary()
	case "save":
		if err := savegame.Save(t.savePath, t.world); err != nil {
			t.message = "Could not save the game."
			ctx.Log.Error("save failed", "path", t.savePath, "error", err)
		} else {
			t.message = "Game saved."
		}
	case "load":
		if err := savegame.Load(t.savePath, t.world); err != nil {
			t.message = "Could not load a saved game."
			ctx.Log.Error("load failed", "path", t.savePath, "error", err)
		} else {
			t.message = "Game loaded."
		}
	case "menu":
		t.FlagRemoval()
	}
}
