package modes

import (
	"strings"

	"github.com/calloway-games/wagontrail/engine"
	"github.com/calloway-games/wagontrail/sim"
)

var menuCommands = newMatcher(
	commandDef{canonical: "travel", aliases: []string{"1", "go", "trail"}},
	commandDef{canonical: "store", aliases: []string{"2", "buy", "supplies"}},
	commandDef{canonical: "quit", aliases: []string{"3", "exit"}},
)

// MainMenu is the entry window. Its first tick attaches the name-entry
// form when no leader has been chosen yet.
type MainMenu struct {
	baseMode
	world   *sim.Simulation
	message string
}

func NewMainMenu(world *sim.Simulation) *MainMenu {
	return &MainMenu{
		baseMode: baseMode{id: engine.ModeMainMenu, accepts: true},
		world:    world,
	}
}

func (m *MainMenu) Text() string {
	if prompt := m.stateText(); prompt != "" {
		return prompt
	}

	var b strings.Builder
	b.WriteString("THE WAGON TRAIL\n")
	b.WriteString("1. Travel the trail\n")
	b.WriteString("2. Buy supplies\n")
	b.WriteString("3. Quit\n")
	if m.message != "" {
		b.WriteString("\n" + m.message)
	}
	return b.String()
}

func (m *MainMenu) Tick(ctx *engine.Context) {
	if m.world.Leader == "" && m.CurrentState() == nil {
		form, err := ctx.Windows.CreateStateForActiveMode(ctx, engine.StateNameEntry)
		if err != nil {
			ctx.Log.Error("name entry unavailable", "error", err)
			m.world.Rename("Pioneer")
			return
		}
		m.SetState(form)
	}
	m.tickState(ctx)
}

func (m *MainMenu) Command(ctx *engine.Context, input string) {
	if m.respondState(ctx, input) {
		return
	}

	canonical, ok := menuCommands.Match(input)
	if !ok {
		if hint := menuCommands.Suggest(input); hint != "" {
			m.message = "Unknown choice. Did you mean \"" + hint + "\"?"
		} else {
			m.message = "Unknown choice."
		}
		return
	}

	m.message = ""
	switch canonical {
	case "travel":
		if err := ctx.Windows.Add(ctx, engine.ModeTravel); err != nil {
			ctx.Log.Error("travel window unavailable", "error", err)
		}
	case "store":
		if err := ctx.Windows.Add(ctx, engine.ModeStore); err != nil {
			ctx.Log.Error("store window unavailable", "error", err)
		}
	case "quit":
		m.FlagRemoval()
	}
}

// NameEntry asks for the party leader's name and renames the party's
// first member to match.
type NameEntry struct {
	world *sim.Simulation
}

func NewNameEntry(world *sim.Simulation) *NameEntry {
	return &NameEntry{world: world}
}

func (s *NameEntry) ID() engine.StateID { return engine.StateNameEntry }
func (s *NameEntry) AcceptsInput() bool { return true }
func (s *NameEntry) Tick(*engine.Context) {}

func (s *NameEntry) Prompt() string {
	return "What is the first name of the wagon leader?"
}

func (s *NameEntry) Respond(_ *engine.Context, input string) engine.StateID {
	name := strings.TrimSpace(input)
	if name == "" {
		// Stay until the player commits to a name
		return engine.StateNameEntry
	}
	s.world.Rename(name)
	return engine.StateNone
}
