package modes

import (
	"fmt"
	"strings"

	"github.com/calloway-games/wagontrail/engine"
	"github.com/calloway-games/wagontrail/sim"
)

// storeItem is one purchasable lot
type storeItem struct {
	name       string
	priceCents int
	apply      func(*sim.Vessel)
}

var storeStock = []storeItem{
	{name: "oxen", priceCents: 4000, apply: func(v *sim.Vessel) { v.Oxen++ }},
	{name: "food", priceCents: 500, apply: func(v *sim.Vessel) { v.FoodLbs += 25 }},
	{name: "bullets", priceCents: 200, apply: func(v *sim.Vessel) { v.Bullets += 20 }},
	{name: "parts", priceCents: 1500, apply: func(v *sim.Vessel) { v.Parts++ }},
}

var storeCommands = newMatcher(
	commandDef{canonical: "oxen", aliases: []string{"ox"}},
	commandDef{canonical: "food", aliases: []string{"rations"}},
	commandDef{canonical: "bullets", aliases: []string{"ammo", "ammunition"}},
	commandDef{canonical: "parts", aliases: []string{"spares", "wheel"}},
	commandDef{canonical: "leave", aliases: []string{"back", "done", "exit"}},
)

// Store sells supply lots against the wagon's cash. "leave" flags the
// window away and control returns to whatever sits beneath it.
type Store struct {
	baseMode
	world   *sim.Simulation
	message string
}

func NewStore(world *sim.Simulation) *Store {
	return &Store{
		baseMode: baseMode{id: engine.ModeStore, accepts: true},
		world:    world,
	}
}

func (s *Store) Text() string {
	var b strings.Builder
	b.WriteString("MATT'S GENERAL STORE\n")
	for _, item := range storeStock {
		fmt.Fprintf(&b, "%-8s $%d.%02d per lot\n", item.name, item.priceCents/100, item.priceCents%100)
	}
	fmt.Fprintf(&b, "Cash on hand: %s\n", s.world.Vessel.CashString())
	b.WriteString("Type an item to buy it, or \"leave\".")
	if s.message != "" {
		b.WriteString("\n\n" + s.message)
	}
	return b.String()
}

func (s *Store) Tick(ctx *engine.Context) {
	s.tickState(ctx)
}

func (s *Store) Command(ctx *engine.Context, input string) {
	if s.respondState(ctx, input) {
		return
	}

	canonical, ok := storeCommands.Match(input)
	if !ok {
		if hint := storeCommands.Suggest(input); hint != "" {
			s.message = "We don't stock that. Did you mean \"" + hint + "\"?"
		} else {
			s.message = "We don't stock that."
		}
		return
	}

	if canonical == "leave" {
		s.FlagRemoval()
		return
	}

	for _, item := range storeStock {
		if item.name != canonical {
			continue
		}
		if !s.world.Vessel.Spend(item.priceCents) {
			s.message = "You can't afford that."
			return
		}
		item.apply(&s.world.Vessel)
		s.message = fmt.Sprintf("Bought %s. Cash left: %s", item.name, s.world.Vessel.CashString())
		return
	}
}
