package modes

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/calloway-games/wagontrail/engine"
	"github.com/calloway-games/wagontrail/sim"
)

// newRig wires a window manager with every content window registered.
// Audio cues stay nil; Play on a nil receiver is a no-op.
func newRig(t *testing.T, leader string) (*engine.Context, *engine.WindowManager, *sim.Simulation) {
	t.Helper()

	world := sim.New(leader)
	mf := engine.NewModeFactory()
	sf := engine.NewStateFactory()
	RegisterAll(mf, sf, Deps{
		World:    world,
		SavePath: filepath.Join(t.TempDir(), "save.json"),
	})

	wm := engine.NewWindowManager(mf, sf, nil)
	ctx := engine.NewContext(world, rand.New(rand.NewSource(7)), nil)
	ctx.Windows = wm
	return ctx, wm, world
}

// fixedSource feeds rand.Rand a constant so outcome rolls are pinned.
// Intn shifts the top 31 bits out of Int63, so v<<32 makes Intn(n)
// return v%n for small v.
type fixedSource struct{ v int64 }

func (s fixedSource) Int63() int64 { return s.v << 32 }
func (s fixedSource) Seed(int64)   {}
