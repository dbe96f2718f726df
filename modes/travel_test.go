package modes

import (
	"strings"
	"testing"

	"github.com/calloway-games/wagontrail/engine"
)

func TestTravelContinueTakesATurn(t *testing.T) {
	ctx, wm, world := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	travel := wm.ActiveMode().(*Travel)
	travel.Command(ctx, "continue")
	if world.Day != 1 {
		t.Errorf("Day = %d, want 1", world.Day)
	}
	if world.Mile != 22 {
		t.Errorf("Mile = %d, want 22 with a full team", world.Mile)
	}
}

func TestTravelSkipDayFreezesTheWorld(t *testing.T) {
	ctx, wm, world := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ctx.SkipDay = true

	travel := wm.ActiveMode().(*Travel)
	travel.Command(ctx, "continue")
	if world.Day != 0 || world.Mile != 0 {
		t.Errorf("Day, Mile = %d, %d; want 0, 0 on a skipped day", world.Day, world.Mile)
	}
}

func TestTravelRestRecoversWithoutMoving(t *testing.T) {
	ctx, wm, world := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	travel := wm.ActiveMode().(*Travel)
	travel.Command(ctx, "rest")
	if world.Mile != 0 {
		t.Errorf("Mile = %d, want 0 after a rest day", world.Mile)
	}
	if world.Day != 1 {
		t.Errorf("Day = %d, want 1", world.Day)
	}
	if !strings.Contains(travel.Text(), "rests for a day") {
		t.Errorf("Text() = %q, want the rest notice", travel.Text())
	}
}

func TestTravelStatusListsTheParty(t *testing.T) {
	ctx, wm, world := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	travel := wm.ActiveMode().(*Travel)
	travel.Command(ctx, "status")
	if !strings.Contains(travel.Text(), world.PartySummary()) {
		t.Errorf("Text() = %q, want the party summary", travel.Text())
	}
}

func TestTravelRiverArrivalOpensCrossing(t *testing.T) {
	ctx, wm, world := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}
	world.Mile = 101 // one mile short of the Kansas River

	travel := wm.ActiveMode().(*Travel)
	travel.Command(ctx, "continue")
	if world.Mile != 102 {
		t.Errorf("Mile = %d, want the clamp at 102", world.Mile)
	}
	if !strings.Contains(travel.message, "Kansas River") {
		t.Errorf("message = %q, want the arrival", travel.message)
	}
	if got := wm.ActiveMode().ID(); got != engine.ModeRiverCrossing {
		t.Errorf("active = %v, want the river crossing", got)
	}
}

func TestTravelSaveAndLoadRoundTrip(t *testing.T) {
	ctx, wm, world := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	travel := wm.ActiveMode().(*Travel)
	travel.Command(ctx, "continue")
	travel.Command(ctx, "continue")
	travel.Command(ctx, "save")
	if !strings.Contains(travel.Text(), "Game saved.") {
		t.Fatalf("Text() = %q, want the save confirmation", travel.Text())
	}

	world.Day = 40
	world.Mile = 900
	travel.Command(ctx, "load")
	if world.Day != 2 || world.Mile != 44 {
		t.Errorf("Day, Mile = %d, %d; want 2, 44 restored", world.Day, world.Mile)
	}
}

func TestTravelMenuFlagsRemoval(t *testing.T) {
	ctx, wm, _ := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeMainMenu); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	travel := wm.ActiveMode().(*Travel)
	travel.Command(ctx, "menu")
	if err := wm.Tick(ctx); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := wm.ActiveMode().ID(); got != engine.ModeMainMenu {
		t.Errorf("active after menu = %v, want the menu", got)
	}
}

func TestTravelRestDuringSkipDayDoesNotArm(t *testing.T) {
	ctx, wm, world := newRig(t, "Art")
	if err := wm.Add(ctx, engine.ModeTravel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	travel := wm.ActiveMode().(*Travel)
	ctx.SkipDay = true
	travel.Command(ctx, "rest")
	if world.Day != 0 || world.Mile != 0 {
		t.Fatalf("Day, Mile = %d, %d; want 0, 0 on a skipped day", world.Day, world.Mile)
	}

	// The next real day travels; a rest ordered on a frozen day must
	// not carry over
	ctx.SkipDay = false
	travel.Command(ctx, "continue")
	if world.Mile != 22 {
		t.Errorf("Mile = %d, want 22 traveled", world.Mile)
	}
	if world.Day != 1 {
		t.Errorf("Day = %d, want 1", world.Day)
	}
}
