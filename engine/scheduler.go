package engine

import (
	"github.com/hashicorp/go-hclog"
)

// Scheduler is the outer tick driver. One external caller signals it
// once per tick; everything below runs to completion on that caller's
// goroutine, in a fixed order: stack cleanup and window ticking, then
// the one-command input drain, then rendering. A window added or
// removed during the tick is therefore reflected in the same tick's
// frame. No operation suspends or yields mid-step.
type Scheduler struct {
	windows *WindowManager
	input   *InputRouter
	scene   *SceneGraph
	ctx     *Context
	log     hclog.Logger

	skipDay bool
	ticks   uint64
}

func NewScheduler(ctx *Context, windows *WindowManager, input *InputRouter, scene *SceneGraph, log hclog.Logger) *Scheduler {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Scheduler{
		windows: windows,
		input:   input,
		scene:   scene,
		ctx:     ctx,
		log:     log,
	}
}

// SetSkipDay sets the pass-through flag external callers use to force a
// tick without advancing simulated time. The engine forwards it to the
// domain via the context and does not interpret it.
func (s *Scheduler) SetSkipDay(v bool) {
	s.skipDay = v
}

// SkipDay returns the pass-through flag
func (s *Scheduler) SkipDay() bool {
	return s.skipDay
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick runs one scheduler step. A cleanup invariant violation aborts
// the step and propagates; content panics are not caught here, they
// belong to the caller.
func (s *Scheduler) Tick() error {
	s.ctx.SkipDay = s.skipDay

	if err := s.windows.Tick(s.ctx); err != nil {
		return err
	}
	s.input.Tick(s.ctx)
	s.scene.Tick()

	s.ticks++
	if s.ticks%256 == 0 {
		s.log.Debug("scheduler heartbeat", "ticks", s.ticks, "windows", s.windows.Count())
	}
	return nil
}
