package engine

import (
	"math/rand"

	"github.com/hashicorp/go-hclog"
)

// Context is the shared simulation context handed to every window and
// form. It replaces process-global access: constructed once at startup,
// wired by the caller, and torn down with the run.
type Context struct {
	// Windows is the window stack; content uses it to push sibling
	// windows or request forms for itself
	Windows *WindowManager

	// Status is the external domain simulation
	Status StatusSource

	// Rand is the shared randomness source. Tests seed it for
	// reproducible outcomes.
	Rand *rand.Rand

	// Log receives engine diagnostics; never nil after NewContext
	Log hclog.Logger

	// SkipDay mirrors the scheduler's pass-through flag for the
	// duration of one tick
	SkipDay bool
}

// NewContext builds a context with the given collaborators. A nil
// logger is replaced with a null logger so call sites never guard.
func NewContext(status StatusSource, rng *rand.Rand, log hclog.Logger) *Context {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Context{
		Status: status,
		Rand:   rng,
		Log:    log,
	}
}
