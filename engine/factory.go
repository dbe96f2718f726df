package engine

// ModeFactory maps window identifiers to constructors. The table is
// populated once at process start; a missing entry is a startup bug,
// not a recoverable condition.
type ModeFactory struct {
	constructors map[ModeID]ModeConstructor
	runCounts    map[ModeID]int
}

func NewModeFactory() *ModeFactory {
	return &ModeFactory{
		constructors: make(map[ModeID]ModeConstructor),
		runCounts:    make(map[ModeID]int),
	}
}

// Register installs the constructor for a window identifier. Last
// registration wins; registration after startup is caller error.
func (f *ModeFactory) Register(id ModeID, fn ModeConstructor) {
	f.constructors[id] = fn
}

// Create builds a window instance. Construction increments the
// per-identifier run counter and must not mutate the stack: whether a
// window *can* be built is separate from whether it *is* active.
func (f *ModeFactory) Create(ctx *Context, id ModeID) (Mode, error) {
	fn, ok := f.constructors[id]
	if !ok {
		return nil, &UnregisteredModeError{ID: id}
	}
	f.runCounts[id]++
	return fn(ctx), nil
}

// RunCount returns how many instances of the identifier were built
func (f *ModeFactory) RunCount(id ModeID) int {
	return f.runCounts[id]
}

type stateKey struct {
	owner ModeID
	id    StateID
}

// StateFactory maps (window, form) pairs to constructors. Forms are
// scoped to their owning window: the same form identifier may build
// different implementations under different windows.
type StateFactory struct {
	constructors map[stateKey]StateConstructor
	runCounts    map[StateID]int
}

func NewStateFactory() *StateFactory {
	return &StateFactory{
		constructors: make(map[stateKey]StateConstructor),
		runCounts:    make(map[StateID]int),
	}
}

// Register installs the constructor for a form under its owning window
func (f *StateFactory) Register(owner ModeID, id StateID, fn StateConstructor) {
	f.constructors[stateKey{owner: owner, id: id}] = fn
}

// Create builds a form bound to the owning window's identifier
func (f *StateFactory) Create(ctx *Context, id StateID, owner ModeID) (State, error) {
	fn, ok := f.constructors[stateKey{owner: owner, id: id}]
	if !ok {
		return nil, &UnregisteredStateError{Owner: owner, ID: id}
	}
	f.runCounts[id]++
	return fn(ctx, owner), nil
}

// RunCount returns how many instances of the form identifier were built
func (f *StateFactory) RunCount(id StateID) int {
	return f.runCounts[id]
}
