package engine

// Test doubles for the window/form capability sets. Content-free: they
// expose just enough knobs to drive the orchestration contracts.

type stubState struct {
	id      StateID
	prompt  string
	accepts bool
	next    StateID
	ticks   int
	heard   []string
}

func (s *stubState) ID() StateID { return s.id }
func (s *stubState) Prompt() string { return s.prompt }
func (s *stubState) AcceptsInput() bool { return s.accepts }
func (s *stubState) Tick(*Context) { s.ticks++ }

func (s *stubState) Respond(_ *Context, input string) StateID {
	s.heard = append(s.heard, input)
	return s.next
}

type stubMode struct {
	id      ModeID
	text    string
	accepts bool
	flagged bool
	state   State
	ticks   int
	heard   []string

	onTick    func(*Context)
	onCommand func(*Context, string)
}

func (m *stubMode) ID() ModeID { return m.id }
func (m *stubMode) Text() string { return m.text }
func (m *stubMode) AcceptsInput() bool { return m.accepts }
func (m *stubMode) CurrentState() State { return m.state }
func (m *stubMode) SetState(s State) { m.state = s }
func (m *stubMode) RemovalFlagged() bool { return m.flagged }
func (m *stubMode) FlagRemoval() { m.flagged = true }

func (m *stubMode) Tick(ctx *Context) {
	m.ticks++
	if m.onTick != nil {
		m.onTick(ctx)
	}
	if m.state != nil {
		m.state.Tick(ctx)
	}
}

func (m *stubMode) Command(ctx *Context, input string) {
	m.heard = append(m.heard, input)
	if m.onCommand != nil {
		m.onCommand(ctx, input)
	}
}

type stubStatus struct {
	turns int
	line  string
	taken []bool // skipDay flag per TakeTurn call
}

func (s *stubStatus) TurnCount() int { return s.turns }
func (s *stubStatus) StatusLine() string { return s.line }

func (s *stubStatus) TakeTurn(skipDay bool) {
	s.taken = append(s.taken, skipDay)
	if !skipDay {
		s.turns++
	}
}

// rig bundles a fully wired engine around stub content for tests
type rig struct {
	ctx     *Context
	modes   *ModeFactory
	states  *StateFactory
	windows *WindowManager
	input   *InputRouter
	scene   *SceneGraph
	sched   *Scheduler
	status  *stubStatus
}

func newRig() *rig {
	status := &stubStatus{line: "oxen 4 | food 200 lbs"}
	ctx := NewContext(status, nil, nil)

	modes := NewModeFactory()
	states := NewStateFactory()
	windows := NewWindowManager(modes, states, nil)
	input := NewInputRouter(windows)
	scene := NewSceneGraph(windows, input, status)

	ctx.Windows = windows

	return &rig{
		ctx:     ctx,
		modes:   modes,
		states:  states,
		windows: windows,
		input:   input,
		scene:   scene,
		sched:   NewScheduler(ctx, windows, input, scene, nil),
		status:  status,
	}
}

// registerStub installs a constructor returning the given prototype
// settings and returns a pointer slot filled on creation
func (r *rig) registerStub(id ModeID, accepts bool, text string) **stubMode {
	slot := new(*stubMode)
	r.modes.Register(id, func(*Context) Mode {
		m := &stubMode{id: id, accepts: accepts, text: text}
		*slot = m
		return m
	})
	return slot
}
