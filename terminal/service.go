// Package terminal is the tcell front-end: it feeds physical key events
// into the engine's input router and draws the frames the renderer
// announces. The engine itself makes no assumption about either side.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/calloway-games/wagontrail/engine"
)

// Service owns the tcell screen and the input polling goroutine. Events
// are channeled to the simulation loop so all engine mutation stays on
// the driver's goroutine.
type Service struct {
	screen tcell.Screen
	events chan tcell.Event
	stop   chan struct{}
}

// New initializes the screen
func New() (*Service, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.Clear()

	return &Service{
		screen: screen,
		events: make(chan tcell.Event, 64),
		stop:   make(chan struct{}),
	}, nil
}

// Start launches the polling goroutine
func (s *Service) Start() {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.events <- ev:
			case <-s.stop:
				return
			}
		}
	}()
}

// Events returns the channel the simulation loop drains each tick
func (s *Service) Events() <-chan tcell.Event {
	return s.events
}

// Feed translates one event into router calls. Returns false when the
// player asked to quit.
func (s *Service) Feed(ev tcell.Event, router *engine.InputRouter) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		switch tev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			router.Submit()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			router.RemoveLastChar()
		case tcell.KeyRune:
			router.AddChar(tev.Rune())
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// Draw replaces the screen contents with the given frame
func (s *Service) Draw(frame string) {
	s.screen.Clear()

	width, height := s.screen.Size()
	row, col := 0, 0
	for _, ch := range frame {
		if ch == '\n' {
			row++
			col = 0
			continue
		}
		if row >= height {
			break
		}
		if col < width {
			s.screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		}
		col++
	}
	s.screen.Show()
}

// Fini restores the terminal
func (s *Service) Fini() {
	close(s.stop)
	s.screen.Fini()
}
