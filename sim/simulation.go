package sim

import (
	"fmt"
	"strings"
)

const foodPerMemberPerDay = 2

// Simulation is the domain state: party, wagon, trail position and the
// day counter. It implements the engine's StatusSource.
type Simulation struct {
	Leader string
	Party  []Member
	Vessel Vessel

	Day     int
	Mile    int
	trail   []Landmark
	resting bool
	arrived string // landmark announced this turn, cleared next turn
}

// New builds a fresh simulation with default supplies. An empty leader
// means nobody has been named yet; content prompts for one.
func New(leader string) *Simulation {
	first := leader
	if first == "" {
		first = "Pioneer"
	}
	return &Simulation{
		Leader: leader,
		Party: []Member{
			{Name: first},
			{Name: "Mary"},
			{Name: "Samuel"},
			{Name: "Eliza"},
		},
		Vessel: defaultVessel(),
		trail:  defaultTrail(),
	}
}

// Rename sets the leader and renames the party's first member to match
func (s *Simulation) Rename(leader string) {
	if leader == "" {
		return
	}
	s.Leader = leader
	if len(s.Party) > 0 {
		s.Party[0].Name = leader
	}
}

// TurnCount implements engine.StatusSource
func (s *Simulation) TurnCount() int {
	return s.Day
}

// StatusLine implements engine.StatusSource
func (s *Simulation) StatusLine() string {
	next, ok := NextLandmark(s.trail, s.Mile)
	where := "end of the trail"
	if ok {
		where = fmt.Sprintf("%s (%d miles)", next.Name, next.Mile-s.Mile)
	}
	return fmt.Sprintf("oxen %d | food %d lbs | %s | %s",
		s.Vessel.Oxen, s.Vessel.FoodLbs, s.Vessel.CashString(), where)
}

// TakeTurn implements engine.StatusSource: one day passes. skipDay
// forces the turn without advancing simulated time, so supplies and
// health are left alone.
func (s *Simulation) TakeTurn(skipDay bool) {
	if skipDay {
		return
	}

	s.Day++
	s.arrived = ""
	s.eat()

	if s.resting {
		s.resting = false
		for i := range s.Party {
			if s.Party[i].Alive() {
				s.Party[i].improve()
			}
		}
		return
	}

	before := s.Mile
	s.Mile += s.Vessel.mileage()
	if lm, ok := NextLandmark(s.trail, before+1); ok && s.Mile >= lm.Mile {
		s.Mile = lm.Mile
		s.arrived = lm.Name
	}
}

func (s *Simulation) eat() {
	need := foodPerMemberPerDay * s.aliveCount()
	if s.Vessel.FoodLbs >= need {
		s.Vessel.FoodLbs -= need
		return
	}

	// Starvation: whatever food remains is gone and everyone suffers
	s.Vessel.FoodLbs = 0
	for i := range s.Party {
		if s.Party[i].Alive() {
			s.Party[i].worsen()
		}
	}
}

func (s *Simulation) aliveCount() int {
	n := 0
	for _, m := range s.Party {
		if m.Alive() {
			n++
		}
	}
	return n
}

// Rest marks the next turn as a rest day: no travel, health recovers
func (s *Simulation) Rest() {
	s.resting = true
}

// ArrivedAt returns the landmark reached on the most recent turn, or ""
func (s *Simulation) ArrivedAt() string {
	return s.arrived
}

// AtRiver reports whether the wagon currently sits on a river landmark
func (s *Simulation) AtRiver() bool {
	for _, lm := range s.trail {
		if lm.Mile == s.Mile && lm.Kind == LandmarkRiver {
			return true
		}
	}
	return false
}

// TrailComplete reports whether the last landmark has been reached
func (s *Simulation) TrailComplete() bool {
	last := s.trail[len(s.trail)-1]
	return s.Mile >= last.Mile
}

// PartySummary lists each member with their condition
func (s *Simulation) PartySummary() string {
	var b strings.Builder
	for _, m := range s.Party {
		fmt.Fprintf(&b, "%s: %s\n", m.Name, m.Health)
	}
	return strings.TrimRight(b.String(), "\n")
}
