package sim

// Health is a party member's condition tier
type Health int

const (
	HealthGood Health = iota
	HealthFair
	HealthPoor
	HealthVeryPoor
	HealthDead
)

func (h Health) String() string {
	switch h {
	case HealthGood:
		return "good"
	case HealthFair:
		return "fair"
	case HealthPoor:
		return "poor"
	case HealthVeryPoor:
		return "very poor"
	default:
		return "dead"
	}
}

// Member is one person in the party
type Member struct {
	Name   string
	Health Health
}

func (m *Member) worsen() {
	if m.Health < HealthDead {
		m.Health++
	}
}

func (m *Member) improve() {
	if m.Health > HealthGood && m.Health != HealthDead {
		m.Health--
	}
}

// Alive reports whether the member is still with the party
func (m Member) Alive() bool {
	return m.Health != HealthDead
}
