// Package sim is the domain simulation behind the orchestration engine:
// the wagon, the party, the trail and the daily turn. The engine sees it
// only through its StatusSource interface.
package sim

import "fmt"

// Vessel is the party's wagon and supplies
type Vessel struct {
	Oxen      int
	FoodLbs   int
	Bullets   int
	Parts     int
	CashCents int
}

func defaultVessel() Vessel {
	return Vessel{
		Oxen:      4,
		FoodLbs:   200,
		Bullets:   80,
		Parts:     3,
		CashCents: 70000,
	}
}

// CashString formats the cash on hand as dollars
func (v Vessel) CashString() string {
	return fmt.Sprintf("$%d.%02d", v.CashCents/100, v.CashCents%100)
}

// Spend deducts the price if affordable and reports whether it was
func (v *Vessel) Spend(cents int) bool {
	if cents < 0 || v.CashCents < cents {
		return false
	}
	v.CashCents -= cents
	return true
}

// mileage is how far the wagon moves in one travelling day. Oxen help
// up to a full team; a dead team moves nothing.
func (v Vessel) mileage() int {
	if v.Oxen <= 0 {
		return 0
	}
	team := v.Oxen
	if team > 4 {
		team = 4
	}
	return 10 + 3*team
}
