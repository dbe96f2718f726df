// Package savegame snapshots the running simulation to a JSON document
// and restores it. The document is built field by field so the save
// format stays independent of the sim package's struct layout.
package savegame

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/calloway-games/wagontrail/sim"
)

const formatVersion = 1

// Save writes the snapshot to path, replacing any previous save
func Save(path string, s *sim.Simulation) error {
	doc, err := encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

func encode(s *sim.Simulation) (string, error) {
	doc := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("version", formatVersion)
	set("leader", s.Leader)
	set("day", s.Day)
	set("mile", s.Mile)
	set("vessel.oxen", s.Vessel.Oxen)
	set("vessel.food_lbs", s.Vessel.FoodLbs)
	set("vessel.bullets", s.Vessel.Bullets)
	set("vessel.parts", s.Vessel.Parts)
	set("vessel.cash_cents", s.Vessel.CashCents)

	for i, m := range s.Party {
		set(fmt.Sprintf("party.%d.name", i), m.Name)
		set(fmt.Sprintf("party.%d.health", i), int(m.Health))
	}

	if err != nil {
		return "", fmt.Errorf("encode save: %w", err)
	}
	return doc, nil
}

// Load reads the snapshot at path into an existing simulation. The
// trail itself is code, not data, so only position and supplies move.
func Load(path string, s *sim.Simulation) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}

	doc := string(raw)
	if !gjson.Valid(doc) {
		return fmt.Errorf("save file %s is not valid JSON", path)
	}
	if v := gjson.Get(doc, "version").Int(); v != formatVersion {
		return fmt.Errorf("save version %d not supported", v)
	}

	day := gjson.Get(doc, "day").Int()
	mile := gjson.Get(doc, "mile").Int()
	if day < 0 || mile < 0 {
		return fmt.Errorf("save file %s: day %d, mile %d out of range", path, day, mile)
	}

	party := gjson.Get(doc, "party").Array()
	members := make([]sim.Member, 0, len(party))
	for i, entry := range party {
		h := sim.Health(entry.Get("health").Int())
		if h < sim.HealthGood || h > sim.HealthDead {
			return fmt.Errorf("save file %s: party.%d.health %d out of range", path, i, h)
		}
		members = append(members, sim.Member{
			Name:   entry.Get("name").String(),
			Health: h,
		})
	}

	s.Leader = gjson.Get(doc, "leader").String()
	s.Day = int(day)
	s.Mile = int(mile)
	restoreInt(doc, "vessel.oxen", &s.Vessel.Oxen)
	restoreInt(doc, "vessel.food_lbs", &s.Vessel.FoodLbs)
	restoreInt(doc, "vessel.bullets", &s.Vessel.Bullets)
	restoreInt(doc, "vessel.parts", &s.Vessel.Parts)
	restoreInt(doc, "vessel.cash_cents", &s.Vessel.CashCents)
	if len(members) > 0 {
		s.Party = members
	}
	return nil
}

// restoreInt overwrites dst only when the path is present, so a sparse
// document keeps the current value instead of zeroing supplies
func restoreInt(doc, path string, dst *int) {
	if v := gjson.Get(doc, path); v.Exists() {
		*dst = int(v.Int())
	}
}
