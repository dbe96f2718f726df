package sim

// LandmarkKind distinguishes plain stops from river crossings
type LandmarkKind int

const (
	LandmarkStop LandmarkKind = iota
	LandmarkRiver
)

// Landmark is one point of interest along the trail
type Landmark struct {
	Name string
	Mile int
	Kind LandmarkKind
}

// defaultTrail is a short westbound route; content balance is not the
// point, exercising arrival and river handling is.
func defaultTrail() []Landmark {
	return []Landmark{
		{Name: "Independence", Mile: 0, Kind: LandmarkStop},
		{Name: "Kansas River Crossing", Mile: 102, Kind: LandmarkRiver},
		{Name: "Fort Kearney", Mile: 304, Kind: LandmarkStop},
		{Name: "Chimney Rock", Mile: 554, Kind: LandmarkStop},
		{Name: "Green River Crossing", Mile: 989, Kind: LandmarkRiver},
		{Name: "Fort Boise", Mile: 1395, Kind: LandmarkStop},
		{Name: "Willamette Valley", Mile: 2040, Kind: LandmarkStop},
	}
}

// NextLandmark returns the first landmark at or past the given mile
func NextLandmark(trail []Landmark, mile int) (Landmark, bool) {
	for _, lm := range trail {
		if lm.Mile >= mile && lm.Mile != 0 {
			return lm, true
		}
	}
	return Landmark{}, false
}
