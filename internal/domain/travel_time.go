package domain

// TravelTime is a directional travel-minutes estimate between two locations.
type TravelTime struct {
	OriginLocationID      int
	DestinationLocationID int
	TravelMinutes         int
}

// TravelTimeKey identifies one directed origin/destination pair.
type TravelTimeKey struct {
	Origin      int
	Destination int
}

// TravelTimeMap indexes travel times for the overlap detector.
type TravelTimeMap map[TravelTimeKey]int

// BuildTravelTimeMap indexes a flat list of travel times by origin/destination.
func BuildTravelTimeMap(times []TravelTime) TravelTimeMap {
	m := make(TravelTimeMap, len(times))
	for _, t := range times {
		m[TravelTimeKey{t.OriginLocationID, t.DestinationLocationID}] = t.TravelMinutes
	}
	return m
}
