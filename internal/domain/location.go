package domain

// Location is a node in the location forest. ParentID is nil at a root.
type Location struct {
	ID       int
	Name     string
	Type     LocationType
	ParentID *int
}

// LocationMap indexes locations by id for overlap/travel-time lookups.
type LocationMap map[int]Location

// ValidateLocations rejects a dangling parent reference or a parent cycle.
// The original Python model recurses over children without this check; we
// validate eagerly instead of risking an infinite walk.
func ValidateLocations(locs []Location) error {
	byID := make(map[int]Location, len(locs))
	for _, l := range locs {
		byID[l.ID] = l
	}

	for _, l := range locs {
		seen := map[int]bool{l.ID: true}
		cur := l
		for cur.ParentID != nil {
			parent, ok := byID[*cur.ParentID]
			if !ok {
				return newConfigError("Location", "location %d references unknown parent %d", cur.ID, *cur.ParentID)
			}
			if seen[parent.ID] {
				return newConfigError("Location", "location %d is part of a parent cycle", l.ID)
			}
			seen[parent.ID] = true
			cur = parent
		}
	}
	return nil
}
