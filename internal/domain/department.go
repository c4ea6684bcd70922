package domain

// Department is the immutable input slice of a department: its roster, its
// service catalogue of pending work, and its travel-time table. The fields
// the scheduler populates between orchestration passes (allocation plan,
// pending assignments, available staff) live on orchestrator.Department,
// which wraps this type — keeping domain free of a dependency on the
// allocation package avoids an import cycle (allocation depends on domain).
type Department struct {
	ID                 int
	Name               string
	Roster             []Staff
	ServiceAssignments []ServiceAssignment
	TravelTimes        []TravelTime
}
