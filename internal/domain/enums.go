package domain

// ServiceType tags how a service assignment's exclusivity is governed.
type ServiceType string

const (
	// ServiceSingle is an exclusive per-flight service for a staff member.
	ServiceSingle ServiceType = "S"
	// ServiceFixed is a per-day exclusive service dedication for a staff member.
	ServiceFixed ServiceType = "F"
	// ServiceMultiTask is a flight-zone service combinable with compatible
	// peers up to a limit.
	ServiceMultiTask ServiceType = "M"
)

// CertificationRequirement governs how a service's required certifications
// are matched against a staff member's certifications.
type CertificationRequirement string

const (
	CertificationAll CertificationRequirement = "ALL"
	CertificationAny CertificationRequirement = "ANY"
)

// AssignmentStrategy selects the objective the scheduler maximizes.
type AssignmentStrategy string

const (
	StrategyMinimizeStaff      AssignmentStrategy = "MINIMIZE_STAFF"
	StrategyBalanceWorkload    AssignmentStrategy = "BALANCE_WORKLOAD"
	StrategyTurnaroundWorkload AssignmentStrategy = "TURNAROUND_WORKLOAD"
	StrategyMultiDepartment    AssignmentStrategy = "MULTI_DEPARTMENT"
)

// LocationType is informational metadata about a Location; the scheduler
// never branches on it. It is not copied into allocation projections:
// ScheduleEntry carries only the location id.
type LocationType string

const (
	LocationBay            LocationType = "Bay"
	LocationCheckInCounter  LocationType = "Check-in Counter"
	LocationBoardingGate    LocationType = "Boarding Gate"
	LocationZone            LocationType = "Zone"
	LocationArea            LocationType = "Area"
	LocationTerminal        LocationType = "Terminal"
	LocationTypeUnspecified LocationType = ""
)

// Result is the public, collapsed status of a scheduler run.
type Result string

const (
	Found    Result = "FOUND"
	NotFound Result = "NOT_FOUND"
)

// SolveStatus retains the finer-grained solver status internally, per
// spec.md's open question on whether OPTIMAL/FEASIBLE should stay
// distinguishable to downstream tooling.
type SolveStatus string

const (
	StatusOptimal     SolveStatus = "OPTIMAL"
	StatusFeasible    SolveStatus = "FEASIBLE"
	StatusInfeasible  SolveStatus = "INFEASIBLE"
	StatusUnknown     SolveStatus = "UNKNOWN"
	StatusNotAttempted SolveStatus = ""
)
