package domain

import (
	"github.com/opspilot/groundops-scheduler/internal/timeutil"
)

// ServiceAssignment is the central scheduling record: a concrete service to
// be staffed, with its time specification given either relative to a flight
// or as an absolute common-zone window, never both.
type ServiceAssignment struct {
	ID            int
	ServiceID     int
	DepartmentID  *int
	Priority      float64 // lower = higher priority
	StaffCount    int
	LocationID    int
	PriorityRoles [][]string // tiered role preference
	ServiceType   ServiceType

	// Relative (flight-zone) time spec.
	FlightNumber  string
	RelativeStart string // "A±N" / "D±N"
	RelativeEnd   string

	// Absolute (common-zone) time spec.
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"

	// M-only fields.
	MultiTaskLimit  *int
	ExcludeServices map[int]struct{}

	// Equipment fields: jointly present or jointly absent.
	NeedsEquipment bool
	EquipmentType  *string
	EquipmentID    *int
}

// ServiceAssignmentMap indexes assignments by id.
type ServiceAssignmentMap map[int]ServiceAssignment

// IsFlightZone reports whether this assignment is bound to a specific
// flight (relative-timed) as opposed to a common-zone, absolute-timed one.
func (sa ServiceAssignment) IsFlightZone() bool {
	return sa.FlightNumber != ""
}

// Validate enforces invariants 1-4 of spec.md §3 at construction time.
func (sa ServiceAssignment) Validate() error {
	hasRelative := sa.FlightNumber != "" || sa.RelativeStart != "" || sa.RelativeEnd != ""
	hasAbsolute := sa.StartTime != "" || sa.EndTime != ""

	if hasRelative && hasAbsolute {
		return newConfigError("ServiceAssignment", "assignment %d specifies both relative and absolute times", sa.ID)
	}
	if !hasRelative && !hasAbsolute {
		return newConfigError("ServiceAssignment", "assignment %d specifies neither relative nor absolute times", sa.ID)
	}
	if hasRelative && (sa.FlightNumber == "" || sa.RelativeStart == "" || sa.RelativeEnd == "") {
		return newConfigError("ServiceAssignment", "assignment %d has an incomplete relative time spec", sa.ID)
	}
	if hasAbsolute && (sa.StartTime == "" || sa.EndTime == "") {
		return newConfigError("ServiceAssignment", "assignment %d has an incomplete absolute time spec", sa.ID)
	}

	switch sa.ServiceType {
	case ServiceMultiTask:
		if sa.MultiTaskLimit == nil {
			return newConfigError("ServiceAssignment", "assignment %d is MultiTask but has no multi_task_limit", sa.ID)
		}
		if !hasRelative {
			return newConfigError("ServiceAssignment", "assignment %d is MultiTask but is not flight-zone", sa.ID)
		}
	case ServiceSingle, ServiceFixed:
		if sa.MultiTaskLimit != nil {
			return newConfigError("ServiceAssignment", "assignment %d sets multi_task_limit but is not MultiTask", sa.ID)
		}
		if len(sa.ExcludeServices) > 0 {
			return newConfigError("ServiceAssignment", "assignment %d sets exclude_services but is not MultiTask", sa.ID)
		}
	default:
		return newConfigError("ServiceAssignment", "assignment %d has unknown service_type %q", sa.ID, sa.ServiceType)
	}

	if hasAbsolute && (sa.ServiceType != ServiceSingle && sa.ServiceType != ServiceFixed) {
		return newConfigError("ServiceAssignment", "assignment %d is a common-zone assignment but is not Single or Fixed", sa.ID)
	}

	hasEquipType := sa.EquipmentType != nil
	hasEquipID := sa.EquipmentID != nil
	if hasEquipType != hasEquipID {
		return newConfigError("ServiceAssignment", "assignment %d has mismatched equipment fields", sa.ID)
	}

	return nil
}

// MinuteIntervals resolves this assignment's time spec to concrete minute
// intervals, consulting flightMap for relative specs. A relative spec whose
// flight is missing is a fatal configuration error (spec.md §4.2, §7).
func (sa ServiceAssignment) MinuteIntervals(flightMap FlightMap) ([]timeutil.Interval, error) {
	if sa.IsFlightZone() {
		flight, ok := flightMap[sa.FlightNumber]
		if !ok {
			return nil, newConfigError("ServiceAssignment", "assignment %d references unknown flight %q", sa.ID, sa.FlightNumber)
		}
		return flight.ServiceMinuteIntervals(sa.RelativeStart, sa.RelativeEnd)
	}

	start, err := ParseClock(sa.StartTime)
	if err != nil {
		return nil, newConfigError("ServiceAssignment", "assignment %d has invalid start_time: %v", sa.ID, err)
	}
	end, err := ParseClock(sa.EndTime)
	if err != nil {
		return nil, newConfigError("ServiceAssignment", "assignment %d has invalid end_time: %v", sa.ID, err)
	}
	return timeutil.ToMinuteRanges(start, end), nil
}
