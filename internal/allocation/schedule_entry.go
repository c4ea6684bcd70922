package allocation

import "github.com/opspilot/groundops-scheduler/internal/domain"

// ScheduleEntry is one staff member's stint on one service assignment,
// projected into a human-readable form. Grounded on plans/schedule_entry.py.
//
// Priority is encoded as a single composite float on ServiceAssignment:
// for flight-zone assignments, the integer part is the flight's priority
// tier and the first decimal digit is the service's priority tier within
// that flight (e.g. 2.3 means flight-tier 2, service-tier 3); for
// common-zone assignments the whole value is the service priority. This
// format is never validated beyond "parses as a float" at input time,
// matching the original's unchecked (sa.priority * 10) % 10 decoding.
type ScheduleEntry struct {
	ServiceAssignmentID int
	ServiceName         string
	StartTime           string
	EndTime             string
	StartMinute         int
	FlightNumber        *string
	FlightPriority      *int
	ServicePriority     int
	StaffID             int
	StaffName           string
	LocationID          int
}

func decodePriority(sa domain.ServiceAssignment) (flightPriority *int, servicePriority int) {
	if sa.IsFlightZone() {
		fp := int(sa.Priority)
		sp := int(sa.Priority*10) % 10
		return &fp, sp
	}
	return nil, int(sa.Priority)
}
