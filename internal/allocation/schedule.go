package allocation

import (
	"sort"

	"github.com/opspilot/groundops-scheduler/internal/domain"
)

func (p Plan) minuteRange(sa domain.ServiceAssignment) (start, end int, err error) {
	if sa.IsFlightZone() {
		flight, ok := p.flightMap[sa.FlightNumber]
		if !ok {
			return 0, 0, flightNotFoundError(sa)
		}
		ivs, err := flight.ServiceMinuteIntervals(sa.RelativeStart, sa.RelativeEnd)
		if err != nil {
			return 0, 0, err
		}
		return ivs[0].Start, ivs[len(ivs)-1].End, nil
	}

	start, err = domain.ParseClock(sa.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = domain.ParseClock(sa.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func flightNotFoundError(sa domain.ServiceAssignment) error {
	return &domain.ConfigError{Entity: "ServiceAssignment", Reason: "assignment references unknown flight " + sa.FlightNumber}
}

func (p Plan) buildEntry(sa domain.ServiceAssignment, staffID int) (ScheduleEntry, error) {
	service := p.serviceMap[sa.ServiceID]
	staff := p.staffMap[staffID]

	startMin, endMin, err := p.minuteRange(sa)
	if err != nil {
		return ScheduleEntry{}, err
	}

	var flightNumber *string
	if sa.IsFlightZone() {
		fn := sa.FlightNumber
		flightNumber = &fn
	}
	flightPriority, servicePriority := decodePriority(sa)

	return ScheduleEntry{
		ServiceAssignmentID: sa.ID,
		ServiceName:         service.Name,
		StartTime:           domain.FormatMinutes(startMin),
		EndTime:             domain.FormatMinutes(endMin),
		StartMinute:         startMin,
		FlightNumber:        flightNumber,
		FlightPriority:      flightPriority,
		ServicePriority:     servicePriority,
		StaffID:             staffID,
		StaffName:           staff.Name,
		LocationID:          sa.LocationID,
	}, nil
}

func sortEntries(entries []ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].StartMinute < entries[j].StartMinute })
}

// StaffSchedule groups every allocation by staff member, sorted by start
// time. Grounded on allocation_plan.py's staff_schedule.
func (p Plan) StaffSchedule() (map[int][]ScheduleEntry, error) {
	out := map[int][]ScheduleEntry{}
	for saID, staffSet := range p.allocations {
		sa := p.serviceAssignmentMap[saID]
		for staffID := range staffSet {
			entry, err := p.buildEntry(sa, staffID)
			if err != nil {
				return nil, err
			}
			out[staffID] = append(out[staffID], entry)
		}
	}
	for staffID := range out {
		sortEntries(out[staffID])
	}
	return out, nil
}

// FlightZoneServicesSchedule groups flight-zone allocations by flight
// number, sorted by start time.
func (p Plan) FlightZoneServicesSchedule() (map[string][]ScheduleEntry, error) {
	out := map[string][]ScheduleEntry{}
	for saID, staffSet := range p.allocations {
		sa := p.serviceAssignmentMap[saID]
		if !sa.IsFlightZone() {
			continue
		}
		for staffID := range staffSet {
			entry, err := p.buildEntry(sa, staffID)
			if err != nil {
				return nil, err
			}
			out[sa.FlightNumber] = append(out[sa.FlightNumber], entry)
		}
	}
	for flight := range out {
		sortEntries(out[flight])
	}
	return out, nil
}

// CommonZoneServicesSchedule groups common-zone allocations by service
// assignment id, sorted by start time.
func (p Plan) CommonZoneServicesSchedule() (map[int][]ScheduleEntry, error) {
	out := map[int][]ScheduleEntry{}
	for saID, staffSet := range p.allocations {
		sa := p.serviceAssignmentMap[saID]
		if sa.IsFlightZone() {
			continue
		}
		for staffID := range staffSet {
			entry, err := p.buildEntry(sa, staffID)
			if err != nil {
				return nil, err
			}
			out[saID] = append(out[saID], entry)
		}
	}
	for saID := range out {
		sortEntries(out[saID])
	}
	return out, nil
}
