package domain

import (
	"github.com/opspilot/groundops-scheduler/internal/timeutil"
)

// Staff is a roster member: their shifts, certifications and eligibility.
type Staff struct {
	ID                   int
	Name                 string
	DepartmentID         *int
	Shifts               []Shift
	Certifications       map[int]struct{}
	EligibleForServices  map[ServiceType]struct{}
	PriorityServiceID    *int
	RankLevel            int // lower = higher priority, default 0
	RoleCode             *string
}

// StaffMap indexes staff by id.
type StaffMap map[int]Staff

// shiftIntervals flattens every shift's minute intervals.
func (s Staff) shiftIntervals() ([]timeutil.Interval, error) {
	var all []timeutil.Interval
	for _, shift := range s.Shifts {
		ivs, err := shift.MinuteIntervals()
		if err != nil {
			return nil, err
		}
		all = append(all, ivs...)
	}
	return all, nil
}

// IsAvailableForService reports whether every serviceInterval is fully
// covered by some single shift interval. No stitching across shifts.
func (s Staff) IsAvailableForService(serviceIntervals []timeutil.Interval) (bool, error) {
	shiftIvs, err := s.shiftIntervals()
	if err != nil {
		return false, err
	}
	return timeutil.AreFullyCovered(serviceIntervals, shiftIvs), nil
}

// IsCertifiedForService implements the ALL/ANY certification match.
func (s Staff) IsCertifiedForService(service Service) bool {
	switch service.CertificationRequirement {
	case CertificationAll:
		for _, c := range service.Certifications {
			if _, ok := s.Certifications[c]; !ok {
				return false
			}
		}
		return true
	case CertificationAny:
		for _, c := range service.Certifications {
			if _, ok := s.Certifications[c]; ok {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// IsEligibleForService checks the assignment's service type against the
// staff member's eligible service types.
func (s Staff) IsEligibleForService(sa ServiceAssignment) bool {
	_, ok := s.EligibleForServices[sa.ServiceType]
	return ok
}

// CanPerformService is the conjunction of availability, certification and
// eligibility.
func (s Staff) CanPerformService(service Service, serviceIntervals []timeutil.Interval, sa ServiceAssignment) (bool, error) {
	available, err := s.IsAvailableForService(serviceIntervals)
	if err != nil {
		return false, err
	}
	return available && s.IsCertifiedForService(service) && s.IsEligibleForService(sa), nil
}

// HasTimeAvailable reports whether any shift minute remains free after
// subtracting the minute intervals of already-assigned assignments.
func (s Staff) HasTimeAvailable(assigned []ServiceAssignment, flightMap FlightMap) (bool, error) {
	var assignedIvs []timeutil.Interval
	for _, sa := range assigned {
		ivs, err := sa.MinuteIntervals(flightMap)
		if err != nil {
			return false, err
		}
		assignedIvs = append(assignedIvs, ivs...)
	}

	shiftIvs, err := s.shiftIntervals()
	if err != nil {
		return false, err
	}
	return timeutil.HasAvailableTime(shiftIvs, assignedIvs), nil
}

// AvailableIntervals returns the staff member's free minute intervals after
// subtracting the minute intervals of already-assigned assignments.
func (s Staff) AvailableIntervals(assigned []ServiceAssignment, flightMap FlightMap) ([]timeutil.Interval, error) {
	var assignedIvs []timeutil.Interval
	for _, sa := range assigned {
		ivs, err := sa.MinuteIntervals(flightMap)
		if err != nil {
			return nil, err
		}
		assignedIvs = append(assignedIvs, ivs...)
	}

	shiftIvs, err := s.shiftIntervals()
	if err != nil {
		return nil, err
	}
	return timeutil.AvailableIntervals(shiftIvs, assignedIvs), nil
}
