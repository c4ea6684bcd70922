package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// FixedService enforces Fixed (F) service rules:
//  1. flight-zone: at most one Fixed service per flight per staff member;
//  2. whole-day: at most one distinct Fixed service_id per staff member,
//     repeats of the same service_id across the day are fine;
//  3. whole-day: holding any Fixed service excludes every non-Fixed service
//     for that staff member, for the whole day.
type FixedService struct {
	ServiceAssignmentMap domain.ServiceAssignmentMap
	Log                  zerolog.Logger
}

func (f FixedService) Apply(m mip.Model, vars Vars) {
	f.Log.Debug().Msg("applying fixed service constraint")

	flightStaffFixed := map[flightStaffKey][]mip.Bool{}
	staffServiceFixed := map[int]map[int][]mip.Bool{}
	staffFixed := map[int][]mip.Bool{}
	staffNonFixed := map[int][]mip.Bool{}

	for key, v := range vars {
		sa := f.ServiceAssignmentMap[key.AssignmentID]

		if sa.ServiceType == domain.ServiceFixed {
			staffFixed[key.StaffID] = append(staffFixed[key.StaffID], v)

			if sa.IsFlightZone() {
				fsk := flightStaffKey{Flight: sa.FlightNumber, StaffID: key.StaffID}
				flightStaffFixed[fsk] = append(flightStaffFixed[fsk], v)
			}

			bySvc, ok := staffServiceFixed[key.StaffID]
			if !ok {
				bySvc = map[int][]mip.Bool{}
				staffServiceFixed[key.StaffID] = bySvc
			}
			bySvc[sa.ServiceID] = append(bySvc[sa.ServiceID], v)
		} else {
			staffNonFixed[key.StaffID] = append(staffNonFixed[key.StaffID], v)
		}
	}

	// Step 1.
	for _, vs := range flightStaffFixed {
		c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
		for _, v := range vs {
			c.NewTerm(1.0, v)
		}
	}

	// Step 2: only one distinct fixed service_id per staff per day.
	for _, bySvc := range staffServiceFixed {
		var flags []mip.Bool
		for _, vs := range bySvc {
			flag := m.NewBool()
			// flag == 1 iff at least one of vs is selected; since vs are
			// binary and mutually reinforcing for the same service_id, a
			// direct big-M pair captures the "uses this service" indicator.
			geq := m.NewConstraint(mip.LessThanOrEqual, 0.0)
			geq.NewTerm(1.0, flag)
			for _, v := range vs {
				geq.NewTerm(-1.0, v)
			}
			leq := m.NewConstraint(mip.LessThanOrEqual, 0.0)
			for _, v := range vs {
				leq.NewTerm(1.0, v)
			}
			leq.NewTerm(-float64(len(vs)), flag)

			flags = append(flags, flag)
		}

		c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
		for _, flag := range flags {
			c.NewTerm(1.0, flag)
		}
	}

	// Step 3: any fixed assignment excludes every non-fixed assignment, for
	// the whole day, for that staff member.
	for staffID, fixedVars := range staffFixed {
		nonFixedVars, ok := staffNonFixed[staffID]
		if !ok || len(nonFixedVars) == 0 {
			continue
		}

		fixedSelected := m.NewBool()
		geq := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		geq.NewTerm(1.0, fixedSelected)
		for _, v := range fixedVars {
			geq.NewTerm(-1.0, v)
		}
		leq := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		for _, v := range fixedVars {
			leq.NewTerm(1.0, v)
		}
		leq.NewTerm(-float64(len(fixedVars)), fixedSelected)

		for _, nfv := range nonFixedVars {
			c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
			c.NewTerm(1.0, fixedSelected)
			c.NewTerm(1.0, nfv)
		}
	}
}
