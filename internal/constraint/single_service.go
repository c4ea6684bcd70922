package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// SingleService enforces Single (S) service rules, flight-zone only:
//  1. a staff member holds at most one S service per flight;
//  2. holding an S service on a flight excludes any other service on that
//     same flight.
//
// Common-zone S/F exclusivity is already covered by Transition, so this
// constraint is skipped for assignments with no flight number.
type SingleService struct {
	ServiceAssignmentMap domain.ServiceAssignmentMap
	Log                  zerolog.Logger
}

type flightStaffKey struct {
	Flight  string
	StaffID int
}

func (s SingleService) Apply(m mip.Model, vars Vars) {
	s.Log.Debug().Msg("applying single service constraint")

	grouped := map[flightStaffKey]*struct {
		s     []mip.Bool
		other []mip.Bool
	}{}

	for key, v := range vars {
		sa := s.ServiceAssignmentMap[key.AssignmentID]
		if !sa.IsFlightZone() {
			continue
		}
		fsk := flightStaffKey{Flight: sa.FlightNumber, StaffID: key.StaffID}
		g, ok := grouped[fsk]
		if !ok {
			g = &struct {
				s     []mip.Bool
				other []mip.Bool
			}{}
			grouped[fsk] = g
		}
		if sa.ServiceType == domain.ServiceSingle {
			g.s = append(g.s, v)
		} else {
			g.other = append(g.other, v)
		}
	}

	for _, g := range grouped {
		if len(g.s) == 0 {
			continue
		}

		sSum := m.NewConstraint(mip.LessThanOrEqual, 1.0)
		for _, v := range g.s {
			sSum.NewTerm(1.0, v)
		}

		if len(g.other) == 0 {
			continue
		}

		hasS := m.NewBool()

		// sum(s) is already bounded to {0,1} by sSum above, so hasS tracks it
		// exactly via equality rather than a big-M pair.
		eq := m.NewConstraint(mip.Equal, 0.0)
		eq.NewTerm(1.0, hasS)
		for _, v := range g.s {
			eq.NewTerm(-1.0, v)
		}

		// hasS => sum(other) == 0
		for _, v := range g.other {
			c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
			c.NewTerm(1.0, hasS)
			c.NewTerm(1.0, v)
		}
	}
}
