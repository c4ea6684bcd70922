package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// MultiTaskService enforces the MultiTask (M) family on flight-zone
// assignments:
//   - two mutually exclusive services (via ExcludeServices) cannot both be
//     held by the same staff member on the same flight;
//   - the count of multi-task services held by a staff member on a single
//     flight, restricted to services compatible with each other, cannot
//     exceed that service's multi_task_limit.
type MultiTaskService struct {
	ServiceAssignments []domain.ServiceAssignment
	Roster             []domain.Staff
	ServiceMap         domain.ServiceMap
	Log                zerolog.Logger
}

func (ms MultiTaskService) Apply(m mip.Model, vars Vars) {
	ms.Log.Debug().Msg("applying multi task service constraint")

	byFlight := map[string][]domain.ServiceAssignment{}
	for _, sa := range ms.ServiceAssignments {
		if sa.ServiceType == domain.ServiceMultiTask && sa.IsFlightZone() {
			byFlight[sa.FlightNumber] = append(byFlight[sa.FlightNumber], sa)
		}
	}

	for _, staff := range ms.Roster {
		for _, flightServices := range byFlight {
			var staffServices []domain.ServiceAssignment
			staffVars := map[int]mip.Bool{}

			for _, sa := range flightServices {
				v, ok := vars.Get(staff.ID, sa.ID)
				if !ok {
					continue
				}
				service := ms.ServiceMap[sa.ServiceID]
				if !staff.IsCertifiedForService(service) || !staff.IsEligibleForService(sa) {
					continue
				}
				staffServices = append(staffServices, sa)
				staffVars[sa.ID] = v
			}

			if len(staffServices) == 0 {
				continue
			}

			ms.applyExclusion(m, staffServices, staffVars)
			ms.applyLimit(m, staffServices, staffVars)
		}
	}
}

func (ms MultiTaskService) applyExclusion(m mip.Model, staffServices []domain.ServiceAssignment, staffVars map[int]mip.Bool) {
	for i := 0; i < len(staffServices); i++ {
		sa1 := staffServices[i]
		for j := i + 1; j < len(staffServices); j++ {
			sa2 := staffServices[j]
			if excludes(sa1, sa2) {
				c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
				c.NewTerm(1.0, staffVars[sa1.ID])
				c.NewTerm(1.0, staffVars[sa2.ID])
			}
		}
	}
}

func (ms MultiTaskService) applyLimit(m mip.Model, staffServices []domain.ServiceAssignment, staffVars map[int]mip.Bool) {
	for _, sa := range staffServices {
		if sa.MultiTaskLimit == nil {
			continue
		}

		c := m.NewConstraint(mip.LessThanOrEqual, float64(*sa.MultiTaskLimit))
		c.NewTerm(1.0, staffVars[sa.ID])
		for _, other := range staffServices {
			if other.ID == sa.ID {
				continue
			}
			if excludes(sa, other) {
				continue
			}
			c.NewTerm(1.0, staffVars[other.ID])
		}
	}
}

func excludes(a, b domain.ServiceAssignment) bool {
	if _, ok := a.ExcludeServices[b.ServiceID]; ok {
		return true
	}
	_, ok := b.ExcludeServices[a.ServiceID]
	return ok
}
