package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// Transition prevents a staff member from holding both ends of a detected
// overlap edge, restricted to staff who could actually perform each side.
type Transition struct {
	Roster               []domain.Staff
	OverlapMap           map[int][]int
	ServiceAssignmentMap domain.ServiceAssignmentMap
	ServiceMap           domain.ServiceMap
	FlightMap            domain.FlightMap
	Log                  zerolog.Logger
}

func (t Transition) Apply(m mip.Model, vars Vars) {
	t.Log.Debug().Msg("applying transition constraint")
	for _, staff := range t.Roster {
		for saIDA, conflicting := range t.OverlapMap {
			saA := t.ServiceAssignmentMap[saIDA]
			serviceA := t.ServiceMap[saA.ServiceID]
			ivsA, err := saA.MinuteIntervals(t.FlightMap)
			if err != nil {
				continue
			}
			okA, err := staff.CanPerformService(serviceA, ivsA, saA)
			if err != nil || !okA {
				continue
			}

			for _, saIDB := range conflicting {
				saB := t.ServiceAssignmentMap[saIDB]
				serviceB := t.ServiceMap[saB.ServiceID]
				ivsB, err := saB.MinuteIntervals(t.FlightMap)
				if err != nil {
					continue
				}
				okB, err := staff.CanPerformService(serviceB, ivsB, saB)
				if err != nil || !okB {
					continue
				}

				varA, hasA := vars.Get(staff.ID, saIDA)
				varB, hasB := vars.Get(staff.ID, saIDB)
				if !hasA || !hasB {
					continue
				}

				c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
				c.NewTerm(1.0, varA)
				c.NewTerm(1.0, varB)
			}
		}
	}
}
