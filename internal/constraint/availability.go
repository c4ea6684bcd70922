package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// Availability forces x[s,sa] = 0 whenever the staff member's shifts do not
// fully cover every interval of the assignment.
type Availability struct {
	StaffMap             domain.StaffMap
	ServiceAssignmentMap domain.ServiceAssignmentMap
	FlightMap            domain.FlightMap
	Log                  zerolog.Logger
}

// Apply never returns an error: a relative time referencing a missing
// flight is caught earlier, at overlap-detection / variable-creation time,
// which is where spec.md §7 places that fatal configuration error.
func (a Availability) Apply(m mip.Model, vars Vars) {
	a.Log.Debug().Msg("applying availability constraint")
	for key, v := range vars {
		staff := a.StaffMap[key.StaffID]
		sa := a.ServiceAssignmentMap[key.AssignmentID]

		ivs, err := sa.MinuteIntervals(a.FlightMap)
		if err != nil {
			forbid(m, v)
			continue
		}

		available, err := staff.IsAvailableForService(ivs)
		if err != nil || !available {
			forbid(m, v)
		}
	}
}
