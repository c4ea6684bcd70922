package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// Eligibility forces x[s,sa] = 0 whenever the assignment's service type is
// not in the staff member's eligible set.
type Eligibility struct {
	StaffMap             domain.StaffMap
	ServiceAssignmentMap domain.ServiceAssignmentMap
	Log                  zerolog.Logger
}

func (e Eligibility) Apply(m mip.Model, vars Vars) {
	e.Log.Debug().Msg("applying eligibility constraint")
	for key, v := range vars {
		staff := e.StaffMap[key.StaffID]
		sa := e.ServiceAssignmentMap[key.AssignmentID]

		if !staff.IsEligibleForService(sa) {
			forbid(m, v)
		}
	}
}
