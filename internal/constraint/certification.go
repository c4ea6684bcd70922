package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// Certification forces x[s,sa] = 0 whenever the staff member is not
// certified for the assignment's service.
type Certification struct {
	StaffMap             domain.StaffMap
	ServiceAssignmentMap domain.ServiceAssignmentMap
	ServiceMap           domain.ServiceMap
	Log                  zerolog.Logger
}

func (c Certification) Apply(m mip.Model, vars Vars) {
	c.Log.Debug().Msg("applying certification constraint")
	for key, v := range vars {
		staff := c.StaffMap[key.StaffID]
		sa := c.ServiceAssignmentMap[key.AssignmentID]
		service := c.ServiceMap[sa.ServiceID]

		if !staff.IsCertifiedForService(service) {
			forbid(m, v)
		}
	}
}

// forbid pins a boolean decision variable to 0.
func forbid(m mip.Model, v mip.Bool) {
	c := m.NewConstraint(mip.Equal, 0.0)
	c.NewTerm(1.0, v)
}
