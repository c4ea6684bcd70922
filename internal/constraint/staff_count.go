package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// StaffCount bounds the number of staff assigned to each service assignment
// by its required headcount. Under-coverage is allowed (upper bound only).
type StaffCount struct {
	ServiceAssignments []domain.ServiceAssignment
	Log                zerolog.Logger
}

func (s StaffCount) Apply(m mip.Model, vars Vars) {
	s.Log.Debug().Msg("applying staff count constraint")
	for _, sa := range s.ServiceAssignments {
		c := m.NewConstraint(mip.LessThanOrEqual, float64(sa.StaffCount))
		for key, v := range vars {
			if key.AssignmentID == sa.ID {
				c.NewTerm(1.0, v)
			}
		}
	}
}
