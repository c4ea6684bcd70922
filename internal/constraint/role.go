package constraint

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/rs/zerolog"
)

// Role forces x[s,sa] = 0 whenever the assignment names preferred role
// codes and the staff member's role does not appear in any tier.
type Role struct {
	StaffMap             domain.StaffMap
	ServiceAssignmentMap domain.ServiceAssignmentMap
	Log                  zerolog.Logger
}

func (r Role) Apply(m mip.Model, vars Vars) {
	r.Log.Debug().Msg("applying role constraint")
	for key, v := range vars {
		staff := r.StaffMap[key.StaffID]
		sa := r.ServiceAssignmentMap[key.AssignmentID]

		if len(sa.PriorityRoles) == 0 {
			continue
		}
		if staff.RoleCode == nil {
			forbid(m, v)
			continue
		}
		if !roleMatches(*staff.RoleCode, sa.PriorityRoles) {
			forbid(m, v)
		}
	}
}

// roleMatches reports whether role appears in any tier, tier order not
// considered: a match in any tier is acceptable.
func roleMatches(role string, tiers [][]string) bool {
	for _, tier := range tiers {
		for _, code := range tier {
			if code == role {
				return true
			}
		}
	}
	return false
}
