package strategy

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/constraint"
	"github.com/opspilot/groundops-scheduler/internal/domain"
)

// TurnaroundWorkload maximizes total assignments weighted by priority and
// role-tier match, with no staff-count or department preference. Grounded
// on turnaround_workload_strategy.py.
type TurnaroundWorkload struct {
	ServiceAssignmentMap domain.ServiceAssignmentMap
	StaffMap             domain.StaffMap
}

func (s TurnaroundWorkload) Apply(m mip.Model, vars constraint.Vars) {
	obj := m.Objective()
	obj.SetMaximize()

	for key, v := range vars {
		sa := s.ServiceAssignmentMap[key.AssignmentID]
		staff := s.StaffMap[key.StaffID]

		combined := combinedPriorityRoleScore(sa, staff)
		obj.NewTerm(combined, v)
	}
}

// combinedPriorityRoleScore is the base_priority_score * role_factor term
// shared by TurnaroundWorkload and MultiDepartment. Unlike MinimizeStaff
// and BalanceWorkload, this family truncates the final product to an
// integer coefficient directly, without the ×1000 priority scale: the
// priority here only ever nudges a tie within a ~100-point band.
func combinedPriorityRoleScore(sa domain.ServiceAssignment, staff domain.Staff) float64 {
	basePriorityScore := 100.0 - sa.Priority

	roleFactor := 1.0
	if len(sa.PriorityRoles) > 0 && staff.RoleCode != nil {
		for i, tier := range sa.PriorityRoles {
			if roleMatches(*staff.RoleCode, tier) {
				roleFactor = float64(len(sa.PriorityRoles) - i)
				break
			}
		}
	}

	return float64(int64(basePriorityScore * roleFactor))
}

func roleMatches(role string, tier []string) bool {
	for _, code := range tier {
		if code == role {
			return true
		}
	}
	return false
}
