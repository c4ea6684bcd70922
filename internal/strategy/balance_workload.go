package strategy

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/constraint"
	"github.com/opspilot/groundops-scheduler/internal/domain"
)

// BalanceWorkload maximizes total assignments, then favors staff whose
// preferred service matches, lower rank level, fewer certifications, and
// slightly prefers spreading load across more staff. Grounded on
// balance_workload_strategy.py.
type BalanceWorkload struct {
	Roster               []domain.Staff
	ServiceAssignmentMap domain.ServiceAssignmentMap
	StaffMap             domain.StaffMap
}

func (s BalanceWorkload) Apply(m mip.Model, vars constraint.Vars) {
	staffIDs := make([]int, 0, len(s.Roster))
	for _, staff := range s.Roster {
		staffIDs = append(staffIDs, staff.ID)
	}
	used := usedIndicator(m, staffIDs, vars)

	obj := m.Objective()
	obj.SetMaximize()

	for key, v := range vars {
		sa := s.ServiceAssignmentMap[key.AssignmentID]
		staff := s.StaffMap[key.StaffID]

		priorityScore := -scale(sa.Priority)

		priorityMatchBonus := 0.0
		if staff.PriorityServiceID != nil && *staff.PriorityServiceID == sa.ServiceID {
			priorityMatchBonus = 1.0
		}

		rankScore := -float64(staff.RankLevel)
		certScore := -float64(len(staff.Certifications))

		combined := 10_000_000.0*priorityMatchBonus +
			10_000.0*priorityScore +
			1_000.0*rankScore +
			10.0*certScore

		obj.NewTerm(1_000_000_000.0, v)
		obj.NewTerm(combined, v)
	}

	for _, u := range used {
		obj.NewTerm(1.0, u)
	}
}
