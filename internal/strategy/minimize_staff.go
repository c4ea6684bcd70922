package strategy

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/constraint"
	"github.com/opspilot/groundops-scheduler/internal/domain"
)

// MinimizeStaff maximizes total assignments first, then favors services
// with a lower priority value (lower = higher priority), then minimizes the
// number of distinct staff used. Grounded on minimize_staff_strategy.py.
type MinimizeStaff struct {
	Roster               []domain.Staff
	ServiceAssignmentMap domain.ServiceAssignmentMap
}

func (s MinimizeStaff) Apply(m mip.Model, vars constraint.Vars) {
	staffIDs := make([]int, 0, len(s.Roster))
	for _, staff := range s.Roster {
		staffIDs = append(staffIDs, staff.ID)
	}
	used := usedIndicator(m, staffIDs, vars)

	obj := m.Objective()
	obj.SetMaximize()

	for key, v := range vars {
		sa := s.ServiceAssignmentMap[key.AssignmentID]
		priorityScore := -scale(sa.Priority)

		obj.NewTerm(1_000_000_000.0, v)
		obj.NewTerm(1_000.0*priorityScore, v)
	}

	for _, u := range used {
		obj.NewTerm(-1.0, u)
	}
}
