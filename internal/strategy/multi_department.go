package strategy

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/constraint"
	"github.com/opspilot/groundops-scheduler/internal/domain"
)

// MultiDepartment is TurnaroundWorkload plus a department-match boost: a
// staff member assigned within their own department scores DepartmentFactor
// times higher than a cross-department assignment. Grounded on
// multi_department_strategy.py.
type MultiDepartment struct {
	ServiceAssignmentMap domain.ServiceAssignmentMap
	StaffMap             domain.StaffMap
	DepartmentFactor     int // default 10, per the original
}

func (s MultiDepartment) Apply(m mip.Model, vars constraint.Vars) {
	factor := s.DepartmentFactor
	if factor == 0 {
		factor = 10
	}

	obj := m.Objective()
	obj.SetMaximize()

	for key, v := range vars {
		sa := s.ServiceAssignmentMap[key.AssignmentID]
		staff := s.StaffMap[key.StaffID]

		base := 100.0 - sa.Priority

		roleFactor := 1.0
		if len(sa.PriorityRoles) > 0 && staff.RoleCode != nil {
			for i, tier := range sa.PriorityRoles {
				if roleMatches(*staff.RoleCode, tier) {
					roleFactor = float64(len(sa.PriorityRoles) - i)
					break
				}
			}
		}

		departmentScore := 1.0
		if staff.DepartmentID != nil && sa.DepartmentID != nil && *staff.DepartmentID == *sa.DepartmentID {
			departmentScore = float64(factor)
		}

		combined := float64(int64(base * roleFactor * departmentScore))
		obj.NewTerm(combined, v)
	}
}
