package strategy

import (
	"fmt"

	"github.com/opspilot/groundops-scheduler/internal/domain"
)

// For builds the strategy named by the scheduler's configured
// AssignmentStrategy, wiring in the lookup maps each family needs.
func For(
	name domain.AssignmentStrategy,
	roster []domain.Staff,
	serviceAssignmentMap domain.ServiceAssignmentMap,
	staffMap domain.StaffMap,
	departmentFactor int,
) (Strategy, error) {
	switch name {
	case domain.StrategyMinimizeStaff:
		return MinimizeStaff{Roster: roster, ServiceAssignmentMap: serviceAssignmentMap}, nil
	case domain.StrategyBalanceWorkload:
		return BalanceWorkload{Roster: roster, ServiceAssignmentMap: serviceAssignmentMap, StaffMap: staffMap}, nil
	case domain.StrategyTurnaroundWorkload:
		return TurnaroundWorkload{ServiceAssignmentMap: serviceAssignmentMap, StaffMap: staffMap}, nil
	case domain.StrategyMultiDepartment:
		return MultiDepartment{ServiceAssignmentMap: serviceAssignmentMap, StaffMap: staffMap, DepartmentFactor: departmentFactor}, nil
	default:
		return nil, fmt.Errorf("strategy: unknown assignment strategy %q", name)
	}
}
