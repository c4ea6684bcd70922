package strategy

import (
	"testing"

	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/constraint"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func buildVars(m mip.Model, pairs []constraint.Key) constraint.Vars {
	vars := constraint.Vars{}
	for _, k := range pairs {
		vars[k] = m.NewBool()
	}
	return vars
}

func TestCombinedPriorityRoleScoreRoleMatch(t *testing.T) {
	sa := domain.ServiceAssignment{Priority: 1.5, PriorityRoles: [][]string{{"LEAD"}, {"JUNIOR"}}}
	staff := domain.Staff{RoleCode: strPtr("JUNIOR")}

	score := combinedPriorityRoleScore(sa, staff)
	assert.Equal(t, float64(int64((100.0-1.5)*1.0)), score)
}

func strPtr(s string) *string { return &s }

func TestMinimizeStaffApplyDoesNotPanic(t *testing.T) {
	m := mip.NewModel()
	vars := buildVars(m, []constraint.Key{{StaffID: 1, AssignmentID: 1}, {StaffID: 2, AssignmentID: 1}})

	s := MinimizeStaff{
		Roster:               []domain.Staff{{ID: 1}, {ID: 2}},
		ServiceAssignmentMap: domain.ServiceAssignmentMap{1: {ID: 1, Priority: 2.0}},
	}
	assert.NotPanics(t, func() { s.Apply(m, vars) })
}

func TestBalanceWorkloadApplyDoesNotPanic(t *testing.T) {
	m := mip.NewModel()
	vars := buildVars(m, []constraint.Key{{StaffID: 1, AssignmentID: 1}})

	s := BalanceWorkload{
		Roster:               []domain.Staff{{ID: 1, PriorityServiceID: intPtr(7)}},
		ServiceAssignmentMap: domain.ServiceAssignmentMap{1: {ID: 1, ServiceID: 7, Priority: 1.0}},
		StaffMap:             domain.StaffMap{1: {ID: 1, PriorityServiceID: intPtr(7)}},
	}
	assert.NotPanics(t, func() { s.Apply(m, vars) })
}

func TestTurnaroundWorkloadApplyDoesNotPanic(t *testing.T) {
	m := mip.NewModel()
	vars := buildVars(m, []constraint.Key{{StaffID: 1, AssignmentID: 1}})

	s := TurnaroundWorkload{
		ServiceAssignmentMap: domain.ServiceAssignmentMap{1: {ID: 1, Priority: 1.0}},
		StaffMap:             domain.StaffMap{1: {ID: 1}},
	}
	assert.NotPanics(t, func() { s.Apply(m, vars) })
}

func TestMultiDepartmentApplyDoesNotPanic(t *testing.T) {
	m := mip.NewModel()
	vars := buildVars(m, []constraint.Key{{StaffID: 1, AssignmentID: 1}})

	s := MultiDepartment{
		ServiceAssignmentMap: domain.ServiceAssignmentMap{1: {ID: 1, Priority: 1.0, DepartmentID: intPtr(1)}},
		StaffMap:             domain.StaffMap{1: {ID: 1, DepartmentID: intPtr(1)}},
	}
	assert.NotPanics(t, func() { s.Apply(m, vars) })
}

func TestForUnknownStrategy(t *testing.T) {
	_, err := For("bogus", nil, nil, nil, 0)
	require.Error(t, err)
}

func TestForKnownStrategies(t *testing.T) {
	for _, name := range []domain.AssignmentStrategy{
		domain.StrategyMinimizeStaff,
		domain.StrategyBalanceWorkload,
		domain.StrategyTurnaroundWorkload,
		domain.StrategyMultiDepartment,
	} {
		s, err := For(name, nil, nil, nil, 0)
		require.NoError(t, err)
		assert.NotNil(t, s)
	}
}
