// Package strategy implements the objective functions the scheduler
// maximizes, one per spec.md assignment strategy.
package strategy

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/constraint"
)

// Strategy sets the objective on an already-constrained model.
type Strategy interface {
	Apply(m mip.Model, vars constraint.Vars)
}

// scale truncates a float priority/factor to a ×1000 integer coefficient,
// matching the original CP-SAT model's integer-coefficient requirement.
func scale(f float64) float64 {
	return float64(int64(f * 1000))
}

// usedIndicator builds one mip.Bool per staff id that the objective can
// treat as "this staff member has at least one assignment", the MIP
// analogue of AddMaxEquality: forced to 1 by the lower bound whenever any
// of the staff's assignment variables is 1, and held at 0 by the upper
// bound otherwise.
func usedIndicator(m mip.Model, staffIDs []int, vars constraint.Vars) map[int]mip.Bool {
	used := make(map[int]mip.Bool, len(staffIDs))
	for _, id := range staffIDs {
		used[id] = m.NewBool()
	}

	for key, v := range vars {
		u, ok := used[key.StaffID]
		if !ok {
			continue
		}
		lb := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		lb.NewTerm(1.0, v)
		lb.NewTerm(-1.0, u)
	}

	upper := make(map[int]mip.Constraint, len(staffIDs))
	for id, u := range used {
		c := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		c.NewTerm(1.0, u)
		upper[id] = c
	}
	for key, v := range vars {
		c, ok := upper[key.StaffID]
		if !ok {
			continue
		}
		c.NewTerm(-1.0, v)
	}

	return used
}
