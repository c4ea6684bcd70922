// Package constraint implements the self-contained constraint families that
// reduce the scheduling problem to clauses on the CP/MIP model: each
// constraint is a value object holding references into the shared lookup
// maps and exposing Apply(model, vars).
package constraint

import (
	"github.com/nextmv-io/sdk/mip"
)

// Key identifies one staff/service-assignment decision variable.
type Key struct {
	StaffID      int
	AssignmentID int
}

// Vars is the decision-variable matrix x[staff_id, sa_id] in {0,1}.
type Vars map[Key]mip.Bool

// Get looks up the variable for a staff/assignment pair.
func (v Vars) Get(staffID, saID int) (mip.Bool, bool) {
	b, ok := v[Key{StaffID: staffID, AssignmentID: saID}]
	return b, ok
}

// Constraint is the common shape every constraint family implements.
type Constraint interface {
	Apply(m mip.Model, vars Vars)
}
