// Package orchestrator runs the scheduler across multiple departments,
// cross-lending idle staff between exactly two departments in a second
// pass. Grounded on core/multi_scheduler.py.
package orchestrator

import (
	"github.com/opspilot/groundops-scheduler/internal/allocation"
	"github.com/opspilot/groundops-scheduler/internal/domain"
)

// Department wraps domain.Department with the mutable fields a scheduler
// run populates between orchestration passes. Kept out of domain.Department
// itself to avoid an import cycle (allocation depends on domain).
type Department struct {
	domain.Department

	AllocationPlan     allocation.Plan
	PendingAssignments []domain.ServiceAssignment
	AvailableStaff     []domain.Staff
}
