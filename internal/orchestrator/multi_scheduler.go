package orchestrator

import (
	"context"
	"fmt"

	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/opspilot/groundops-scheduler/internal/scheduler"
	"github.com/rs/zerolog"
)

// MultiScheduler runs the scheduler once per department, then — when there
// are exactly two departments — attempts a second cross-lending pass for
// any department left with pending assignments after pass one.
type MultiScheduler struct {
	Departments      []*Department
	Services         []domain.Service
	Flights          []domain.Flight
	TravelTimes      []domain.TravelTime
	Settings         domain.Settings
	LocationMap      domain.LocationMap
	DepartmentFactor int
	Log              zerolog.Logger
}

// Run executes pass 1 for every department, stopping on the first
// NotFound, then runs pass 2 (cross-lending) when exactly two departments
// are present. A pass-2 NotFound does not downgrade the overall result —
// the original's observed behavior, left unresolved as an open question at
// the Python layer and decided here in favor of preserving pass 1's FOUND.
func (ms *MultiScheduler) Run(ctx context.Context) (domain.Result, error) {
	for _, dept := range ms.Departments {
		ms.Log.Info().Str("department", dept.Name).Msg("running pass 1")

		result, err := ms.runForDepartment(ctx, dept, dept.Roster, dept.ServiceAssignments)
		if err != nil {
			return domain.NotFound, err
		}
		if result != domain.Found {
			ms.Log.Warn().Str("department", dept.Name).Msg("scheduling failed")
			return result, nil
		}
	}

	if len(ms.Departments) == 2 {
		if err := ms.crossLend(ctx); err != nil {
			return domain.NotFound, err
		}
	}

	return domain.Found, nil
}

func (ms *MultiScheduler) crossLend(ctx context.Context) error {
	dept1, dept2 := ms.Departments[0], ms.Departments[1]

	if len(dept1.PendingAssignments) > 0 && len(dept2.AvailableStaff) > 0 {
		if err := ms.rerunWithLenders(ctx, dept1, dept2.AvailableStaff); err != nil {
			return err
		}
	}
	if len(dept2.PendingAssignments) > 0 && len(dept1.AvailableStaff) > 0 {
		if err := ms.rerunWithLenders(ctx, dept2, dept1.AvailableStaff); err != nil {
			return err
		}
	}
	return nil
}

func (ms *MultiScheduler) rerunWithLenders(ctx context.Context, dept *Department, lenders []domain.Staff) error {
	ms.Log.Info().Str("department", dept.Name).Int("lenders", len(lenders)).Msg("running pass 2 (cross-lend)")

	pending := dept.PendingAssignments
	dept.PendingAssignments = nil
	dept.Roster = lenders
	dept.ServiceAssignments = pending

	_, err := ms.runForDepartment(ctx, dept, lenders, pending)
	return err
}

// runForDepartment runs one scheduler invocation and, on success, updates
// dept's mutable fields for the next pass.
func (ms *MultiScheduler) runForDepartment(
	ctx context.Context,
	dept *Department,
	roster []domain.Staff,
	serviceAssignments []domain.ServiceAssignment,
) (domain.Result, error) {
	s := &scheduler.Scheduler{
		Roster:             roster,
		Services:           ms.Services,
		Flights:            ms.Flights,
		ServiceAssignments: serviceAssignments,
		Settings:           ms.Settings,
		TravelTimes:        dept.TravelTimes,
		LocationMap:        ms.LocationMap,
		DepartmentFactor:   ms.DepartmentFactor,
		Log:                ms.Log,
	}

	result, err := s.Run(ctx)
	if err != nil {
		return domain.NotFound, fmt.Errorf("orchestrator: department %s: %w", dept.Name, err)
	}
	if result != domain.Found {
		return result, nil
	}

	pending := s.GetPendingServiceAssignments()
	available, err := s.GetAvailableStaff(ms.Settings.DefaultTravelTime)
	if err != nil {
		return domain.NotFound, fmt.Errorf("orchestrator: department %s: %w", dept.Name, err)
	}

	lenders := make([]domain.Staff, 0, len(available))
	for _, as := range available {
		staff := as.Staff
		staff.Shifts = domain.ShiftsFromIntervals(as.Intervals)
		lenders = append(lenders, staff)
	}

	dept.AllocationPlan = s.GetAllocationPlan(ms.LocationMap)
	dept.PendingAssignments = pending
	dept.AvailableStaff = lenders

	ms.Log.Info().
		Str("department", dept.Name).
		Int("pending", len(pending)).
		Int("available_staff", len(lenders)).
		Msg("department pass complete")

	return domain.Found, nil
}
