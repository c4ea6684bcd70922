// Package scheduler drives one department's worth of the assignment
// problem through a single mip.Model: variable creation, constraint
// application, objective selection and solving.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nextmv-io/sdk/mip"
	"github.com/opspilot/groundops-scheduler/internal/allocation"
	"github.com/opspilot/groundops-scheduler/internal/constraint"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/opspilot/groundops-scheduler/internal/overlap"
	"github.com/opspilot/groundops-scheduler/internal/strategy"
	"github.com/opspilot/groundops-scheduler/internal/timeutil"
	"github.com/rs/zerolog"
)

// phase is the scheduler's internal state machine position.
type phase int

const (
	phaseInit phase = iota
	phaseVarsCreated
	phaseConstraintsApplied
	phaseObjectiveSet
	phaseSolved
)

// Scheduler owns one mip.Model for the lifetime of a single run, built
// from one department's roster and service assignments. It is not safe to
// reuse across departments or across repeated Run calls.
type Scheduler struct {
	Roster             []domain.Staff
	Services           []domain.Service
	Flights            []domain.Flight
	ServiceAssignments []domain.ServiceAssignment
	Settings           domain.Settings
	TravelTimes        []domain.TravelTime
	LocationMap        domain.LocationMap
	DepartmentFactor   int

	// Hints carries a prior AllocationPlan; present (staff, sa) pairs get a
	// coefficient nudge in the objective rather than a true solver hint —
	// the nextmv mip SDK surface observed here exposes no AddHint
	// equivalent, unlike the CP-SAT original.
	Hints *allocation.Plan

	Log zerolog.Logger

	// SolveID correlates every log line of one Run across the scheduler,
	// overlap and constraint packages; stamped fresh at the start of Run.
	SolveID uuid.UUID

	phase phase

	staffMap             domain.StaffMap
	serviceMap           domain.ServiceMap
	flightMap            domain.FlightMap
	serviceAssignmentMap domain.ServiceAssignmentMap
	travelTimeMap        domain.TravelTimeMap
	overlapMap           map[int][]int

	model mip.Model
	vars  constraint.Vars

	status   domain.SolveStatus
	solution map[constraint.Key]bool
}

// Run drives the full state machine to completion and returns the
// collapsed Found/NotFound result.
func (s *Scheduler) Run(ctx context.Context) (domain.Result, error) {
	s.SolveID = uuid.New()
	s.Log = s.Log.With().Str("solve_id", s.SolveID.String()).Logger()

	if err := s.init(); err != nil {
		return domain.NotFound, err
	}

	s.createVariables()
	s.applyConstraints()
	if err := s.setObjective(); err != nil {
		return domain.NotFound, err
	}

	return s.solve(ctx)
}

func (s *Scheduler) init() error {
	s.staffMap = domain.StaffMap{}
	for _, staff := range s.Roster {
		s.staffMap[staff.ID] = staff
	}
	s.serviceMap = domain.ServiceMap{}
	for _, svc := range s.Services {
		s.serviceMap[svc.ID] = svc
	}
	s.flightMap = domain.FlightMap{}
	for _, f := range s.Flights {
		s.flightMap[f.Number] = f
	}
	s.serviceAssignmentMap = domain.ServiceAssignmentMap{}
	for _, sa := range s.ServiceAssignments {
		if err := sa.Validate(); err != nil {
			return err
		}
		s.serviceAssignmentMap[sa.ID] = sa
	}
	s.travelTimeMap = domain.BuildTravelTimeMap(s.TravelTimes)

	detector := overlap.Detector{
		Assignments:   s.ServiceAssignments,
		FlightMap:     s.flightMap,
		LocationMap:   s.LocationMap,
		TravelTimeMap: s.travelTimeMap,
		Settings:      s.Settings,
		Log:           s.Log,
	}
	overlapMap, err := detector.Detect()
	if err != nil {
		return err
	}
	s.overlapMap = overlapMap

	s.model = mip.NewModel()
	s.phase = phaseInit
	s.Log.Info().Msg("scheduler initialized")
	return nil
}

// createVariables builds one boolean decision variable per (staff,
// service assignment) pair, grounded on create_assignment_variables in
// scheduler.py.
func (s *Scheduler) createVariables() {
	s.vars = constraint.Vars{}
	for _, staff := range s.Roster {
		for _, sa := range s.ServiceAssignments {
			s.vars[constraint.Key{StaffID: staff.ID, AssignmentID: sa.ID}] = s.model.NewBool()
		}
	}
	s.phase = phaseVarsCreated
	s.Log.Info().Int("count", len(s.vars)).Msg("created assignment variables")
}

func (s *Scheduler) applyConstraints() {
	constraints := []constraint.Constraint{
		constraint.Certification{StaffMap: s.staffMap, ServiceAssignmentMap: s.serviceAssignmentMap, ServiceMap: s.serviceMap, Log: s.Log},
		constraint.Eligibility{StaffMap: s.staffMap, ServiceAssignmentMap: s.serviceAssignmentMap, Log: s.Log},
		constraint.StaffCount{ServiceAssignments: s.ServiceAssignments, Log: s.Log},
		constraint.Availability{StaffMap: s.staffMap, ServiceAssignmentMap: s.serviceAssignmentMap, FlightMap: s.flightMap, Log: s.Log},
		constraint.Role{StaffMap: s.staffMap, ServiceAssignmentMap: s.serviceAssignmentMap, Log: s.Log},
		constraint.Transition{Roster: s.Roster, OverlapMap: s.overlapMap, ServiceAssignmentMap: s.serviceAssignmentMap, ServiceMap: s.serviceMap, FlightMap: s.flightMap, Log: s.Log},
		constraint.SingleService{ServiceAssignmentMap: s.serviceAssignmentMap, Log: s.Log},
		constraint.FixedService{ServiceAssignmentMap: s.serviceAssignmentMap, Log: s.Log},
		constraint.MultiTaskService{ServiceAssignments: s.ServiceAssignments, Roster: s.Roster, ServiceMap: s.serviceMap, Log: s.Log},
	}

	for _, c := range constraints {
		c.Apply(s.model, s.vars)
	}
	s.phase = phaseConstraintsApplied
	s.Log.Info().Int("families", len(constraints)).Msg("applied constraints")
}

func (s *Scheduler) setObjective() error {
	strat, err := strategy.For(s.Settings.AssignmentStrategy, s.Roster, s.serviceAssignmentMap, s.staffMap, s.DepartmentFactor)
	if err != nil {
		return err
	}
	strat.Apply(s.model, s.vars)

	if s.Hints != nil {
		s.applyHintBonus()
	}

	s.phase = phaseObjectiveSet
	s.Log.Info().Str("strategy", string(s.Settings.AssignmentStrategy)).Msg("objective set")
	return nil
}

// applyHintBonus nudges the objective towards a prior allocation by adding
// a small positive coefficient to every variable the hint marks assigned,
// small enough never to override the strategy's own ordering.
func (s *Scheduler) applyHintBonus() {
	obj := s.model.Objective()
	for key, v := range s.vars {
		if s.Hints.GetAllocation(key.AssignmentID, key.StaffID) {
			obj.NewTerm(0.001, v)
		}
	}
}

func (s *Scheduler) solve(ctx context.Context) (domain.Result, error) {
	solver, err := mip.NewSolver(mip.Highs, s.model)
	if err != nil {
		return domain.NotFound, fmt.Errorf("scheduler: creating solver: %w", err)
	}

	opts := mip.SolveOptions{}
	if deadline, ok := ctx.Deadline(); ok {
		opts.Duration = time.Until(deadline)
	}

	solution, err := solver.Solve(opts)
	if err != nil {
		return domain.NotFound, fmt.Errorf("scheduler: solving: %w", err)
	}

	s.phase = phaseSolved

	switch {
	case solution.IsOptimal():
		s.status = domain.StatusOptimal
	case solution.IsSubOptimal() && solution.HasValues():
		s.status = domain.StatusFeasible
	default:
		s.status = domain.StatusInfeasible
	}

	result := domain.NotFound
	if s.status == domain.StatusOptimal || s.status == domain.StatusFeasible {
		result = domain.Found
		s.storeSolution(solution)
	}

	s.Log.Info().
		Str("status", string(s.status)).
		Str("result", string(result)).
		Msg("solve finished")

	return result, nil
}

func (s *Scheduler) storeSolution(solution mip.Solution) {
	s.solution = make(map[constraint.Key]bool, len(s.vars))
	for key, v := range s.vars {
		s.solution[key] = solution.Value(v) > 0.5
	}
}

// GetAssignments returns, for every roster member, the ids of the service
// assignments they hold (an empty slice if unused).
func (s *Scheduler) GetAssignments() map[int][]int {
	out := make(map[int][]int, len(s.Roster))
	for _, staff := range s.Roster {
		out[staff.ID] = []int{}
	}
	for key, assigned := range s.solution {
		if assigned {
			out[key.StaffID] = append(out[key.StaffID], key.AssignmentID)
		}
	}
	return out
}

// GetServiceCoverage returns how many staff hold each service assignment.
func (s *Scheduler) GetServiceCoverage() map[int]int {
	out := make(map[int]int, len(s.ServiceAssignments))
	for _, sa := range s.ServiceAssignments {
		out[sa.ID] = 0
	}
	for key, assigned := range s.solution {
		if assigned {
			out[key.AssignmentID]++
		}
	}
	return out
}

// GetAssignedStaff lists the staff ids holding the given service
// assignment.
func (s *Scheduler) GetAssignedStaff(saID int) []int {
	var out []int
	for key, assigned := range s.solution {
		if assigned && key.AssignmentID == saID {
			out = append(out, key.StaffID)
		}
	}
	return out
}

// GetPendingServiceAssignments returns assignments whose coverage fell
// short of their staff_count.
func (s *Scheduler) GetPendingServiceAssignments() []domain.ServiceAssignment {
	coverage := s.GetServiceCoverage()
	var pending []domain.ServiceAssignment
	for _, sa := range s.ServiceAssignments {
		if coverage[sa.ID] < sa.StaffCount {
			pending = append(pending, sa)
		}
	}
	return pending
}

// GetAvailableStaff returns, for each staff member, their still-free
// minute intervals of length at least travelTime, after subtracting the
// intervals of assignments actually held in the solution.
func (s *Scheduler) GetAvailableStaff(travelTime int) ([]AvailableStaff, error) {
	assignments := s.GetAssignments()

	var out []AvailableStaff
	for _, staff := range s.Roster {
		var assigned []domain.ServiceAssignment
		for _, saID := range assignments[staff.ID] {
			assigned = append(assigned, s.serviceAssignmentMap[saID])
		}

		free, err := staff.AvailableIntervals(assigned, s.flightMap)
		if err != nil {
			return nil, err
		}

		var longEnough []timeutil.Interval
		for _, iv := range free {
			if iv.End-iv.Start >= travelTime {
				longEnough = append(longEnough, iv)
			}
		}
		if len(longEnough) > 0 {
			out = append(out, AvailableStaff{Staff: staff, Intervals: longEnough})
		}
	}
	return out, nil
}

// AvailableStaff pairs a staff member with their remaining free intervals.
type AvailableStaff struct {
	Staff     domain.Staff
	Intervals []timeutil.Interval
}

// GetAllocationPlan materializes the current solution as an AllocationPlan.
// Returns an empty plan if the run did not find a solution.
func (s *Scheduler) GetAllocationPlan(locationMap domain.LocationMap) allocation.Plan {
	plan := allocation.NewPlan(s.serviceAssignmentMap, s.serviceMap, s.staffMap, s.flightMap, locationMap)
	if s.status != domain.StatusOptimal && s.status != domain.StatusFeasible {
		return plan
	}
	for key, assigned := range s.solution {
		if assigned {
			plan.Add(key.AssignmentID, key.StaffID)
		}
	}
	return plan
}
