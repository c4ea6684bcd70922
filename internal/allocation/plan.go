// Package allocation stores and serializes the positive outcome of a
// scheduler run, and projects it into the schedule views callers consume.
package allocation

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/opspilot/groundops-scheduler/internal/domain"
)

// Plan stores positive assignments only: service_assignment_id -> set of
// staff ids. Grounded on plans/allocation_plan.py.
type Plan struct {
	allocations map[int]map[int]struct{}

	serviceAssignmentMap domain.ServiceAssignmentMap
	serviceMap           domain.ServiceMap
	staffMap             domain.StaffMap
	flightMap            domain.FlightMap
	locationMap          domain.LocationMap

	flightToAssignments map[string]map[int]struct{}
}

// NewPlan builds an empty plan bound to the lookup maps needed to project
// schedule views.
func NewPlan(
	serviceAssignmentMap domain.ServiceAssignmentMap,
	serviceMap domain.ServiceMap,
	staffMap domain.StaffMap,
	flightMap domain.FlightMap,
	locationMap domain.LocationMap,
) Plan {
	p := Plan{
		allocations:          map[int]map[int]struct{}{},
		serviceAssignmentMap: serviceAssignmentMap,
		serviceMap:           serviceMap,
		staffMap:             staffMap,
		flightMap:            flightMap,
		locationMap:          locationMap,
	}
	p.rebuildFlightIndex()
	return p
}

func (p *Plan) rebuildFlightIndex() {
	p.flightToAssignments = map[string]map[int]struct{}{}
	for _, sa := range p.serviceAssignmentMap {
		if !sa.IsFlightZone() {
			continue
		}
		if _, ok := p.flightToAssignments[sa.FlightNumber]; !ok {
			p.flightToAssignments[sa.FlightNumber] = map[int]struct{}{}
		}
		p.flightToAssignments[sa.FlightNumber][sa.ID] = struct{}{}
	}
}

// Add records a positive allocation.
func (p *Plan) Add(serviceAssignmentID, staffID int) {
	if p.allocations[serviceAssignmentID] == nil {
		p.allocations[serviceAssignmentID] = map[int]struct{}{}
	}
	p.allocations[serviceAssignmentID][staffID] = struct{}{}
}

// GetAllocation reports whether staffID is assigned to serviceAssignmentID.
func (p Plan) GetAllocation(serviceAssignmentID, staffID int) bool {
	_, ok := p.allocations[serviceAssignmentID][staffID]
	return ok
}

// RemoveAllocation removes one staff member's allocation to one
// assignment, pruning the assignment entry entirely once it is empty.
func (p *Plan) RemoveAllocation(serviceAssignmentID, staffID int) {
	staffSet, ok := p.allocations[serviceAssignmentID]
	if !ok {
		return
	}
	delete(staffSet, staffID)
	if len(staffSet) == 0 {
		delete(p.allocations, serviceAssignmentID)
	}
}

// RemoveStaff removes every allocation held by staffID, across all
// assignments.
func (p *Plan) RemoveStaff(staffID int) {
	var emptied []int
	for saID, staffSet := range p.allocations {
		delete(staffSet, staffID)
		if len(staffSet) == 0 {
			emptied = append(emptied, saID)
		}
	}
	for _, saID := range emptied {
		delete(p.allocations, saID)
	}
}

// RemoveFlight removes every allocation for assignments tied to
// flightNumber.
func (p *Plan) RemoveFlight(flightNumber string) {
	saIDs, ok := p.flightToAssignments[flightNumber]
	if !ok {
		return
	}
	for saID := range saIDs {
		delete(p.allocations, saID)
	}
	delete(p.flightToAssignments, flightNumber)
}

// allocationsJSON is the serialization shape: assignment id (as string,
// matching the original's json.dumps key coercion) to sorted staff ids.
type allocationsJSON map[string][]int

// Serialize renders the plan's allocations to JSON.
func (p Plan) Serialize() (string, error) {
	out := make(allocationsJSON, len(p.allocations))
	for saID, staffSet := range p.allocations {
		ids := make([]int, 0, len(staffSet))
		for id := range staffSet {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		out[fmt.Sprint(saID)] = ids
	}
	b, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Deserialize replaces the plan's allocations from a Serialize payload and
// rebuilds the flight index.
func (p *Plan) Deserialize(data string) error {
	var raw allocationsJSON
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return err
	}

	allocations := make(map[int]map[int]struct{}, len(raw))
	for key, staffIDs := range raw {
		var saID int
		if _, err := fmt.Sscanf(key, "%d", &saID); err != nil {
			return fmt.Errorf("allocation: invalid service assignment id %q: %w", key, err)
		}
		set := make(map[int]struct{}, len(staffIDs))
		for _, id := range staffIDs {
			set[id] = struct{}{}
		}
		allocations[saID] = set
	}

	p.allocations = allocations
	p.rebuildFlightIndex()
	return nil
}
