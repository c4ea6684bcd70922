package scheduler

import (
	"context"
	"testing"

	"github.com/opspilot/groundops-scheduler/internal/allocation"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyScenario() *Scheduler {
	staff := domain.Staff{
		ID:                  1,
		Name:                "Alice",
		Shifts:              []domain.Shift{{StartTime: "06:00", EndTime: "22:00"}},
		Certifications:      map[int]struct{}{1: {}},
		EligibleForServices: map[domain.ServiceType]struct{}{domain.ServiceSingle: {}},
	}

	sa := domain.ServiceAssignment{
		ID: 1, ServiceID: 1, Priority: 1.0, StaffCount: 1, LocationID: 1,
		FlightNumber: "AA1", RelativeStart: "A-10", RelativeEnd: "D+10",
		ServiceType: domain.ServiceSingle,
	}

	return &Scheduler{
		Roster:             []domain.Staff{staff},
		Services:           []domain.Service{{ID: 1, Certifications: []int{1}, CertificationRequirement: domain.CertificationAny}},
		Flights:            []domain.Flight{{Number: "AA1", ArrivalTime: "10:00", DepartureTime: "11:00"}},
		ServiceAssignments: []domain.ServiceAssignment{sa},
		Settings:           domain.DefaultSettings(),
		LocationMap:        domain.LocationMap{1: {ID: 1}},
	}
}

func TestSchedulerRunFindsSolution(t *testing.T) {
	s := tinyScenario()
	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Found, result)

	assignments := s.GetAssignments()
	assert.Contains(t, assignments[1], 1)

	coverage := s.GetServiceCoverage()
	assert.Equal(t, 1, coverage[1])

	assert.Contains(t, s.GetAssignedStaff(1), 1)
	assert.Empty(t, s.GetPendingServiceAssignments())
}

func TestSchedulerGetAvailableStaff(t *testing.T) {
	s := tinyScenario()
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	available, err := s.GetAvailableStaff(30)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 1, available[0].Staff.ID)
}

func TestSchedulerGetAllocationPlan(t *testing.T) {
	s := tinyScenario()
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	plan := s.GetAllocationPlan(domain.LocationMap{1: {ID: 1}})
	assert.True(t, plan.GetAllocation(1, 1))
}

func TestSchedulerWithHints(t *testing.T) {
	s := tinyScenario()
	hints := allocation.NewPlan(
		domain.ServiceAssignmentMap{1: s.ServiceAssignments[0]},
		domain.ServiceMap{1: s.Services[0]},
		domain.StaffMap{1: s.Roster[0]},
		domain.FlightMap{"AA1": s.Flights[0]},
		s.LocationMap,
	)
	hints.Add(1, 1)
	s.Hints = &hints

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Found, result)
}

func TestSchedulerUnknownStrategy(t *testing.T) {
	s := tinyScenario()
	s.Settings.AssignmentStrategy = "BOGUS"

	_, err := s.Run(context.Background())
	assert.Error(t, err)
}
