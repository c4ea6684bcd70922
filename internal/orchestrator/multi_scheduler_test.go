package orchestrator

import (
	"context"
	"testing"

	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffFixture(id int, certs ...int) domain.Staff {
	certSet := map[int]struct{}{}
	for _, c := range certs {
		certSet[c] = struct{}{}
	}
	return domain.Staff{
		ID:                  id,
		Name:                "staff",
		Shifts:              []domain.Shift{{StartTime: "06:00", EndTime: "22:00"}},
		Certifications:      certSet,
		EligibleForServices: map[domain.ServiceType]struct{}{domain.ServiceSingle: {}},
	}
}

func TestMultiSchedulerSingleDepartment(t *testing.T) {
	dept := &Department{
		Department: domain.Department{
			ID: 1, Name: "Ramp",
			Roster: []domain.Staff{staffFixture(1, 1)},
			ServiceAssignments: []domain.ServiceAssignment{
				{ID: 1, ServiceID: 1, Priority: 1.0, StaffCount: 1, LocationID: 1, FlightNumber: "AA1", RelativeStart: "A-10", RelativeEnd: "D+10", ServiceType: domain.ServiceSingle},
			},
		},
	}

	ms := &MultiScheduler{
		Departments: []*Department{dept},
		Services:    []domain.Service{{ID: 1, Certifications: []int{1}, CertificationRequirement: domain.CertificationAny}},
		Flights:     []domain.Flight{{Number: "AA1", ArrivalTime: "10:00", DepartureTime: "11:00"}},
		Settings:    domain.DefaultSettings(),
		LocationMap: domain.LocationMap{1: {ID: 1}},
	}

	result, err := ms.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Found, result)
	assert.True(t, dept.AllocationPlan.GetAllocation(1, 1))
}

func TestMultiSchedulerCrossLend(t *testing.T) {
	deptA := &Department{
		Department: domain.Department{
			ID: 1, Name: "Ramp",
			Roster: []domain.Staff{staffFixture(1, 1)},
			ServiceAssignments: []domain.ServiceAssignment{
				{ID: 1, ServiceID: 1, Priority: 1.0, StaffCount: 2, LocationID: 1, FlightNumber: "AA1", RelativeStart: "A-10", RelativeEnd: "D+10", ServiceType: domain.ServiceSingle},
			},
		},
	}
	deptB := &Department{
		Department: domain.Department{
			ID: 2, Name: "Cabin",
			Roster: []domain.Staff{staffFixture(2, 1)},
			ServiceAssignments: []domain.ServiceAssignment{
				{ID: 2, ServiceID: 1, Priority: 1.0, StaffCount: 1, LocationID: 1, FlightNumber: "BB2", RelativeStart: "A-5", RelativeEnd: "D+5", ServiceType: domain.ServiceSingle},
			},
		},
	}

	ms := &MultiScheduler{
		Departments: []*Department{deptA, deptB},
		Services:    []domain.Service{{ID: 1, Certifications: []int{1}, CertificationRequirement: domain.CertificationAny}},
		Flights: []domain.Flight{
			{Number: "AA1", ArrivalTime: "10:00", DepartureTime: "11:00"},
			{Number: "BB2", ArrivalTime: "07:00", DepartureTime: "07:30"},
		},
		Settings:    domain.DefaultSettings(),
		LocationMap: domain.LocationMap{1: {ID: 1}},
	}

	result, err := ms.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Found, result)
}
