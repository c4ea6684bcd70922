package allocation

import (
	"testing"

	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePlan() Plan {
	sam := domain.ServiceAssignmentMap{
		1: {ID: 1, ServiceID: 1, FlightNumber: "AA1", RelativeStart: "A-10", RelativeEnd: "D+10", Priority: 2.5, LocationID: 1},
		2: {ID: 2, ServiceID: 2, StartTime: "08:00", EndTime: "09:00", Priority: 5.0, LocationID: 2},
	}
	sm := domain.ServiceMap{
		1: {ID: 1, Name: "Baggage"},
		2: {ID: 2, Name: "Check-in"},
	}
	stm := domain.StaffMap{
		1: {ID: 1, Name: "Alice"},
		2: {ID: 2, Name: "Bob"},
	}
	fm := domain.FlightMap{
		"AA1": {Number: "AA1", ArrivalTime: "10:00", DepartureTime: "11:00"},
	}

	p := NewPlan(sam, sm, stm, fm, domain.LocationMap{})
	p.Add(1, 1)
	p.Add(2, 2)
	return p
}

func TestPlanAddAndGetAllocation(t *testing.T) {
	p := fixturePlan()
	assert.True(t, p.GetAllocation(1, 1))
	assert.False(t, p.GetAllocation(1, 2))
}

func TestPlanRemoveAllocation(t *testing.T) {
	p := fixturePlan()
	p.RemoveAllocation(1, 1)
	assert.False(t, p.GetAllocation(1, 1))
}

func TestPlanRemoveStaff(t *testing.T) {
	p := fixturePlan()
	p.Add(2, 1)
	p.RemoveStaff(1)
	assert.False(t, p.GetAllocation(1, 1))
	assert.False(t, p.GetAllocation(2, 1))
	assert.True(t, p.GetAllocation(2, 2))
}

func TestPlanRemoveFlight(t *testing.T) {
	p := fixturePlan()
	p.RemoveFlight("AA1")
	assert.False(t, p.GetAllocation(1, 1))
	assert.True(t, p.GetAllocation(2, 2))
}

func TestPlanSerializeDeserialize(t *testing.T) {
	p := fixturePlan()
	data, err := p.Serialize()
	require.NoError(t, err)

	restored := NewPlan(p.serviceAssignmentMap, p.serviceMap, p.staffMap, p.flightMap, p.locationMap)
	require.NoError(t, restored.Deserialize(data))

	assert.True(t, restored.GetAllocation(1, 1))
	assert.True(t, restored.GetAllocation(2, 2))
}

func TestStaffSchedule(t *testing.T) {
	p := fixturePlan()
	sched, err := p.StaffSchedule()
	require.NoError(t, err)

	require.Len(t, sched[1], 1)
	entry := sched[1][0]
	assert.Equal(t, "Baggage", entry.ServiceName)
	assert.Equal(t, 2, *entry.FlightPriority)
	assert.Equal(t, 5, entry.ServicePriority)

	require.Len(t, sched[2], 1)
	assert.Equal(t, 5, sched[2][0].ServicePriority)
	assert.Nil(t, sched[2][0].FlightPriority)
}

func TestFlightZoneAndCommonZoneSchedules(t *testing.T) {
	p := fixturePlan()

	fz, err := p.FlightZoneServicesSchedule()
	require.NoError(t, err)
	assert.Len(t, fz["AA1"], 1)

	cz, err := p.CommonZoneServicesSchedule()
	require.NoError(t, err)
	assert.Len(t, cz[2], 1)
}
