package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestFlightServiceMinuteIntervals(t *testing.T) {
	f := Flight{Number: "AA1", ArrivalTime: "10:00", DepartureTime: "11:00"}

	ivs, err := f.ServiceMinuteIntervals("A-10", "D+10")
	require.NoError(t, err)
	assert.Equal(t, 590, ivs[0].Start) // 10:00 - 10 = 590
	assert.Equal(t, 670, ivs[0].End)   // 11:00 + 10 = 670

	_, err = f.ServiceMinuteIntervals("X+10", "D+10")
	assert.Error(t, err)
}

func TestServiceAssignmentValidate(t *testing.T) {
	valid := ServiceAssignment{
		ID: 1, ServiceID: 1, Priority: 1.0, StaffCount: 1, LocationID: 1,
		FlightNumber: "AA1", RelativeStart: "A-10", RelativeEnd: "D+10",
		ServiceType: ServiceSingle,
	}
	assert.NoError(t, valid.Validate())

	bothTimes := valid
	bothTimes.StartTime, bothTimes.EndTime = "08:00", "09:00"
	assert.Error(t, bothTimes.Validate())

	neitherTimes := ServiceAssignment{ID: 2, ServiceType: ServiceSingle}
	assert.Error(t, neitherTimes.Validate())

	multiMissingLimit := valid
	multiMissingLimit.ServiceType = ServiceMultiTask
	assert.Error(t, multiMissingLimit.Validate())

	multiNotFlight := ServiceAssignment{
		ID: 3, ServiceID: 1, StaffCount: 1, LocationID: 1,
		StartTime: "08:00", EndTime: "09:00",
		ServiceType: ServiceMultiTask, MultiTaskLimit: intPtr(2),
	}
	assert.Error(t, multiNotFlight.Validate())

	excludeOnSingle := valid
	excludeOnSingle.ExcludeServices = map[int]struct{}{5: {}}
	assert.Error(t, excludeOnSingle.Validate())

	mismatchedEquip := valid
	equipType := "cart"
	mismatchedEquip.EquipmentType = &equipType
	assert.Error(t, mismatchedEquip.Validate())
}

func TestServiceAssignmentMinuteIntervalsMissingFlight(t *testing.T) {
	sa := ServiceAssignment{
		ID: 1, FlightNumber: "ZZ9", RelativeStart: "A+0", RelativeEnd: "D+0",
		ServiceType: ServiceSingle,
	}
	_, err := sa.MinuteIntervals(FlightMap{})
	assert.Error(t, err)
}

func TestStaffIsAvailableForServiceScenario1(t *testing.T) {
	staff := Staff{
		ID: 1, Shifts: []Shift{{StartTime: "08:00", EndTime: "20:00"}},
		Certifications:      map[int]struct{}{1: {}},
		EligibleForServices: map[ServiceType]struct{}{ServiceSingle: {}},
	}
	service := Service{ID: 1, Certifications: []int{1}, CertificationRequirement: CertificationAny}
	flight := Flight{Number: "AA1", ArrivalTime: "10:00", DepartureTime: "11:00"}
	sa := ServiceAssignment{
		ID: 1, ServiceID: 1, Priority: 1.0, StaffCount: 1, LocationID: 1,
		FlightNumber: "AA1", RelativeStart: "A-10", RelativeEnd: "D+10",
		ServiceType: ServiceSingle,
	}

	ivs, err := sa.MinuteIntervals(FlightMap{"AA1": flight})
	require.NoError(t, err)

	ok, err := staff.CanPerformService(service, ivs, sa)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStaffMissingCertification(t *testing.T) {
	staff := Staff{
		ID: 1, Shifts: []Shift{{StartTime: "08:00", EndTime: "20:00"}},
		Certifications:      map[int]struct{}{1: {}},
		EligibleForServices: map[ServiceType]struct{}{ServiceSingle: {}},
	}
	service := Service{ID: 1, Certifications: []int{2}, CertificationRequirement: CertificationAny}
	assert.False(t, staff.IsCertifiedForService(service))
}

func TestShiftWrapAroundAvailability(t *testing.T) {
	staff := Staff{Shifts: []Shift{{StartTime: "22:00", EndTime: "06:00"}}}
	// 22:00 - 00:30 service window.
	serviceIvs, err := (Flight{ArrivalTime: "22:00", DepartureTime: "22:00"}).ServiceMinuteIntervals("A+0", "D+150")
	require.NoError(t, err)

	ok, err := staff.IsAvailableForService(serviceIvs)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateLocationsDetectsCycle(t *testing.T) {
	locs := []Location{
		{ID: 1, ParentID: intPtr(2)},
		{ID: 2, ParentID: intPtr(1)},
	}
	assert.Error(t, ValidateLocations(locs))
}

func TestValidateLocationsDanglingParent(t *testing.T) {
	locs := []Location{{ID: 1, ParentID: intPtr(99)}}
	assert.Error(t, ValidateLocations(locs))
}
