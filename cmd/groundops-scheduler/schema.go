package main

import "github.com/opspilot/groundops-scheduler/internal/domain"

// input is the JSON wire format run.CLI decodes into. Field names are
// snake_case to match the original vendor-record shape; conversion to the
// internal/domain types happens in the toDomain()/to*() methods below.
type input struct {
	Departments      []departmentInput `json:"departments"`
	Services         []serviceInput    `json:"services"`
	Flights          []flightInput     `json:"flights"`
	Locations        []locationInput   `json:"locations"`
	Settings         settingsInput     `json:"settings"`
	DepartmentFactor int               `json:"department_factor,omitempty"`
}

type departmentInput struct {
	ID                 int                       `json:"id"`
	Name               string                    `json:"name"`
	Roster             []staffInput              `json:"roster"`
	ServiceAssignments []serviceAssignmentInput  `json:"service_assignments"`
	TravelTimes        []travelTimeInput         `json:"travel_times"`
}

func (d departmentInput) toStaff() []domain.Staff {
	out := make([]domain.Staff, len(d.Roster))
	for i, s := range d.Roster {
		out[i] = s.toDomain()
	}
	return out
}

func (d departmentInput) toServiceAssignments() []domain.ServiceAssignment {
	out := make([]domain.ServiceAssignment, len(d.ServiceAssignments))
	for i, sa := range d.ServiceAssignments {
		out[i] = sa.toDomain()
	}
	return out
}

func (d departmentInput) toTravelTimes() []domain.TravelTime {
	out := make([]domain.TravelTime, len(d.TravelTimes))
	for i, t := range d.TravelTimes {
		out[i] = t.toDomain()
	}
	return out
}

type shiftInput struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type staffInput struct {
	ID                  int          `json:"id"`
	Name                string       `json:"name"`
	DepartmentID        *int         `json:"department_id,omitempty"`
	Shifts              []shiftInput `json:"shifts"`
	Certifications      []int        `json:"certifications"`
	EligibleForServices []string     `json:"eligible_for_services"`
	PriorityServiceID   *int         `json:"priority_service_id,omitempty"`
	RankLevel           int          `json:"rank_level,omitempty"`
	RoleCode            *string      `json:"role_code,omitempty"`
}

func (s staffInput) toDomain() domain.Staff {
	shifts := make([]domain.Shift, len(s.Shifts))
	for i, sh := range s.Shifts {
		shifts[i] = domain.Shift{StartTime: sh.StartTime, EndTime: sh.EndTime}
	}

	certs := make(map[int]struct{}, len(s.Certifications))
	for _, c := range s.Certifications {
		certs[c] = struct{}{}
	}

	eligible := make(map[domain.ServiceType]struct{}, len(s.EligibleForServices))
	for _, e := range s.EligibleForServices {
		eligible[domain.ServiceType(e)] = struct{}{}
	}

	return domain.Staff{
		ID:                  s.ID,
		Name:                s.Name,
		DepartmentID:        s.DepartmentID,
		Shifts:              shifts,
		Certifications:      certs,
		EligibleForServices: eligible,
		PriorityServiceID:   s.PriorityServiceID,
		RankLevel:           s.RankLevel,
		RoleCode:            s.RoleCode,
	}
}

type serviceInput struct {
	ID                       int      `json:"id"`
	Name                     string   `json:"name"`
	Certifications           []int    `json:"certifications"`
	CertificationRequirement string   `json:"certification_requirement"`
}

func (s serviceInput) toDomain() domain.Service {
	return domain.Service{
		ID:                       s.ID,
		Name:                     s.Name,
		Certifications:           s.Certifications,
		CertificationRequirement: domain.CertificationRequirement(s.CertificationRequirement),
	}
}

type serviceAssignmentInput struct {
	ID              int        `json:"id"`
	ServiceID       int        `json:"service_id"`
	DepartmentID    *int       `json:"department_id,omitempty"`
	Priority        float64    `json:"priority"`
	StaffCount      int        `json:"staff_count"`
	LocationID      int        `json:"location_id"`
	PriorityRoles   [][]string `json:"priority_roles,omitempty"`
	ServiceType     string     `json:"service_type"`
	FlightNumber    string     `json:"flight_number,omitempty"`
	RelativeStart   string     `json:"relative_start,omitempty"`
	RelativeEnd     string     `json:"relative_end,omitempty"`
	StartTime       string     `json:"start_time,omitempty"`
	EndTime         string     `json:"end_time,omitempty"`
	MultiTaskLimit  *int       `json:"multi_task_limit,omitempty"`
	ExcludeServices []int      `json:"exclude_services,omitempty"`
	NeedsEquipment  bool       `json:"needs_equipment,omitempty"`
	EquipmentType   *string    `json:"equipment_type,omitempty"`
	EquipmentID     *int       `json:"equipment_id,omitempty"`
}

func (sa serviceAssignmentInput) toDomain() domain.ServiceAssignment {
	var exclude map[int]struct{}
	if len(sa.ExcludeServices) > 0 {
		exclude = make(map[int]struct{}, len(sa.ExcludeServices))
		for _, e := range sa.ExcludeServices {
			exclude[e] = struct{}{}
		}
	}

	return domain.ServiceAssignment{
		ID:              sa.ID,
		ServiceID:       sa.ServiceID,
		DepartmentID:    sa.DepartmentID,
		Priority:        sa.Priority,
		StaffCount:      sa.StaffCount,
		LocationID:      sa.LocationID,
		PriorityRoles:   sa.PriorityRoles,
		ServiceType:     domain.ServiceType(sa.ServiceType),
		FlightNumber:    sa.FlightNumber,
		RelativeStart:   sa.RelativeStart,
		RelativeEnd:     sa.RelativeEnd,
		StartTime:       sa.StartTime,
		EndTime:         sa.EndTime,
		MultiTaskLimit:  sa.MultiTaskLimit,
		ExcludeServices: exclude,
		NeedsEquipment:  sa.NeedsEquipment,
		EquipmentType:   sa.EquipmentType,
		EquipmentID:     sa.EquipmentID,
	}
}

type flightInput struct {
	Number        string `json:"number"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
}

func (f flightInput) toDomain() domain.Flight {
	return domain.Flight{Number: f.Number, ArrivalTime: f.ArrivalTime, DepartureTime: f.DepartureTime}
}

type travelTimeInput struct {
	OriginLocationID      int `json:"origin_location_id"`
	DestinationLocationID int `json:"destination_location_id"`
	TravelMinutes         int `json:"travel_minutes"`
}

func (t travelTimeInput) toDomain() domain.TravelTime {
	return domain.TravelTime{
		OriginLocationID:      t.OriginLocationID,
		DestinationLocationID: t.DestinationLocationID,
		TravelMinutes:         t.TravelMinutes,
	}
}

type locationInput struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type,omitempty"`
	ParentID *int    `json:"parent_id,omitempty"`
}

func (l locationInput) toDomain() domain.Location {
	return domain.Location{
		ID:       l.ID,
		Name:     l.Name,
		Type:     domain.LocationType(l.Type),
		ParentID: l.ParentID,
	}
}

type settingsInput struct {
	OverlapBufferMinutes *int   `json:"overlap_buffer_minutes,omitempty"`
	DefaultTravelTime    *int   `json:"default_travel_time,omitempty"`
	AssignmentStrategy   string `json:"assignment_strategy,omitempty"`
}

func (s settingsInput) toDomain() domain.Settings {
	out := domain.DefaultSettings()
	if s.OverlapBufferMinutes != nil {
		out.OverlapBufferMinutes = *s.OverlapBufferMinutes
	}
	if s.DefaultTravelTime != nil {
		out.DefaultTravelTime = *s.DefaultTravelTime
	}
	if s.AssignmentStrategy != "" {
		out.AssignmentStrategy = domain.AssignmentStrategy(s.AssignmentStrategy)
	}
	return out
}
