// Package main is a thin CLI driver over the scheduler and orchestrator
// packages. It owns JSON input/output shaping only; every scheduling
// decision happens in internal/scheduler and internal/orchestrator.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/nextmv-io/sdk"
	"github.com/nextmv-io/sdk/mip"
	"github.com/nextmv-io/sdk/run"
	"github.com/nextmv-io/sdk/run/schema"
	"github.com/nextmv-io/sdk/run/statistics"
	"github.com/opspilot/groundops-scheduler/internal/allocation"
	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/opspilot/groundops-scheduler/internal/orchestrator"
	"github.com/opspilot/groundops-scheduler/internal/scheduler"
	"github.com/rs/zerolog"
)

func main() {
	err := run.CLI(solver).Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
}

// options carries the solver options, set from the command line or an
// options file by run.CLI the same way order-fulfillment-gosdk and
// shift-scheduling do. Only Solve.Duration is used, as a context deadline;
// the other solve options are not passed to the scheduler.
type options struct {
	Solve mip.SolveOptions `json:"solve,omitempty"`
}

func solver(ctx context.Context, i input, opts options) (schema.Output, error) {
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	if opts.Solve.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Solve.Duration)
		defer cancel()
	}

	locations := make([]domain.Location, len(i.Locations))
	for idx, l := range i.Locations {
		locations[idx] = l.toDomain()
	}
	if err := domain.ValidateLocations(locations); err != nil {
		return schema.Output{}, err
	}
	locationMap := make(domain.LocationMap, len(locations))
	for _, l := range locations {
		locationMap[l.ID] = l
	}

	settings := i.Settings.toDomain()
	if err := settings.Validate(); err != nil {
		return schema.Output{}, err
	}

	services := make([]domain.Service, len(i.Services))
	for idx, s := range i.Services {
		services[idx] = s.toDomain()
	}
	flights := make([]domain.Flight, len(i.Flights))
	for idx, f := range i.Flights {
		flights[idx] = f.toDomain()
	}

	if len(i.Departments) <= 1 {
		return solveSingle(ctx, i, services, flights, settings, locationMap, logger)
	}
	return solveMulti(ctx, i, services, flights, settings, locationMap, logger)
}

func solveSingle(
	ctx context.Context,
	i input,
	services []domain.Service,
	flights []domain.Flight,
	settings domain.Settings,
	locationMap domain.LocationMap,
	logger zerolog.Logger,
) (schema.Output, error) {
	var dept departmentInput
	if len(i.Departments) == 1 {
		dept = i.Departments[0]
	}

	s := &scheduler.Scheduler{
		Roster:             dept.toStaff(),
		Services:           services,
		Flights:            flights,
		ServiceAssignments: dept.toServiceAssignments(),
		Settings:           settings,
		TravelTimes:        dept.toTravelTimes(),
		LocationMap:        locationMap,
		Log:                logger,
	}

	result, err := s.Run(ctx)
	if err != nil {
		return schema.Output{}, err
	}

	plan := s.GetAllocationPlan(locationMap)
	return buildOutput(result, []namedPlan{{name: dept.Name, plan: plan}})
}

func solveMulti(
	ctx context.Context,
	i input,
	services []domain.Service,
	flights []domain.Flight,
	settings domain.Settings,
	locationMap domain.LocationMap,
	logger zerolog.Logger,
) (schema.Output, error) {
	departments := make([]*orchestrator.Department, len(i.Departments))
	for idx, d := range i.Departments {
		departments[idx] = &orchestrator.Department{
			Department: domain.Department{
				ID:                 d.ID,
				Name:               d.Name,
				Roster:             d.toStaff(),
				ServiceAssignments: d.toServiceAssignments(),
				TravelTimes:        d.toTravelTimes(),
			},
		}
	}

	ms := &orchestrator.MultiScheduler{
		Departments:      departments,
		Services:         services,
		Flights:          flights,
		Settings:         settings,
		LocationMap:      locationMap,
		DepartmentFactor: i.DepartmentFactor,
		Log:              logger,
	}

	result, err := ms.Run(ctx)
	if err != nil {
		return schema.Output{}, err
	}

	plans := make([]namedPlan, len(departments))
	for idx, d := range departments {
		plans[idx] = namedPlan{name: d.Name, plan: d.AllocationPlan}
	}
	return buildOutput(result, plans)
}

type namedPlan struct {
	name string
	plan allocation.Plan
}

func buildOutput(result domain.Result, plans []namedPlan) (schema.Output, error) {
	o := schema.Output{Version: schema.Version{Sdk: sdk.VERSION}}

	solutionOutput := solution{Status: string(result)}
	for _, np := range plans {
		serialized, err := np.plan.Serialize()
		if err != nil {
			return schema.Output{}, err
		}
		solutionOutput.Departments = append(solutionOutput.Departments, departmentSolution{
			Name:       np.name,
			Allocation: serialized,
		})
	}

	if result != domain.Found {
		return o, errors.New("no solution found")
	}

	o.Solutions = append(o.Solutions, solutionOutput)
	o.Statistics = statistics.NewStatistics()
	return o, nil
}

type solution struct {
	Status      string                `json:"status"`
	Departments []departmentSolution `json:"departments"`
}

type departmentSolution struct {
	Name       string `json:"name"`
	Allocation string `json:"allocation"`
}
