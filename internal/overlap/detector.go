// Package overlap builds the pairwise conflict map between service
// assignments, under travel-time and buffer adjustments.
package overlap

import (
	"sort"

	"github.com/opspilot/groundops-scheduler/internal/domain"
	"github.com/opspilot/groundops-scheduler/internal/timeutil"
	"github.com/rs/zerolog"
)

// Detector computes the directed overlap map described in spec.md §4.3.
type Detector struct {
	Assignments   []domain.ServiceAssignment
	FlightMap     domain.FlightMap
	LocationMap   domain.LocationMap
	TravelTimeMap domain.TravelTimeMap
	Settings      domain.Settings
	Log           zerolog.Logger
}

type resolved struct {
	sa        domain.ServiceAssignment
	intervals []timeutil.Interval
}

// Detect returns overlap_map: sa_id -> list of conflicting later sa_ids.
// Conflict is recorded only on the earlier assignment by start time; the
// scheduler's transition constraint treats the edge symmetrically.
func (d Detector) Detect() (map[int][]int, error) {
	resolvedAssignments := make([]resolved, 0, len(d.Assignments))
	for _, sa := range d.Assignments {
		ivs, err := sa.MinuteIntervals(d.FlightMap)
		if err != nil {
			return nil, err
		}
		resolvedAssignments = append(resolvedAssignments, resolved{sa: sa, intervals: ivs})
	}

	sort.SliceStable(resolvedAssignments, func(i, j int) bool {
		return firstStart(resolvedAssignments[i].intervals) < firstStart(resolvedAssignments[j].intervals)
	})

	overlapMap := make(map[int][]int)

	for i, a := range resolvedAssignments {
		for j := i + 1; j < len(resolvedAssignments); j++ {
			b := resolvedAssignments[j]

			if a.sa.IsFlightZone() && b.sa.IsFlightZone() && a.sa.FlightNumber == b.sa.FlightNumber {
				continue
			}

			travel := d.travelMinutes(a.sa, b.sa)
			minGap := travel - d.Settings.OverlapBufferMinutes
			if minGap < 0 {
				minGap = 0
			}

			extendedA := extend(a.intervals, minGap)
			if timeutil.HasOverlap(extendedA, b.intervals) {
				overlapMap[a.sa.ID] = append(overlapMap[a.sa.ID], b.sa.ID)
				d.Log.Debug().Int("a", a.sa.ID).Int("b", b.sa.ID).Msg("overlap detected")
			}
		}
	}

	return overlapMap, nil
}

// travelMinutes resolves the travel time between two assignments' locations,
// preferring the parent-location pair when both locations have a parent, and
// falling back to the configured default on any lookup miss.
func (d Detector) travelMinutes(a, b domain.ServiceAssignment) int {
	locA, okA := d.LocationMap[a.LocationID]
	locB, okB := d.LocationMap[b.LocationID]
	if !okA || !okB {
		return d.Settings.DefaultTravelTime
	}

	originID, destID := locA.ID, locB.ID
	if locA.ParentID != nil && locB.ParentID != nil {
		originID, destID = *locA.ParentID, *locB.ParentID
	}

	if t, ok := d.TravelTimeMap[domain.TravelTimeKey{Origin: originID, Destination: destID}]; ok {
		return t
	}
	return d.Settings.DefaultTravelTime
}

func firstStart(ivs []timeutil.Interval) int {
	if len(ivs) == 0 {
		return 0
	}
	return ivs[0].Start
}

func extend(ivs []timeutil.Interval, minutes int) []timeutil.Interval {
	out := make([]timeutil.Interval, len(ivs))
	for i, iv := range ivs {
		out[i] = timeutil.Interval{Start: iv.Start, End: iv.End + minutes}
	}
	return out
}
