package domain

import (
	"strconv"
	"strings"

	"github.com/opspilot/groundops-scheduler/internal/timeutil"
)

// Flight anchors relative service-assignment times to an arrival and a
// departure wall-clock time.
type Flight struct {
	Number        string
	ArrivalTime   string // "HH:MM"
	DepartureTime string // "HH:MM"
}

// FlightMap indexes flights by number for relative-time resolution.
type FlightMap map[string]Flight

// ServiceMinuteIntervals resolves a relative offset pair ("A±N"/"D±N")
// against this flight's anchors into one or two minute intervals: both ends
// are reduced to minutes since midnight, then split at midnight via
// timeutil.ToMinuteRanges when the window wraps.
func (f Flight) ServiceMinuteIntervals(relativeStart, relativeEnd string) ([]timeutil.Interval, error) {
	start, err := f.resolveRelative(relativeStart)
	if err != nil {
		return nil, err
	}
	end, err := f.resolveRelative(relativeEnd)
	if err != nil {
		return nil, err
	}
	start = ((start % 1440) + 1440) % 1440
	end = ((end % 1440) + 1440) % 1440
	return timeutil.ToMinuteRanges(start, end), nil
}

// resolveRelative parses "[AD][+-]N" into absolute minutes-since-midnight,
// where N is relative to this flight's arrival (A) or departure (D) time.
func (f Flight) resolveRelative(relative string) (int, error) {
	if len(relative) == 0 {
		return 0, newConfigError("ServiceAssignment", "empty relative time")
	}

	var anchor string
	switch relative[0] {
	case 'A':
		anchor = f.ArrivalTime
	case 'D':
		anchor = f.DepartureTime
	default:
		return 0, newConfigError("ServiceAssignment", "relative time %q must start with A or D", relative)
	}

	base, err := ParseClock(anchor)
	if err != nil {
		return 0, newConfigError("Flight", "invalid anchor time %q on flight %s: %v", anchor, f.Number, err)
	}

	rest := relative[1:]
	if rest == "" {
		return base, nil
	}

	sign := 1
	switch rest[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, newConfigError("ServiceAssignment", "relative time %q must have a +/- offset", relative)
	}

	n, err := strconv.Atoi(strings.TrimLeft(rest[1:], " "))
	if err != nil {
		return 0, newConfigError("ServiceAssignment", "invalid offset in relative time %q: %v", relative, err)
	}

	return base + sign*n, nil
}
