package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opspilot/groundops-scheduler/internal/timeutil"
)

// Shift is a wall-clock working window for a staff member. EndTime <=
// StartTime means the shift wraps across midnight.
type Shift struct {
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// MinuteIntervals resolves the shift to one or two minute intervals via
// timeutil.ToMinuteRanges.
func (s Shift) MinuteIntervals() ([]timeutil.Interval, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return nil, newConfigError("Shift", "invalid start_time %q: %v", s.StartTime, err)
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return nil, newConfigError("Shift", "invalid end_time %q: %v", s.EndTime, err)
	}
	return timeutil.ToMinuteRanges(start, end), nil
}

// ParseClock parses an "HH:MM" wall-clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return h*60 + m, nil
}

// FormatMinutes renders minutes-since-midnight (possibly >= 1440 from a
// wrapped interval) back to "HH:MM", per allocation_plan.py's
// _format_minutes_to_time_str.
func FormatMinutes(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ShiftsFromIntervals converts available minute intervals back into Shift
// values, taking hours modulo 24 — used by the multi-department orchestrator
// to rebuild a lending staff member's shifts from their remaining free time.
func ShiftsFromIntervals(intervals []timeutil.Interval) []Shift {
	shifts := make([]Shift, 0, len(intervals))
	for _, iv := range intervals {
		shifts = append(shifts, Shift{
			StartTime: FormatMinutes(iv.Start),
			EndTime:   FormatMinutes(iv.End),
		})
	}
	return shifts
}
