// Package schedule holds the typed job-trigger specs the worker registers
// with the cron scheduler. Cron strings are rendered from validated structs,
// never concatenated ad hoc, and every spec knows its own misfire grace
// window: an occurrence that fires later than nominal+grace is skipped.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// HourlySpec fires at a fixed minute of every hour inside a daily window, on
// a restricted set of weekdays. Used by the activity popup job.
type HourlySpec struct {
	Weekdays  []time.Weekday
	StartHour int
	EndHour   int
	Minute    int
	Grace     time.Duration
}

func (s HourlySpec) Validate() error {
	if len(s.Weekdays) == 0 {
		return fmt.Errorf("hourly spec: weekday set is empty")
	}
	if s.StartHour < 0 || s.StartHour > 23 || s.EndHour < 0 || s.EndHour > 23 {
		return fmt.Errorf("hourly spec: hours must be within 0..23, got %d..%d", s.StartHour, s.EndHour)
	}
	if s.StartHour > s.EndHour {
		return fmt.Errorf("hourly spec: start hour %d after end hour %d", s.StartHour, s.EndHour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("hourly spec: minute %d out of range", s.Minute)
	}
	if s.Grace <= 0 {
		return fmt.Errorf("hourly spec: grace window must be positive")
	}
	return nil
}

// Cron renders the spec as a five-field cron expression, e.g. "30 8-17 * * 1,2,3,4,5".
func (s HourlySpec) Cron() string {
	return fmt.Sprintf("%d %d-%d * * %s", s.Minute, s.StartHour, s.EndHour, cronWeekdays(s.Weekdays))
}

// LastFire returns the most recent nominal occurrence at or before now.
// The second return value is false when the spec has no occurrence within
// the preceding week (cannot happen for a valid spec).
func (s HourlySpec) LastFire(now time.Time) (time.Time, bool) {
	for day := 0; day < 8; day++ {
		d := now.AddDate(0, 0, -day)
		if !onWeekday(s.Weekdays, d.Weekday()) {
			continue
		}
		for hour := s.EndHour; hour >= s.StartHour; hour-- {
			candidate := time.Date(d.Year(), d.Month(), d.Day(), hour, s.Minute, 0, 0, now.Location())
			if !candidate.After(now) {
				return candidate, true
			}
		}
	}
	return time.Time{}, false
}

// Misfired reports whether a firing observed at now is beyond the grace
// window of its nominal occurrence and must be skipped.
func (s HourlySpec) Misfired(now time.Time) bool {
	last, ok := s.LastFire(now)
	if !ok {
		return true
	}
	return now.Sub(last) > s.Grace
}

// DailySpec fires once per day at a fixed time, on a restricted set of
// weekdays. Used by the daily-note prompt and analysis jobs.
type DailySpec struct {
	Weekdays []time.Weekday
	Hour     int
	Minute   int
	Grace    time.Duration
}

func (s DailySpec) Validate() error {
	if len(s.Weekdays) == 0 {
		return fmt.Errorf("daily spec: weekday set is empty")
	}
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("daily spec: hour %d out of range", s.Hour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("daily spec: minute %d out of range", s.Minute)
	}
	if s.Grace <= 0 {
		return fmt.Errorf("daily spec: grace window must be positive")
	}
	return nil
}

func (s DailySpec) Cron() string {
	return fmt.Sprintf("%d %d * * %s", s.Minute, s.Hour, cronWeekdays(s.Weekdays))
}

func (s DailySpec) LastFire(now time.Time) (time.Time, bool) {
	for day := 0; day < 8; day++ {
		d := now.AddDate(0, 0, -day)
		if !onWeekday(s.Weekdays, d.Weekday()) {
			continue
		}
		candidate := time.Date(d.Year(), d.Month(), d.Day(), s.Hour, s.Minute, 0, 0, now.Location())
		if !candidate.After(now) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

func (s DailySpec) Misfired(now time.Time) bool {
	last, ok := s.LastFire(now)
	if !ok {
		return true
	}
	return now.Sub(last) > s.Grace
}

func cronWeekdays(days []time.Weekday) string {
	nums := make([]int, 0, len(days))
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		n := int(d) // cron and time.Weekday agree: 0 = Sunday
		if !seen[n] {
			seen[n] = true
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)

	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func onWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, w := range days {
		if w == d {
			return true
		}
	}
	return false
}
