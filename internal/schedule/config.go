package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/nuwan-labs/project-buddy/internal/config"
)

// Config bundles the validated trigger specs for all recurring jobs, plus
// the timezone the scheduler evaluates them in.
type Config struct {
	Location  *time.Location
	Popup     HourlySpec
	DailyNote DailySpec
	Analysis  DailySpec
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// FromAppConfig builds and validates the schedule config at startup; any
// invalid field aborts boot rather than producing a silently wrong cron line.
func FromAppConfig(cfg *config.AppConfig) (*Config, error) {
	loc := time.Local
	if tz := cfg.SCHEDULER.Timezone; tz != "" && tz != "Local" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("unknown scheduler timezone %q: %w", tz, err)
		}
	}

	weekdays, err := ParseWeekdays(cfg.SCHEDULER.Weekdays)
	if err != nil {
		return nil, err
	}

	sc := &Config{
		Location: loc,
		Popup: HourlySpec{
			Weekdays:  weekdays,
			StartHour: cfg.SCHEDULER.PopupStartHour,
			EndHour:   cfg.SCHEDULER.PopupEndHour,
			Minute:    cfg.SCHEDULER.PopupMinute,
			Grace:     time.Duration(cfg.SCHEDULER.PopupGraceMinutes) * time.Minute,
		},
		DailyNote: DailySpec{
			Weekdays: weekdays,
			Hour:     cfg.SCHEDULER.DailyNoteHour,
			Minute:   cfg.SCHEDULER.DailyNoteMinute,
			Grace:    time.Duration(cfg.SCHEDULER.PopupGraceMinutes) * time.Minute,
		},
		Analysis: DailySpec{
			Weekdays: weekdays,
			Hour:     cfg.SCHEDULER.AnalysisHour,
			Minute:   cfg.SCHEDULER.AnalysisMinute,
			Grace:    time.Duration(cfg.SCHEDULER.AnalysisGraceMinutes) * time.Minute,
		},
	}

	if err := sc.Popup.Validate(); err != nil {
		return nil, err
	}
	if err := sc.DailyNote.Validate(); err != nil {
		return nil, err
	}
	if err := sc.Analysis.Validate(); err != nil {
		return nil, err
	}

	return sc, nil
}

// ParseWeekdays maps configured names ("mon", "tue", ...) onto time.Weekday.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in scheduler config", name)
		}
		out = append(out, d)
	}
	return out, nil
}
