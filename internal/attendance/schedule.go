package attendance

import (
	"fmt"
	"time"

	"go-hrportal/internal/config"
)

// Schedule is the working shift used to decide PRESENT or LATE and which
// calendar day a clock-in belongs to.
type Schedule struct {
	startHour   int
	startMinute int
	grace       time.Duration
	loc         *time.Location
}

func NewSchedule(cfg config.ShiftConfig) (Schedule, error) {
	start, err := time.Parse("15:04", cfg.Start)
	if err != nil {
		return Schedule{}, fmt.Errorf("parse shift start %q: %w", cfg.Start, err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Schedule{}, fmt.Errorf("load shift timezone %q: %w", cfg.Timezone, err)
	}
	return Schedule{
		startHour:   start.Hour(),
		startMinute: start.Minute(),
		grace:       time.Duration(cfg.GraceMinutes) * time.Minute,
		loc:         loc,
	}, nil
}

func (s Schedule) location() *time.Location {
	if s.loc == nil {
		return time.UTC
	}
	return s.loc
}

// Date returns the shift day of t as midnight UTC, which is how the date
// column is written.
func (s Schedule) Date(t time.Time) time.Time {
	y, m, d := t.In(s.location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Status is LATE from the minute after shift start plus grace. With a 09:00
// start and 15 minutes grace, 09:15:59 is still PRESENT.
func (s Schedule) Status(t time.Time) string {
	local := t.In(s.location())
	y, m, d := local.Date()
	deadline := time.Date(y, m, d, s.startHour, s.startMinute, 0, 0, s.location()).Add(s.grace)
	if local.After(deadline.Add(time.Minute - time.Nanosecond)) {
		return StatusLate
	}
	return StatusPresent
}
