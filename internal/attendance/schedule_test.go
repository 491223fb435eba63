package attendance

import (
	"testing"
	"time"

	"go-hrportal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jakartaSchedule(t *testing.T) Schedule {
	t.Helper()
	s, err := NewSchedule(config.ShiftConfig{Start: "09:00", GraceMinutes: 15, Timezone: "Asia/Jakarta"})
	require.NoError(t, err)
	return s
}

func TestSchedule_Status(t *testing.T) {
	s := jakartaSchedule(t)

	// WIB = UTC+7
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "early", at: time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC), want: StatusPresent},
		{name: "exact start", at: time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC), want: StatusPresent},
		{name: "last grace second", at: time.Date(2026, 3, 2, 2, 15, 59, 0, time.UTC), want: StatusPresent},
		{name: "first late minute", at: time.Date(2026, 3, 2, 2, 16, 0, 0, time.UTC), want: StatusLate},
		{name: "afternoon", at: time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC), want: StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Status(tt.at))
		})
	}
}

func TestSchedule_DateUsesShiftTimezone(t *testing.T) {
	s := jakartaSchedule(t)

	// 2 Maret 23:30 UTC sudah 3 Maret di Jakarta
	got := s.Date(time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestNewSchedule_Invalid(t *testing.T) {
	_, err := NewSchedule(config.ShiftConfig{Start: "9am", Timezone: "UTC"})
	assert.Error(t, err)

	_, err = NewSchedule(config.ShiftConfig{Start: "09:00", Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}
