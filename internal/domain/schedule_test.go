package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec       string
		wantHour   int
		wantMinute int
	}{
		{spec: "3pm", wantHour: 15},
		{spec: "12pm", wantHour: 12},
		{spec: "12am", wantHour: 0},
		{spec: "9am", wantHour: 9},
		{spec: "14:30", wantHour: 14, wantMinute: 30},
		{spec: "3 p.m.", wantHour: 15},
		{spec: " 7 AM ", wantHour: 7},
		{spec: "00:05", wantMinute: 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.spec, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTimeOfDay(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, TimeOfDay{Hour: tc.wantHour, Minute: tc.wantMinute}, got)
		})
	}
}

func TestParseTimeOfDayRejectsOtherFormats(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"", "noon", "13pm", "0am", "3", "25:00", "12:60", "3:30pm", "half past"} {
		spec := spec
		t.Run(spec, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTimeOfDay(spec)
			assert.ErrorIs(t, err, ErrInvalidTimeSpec)
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

	later := NextOccurrence(TimeOfDay{Hour: 18}, now)
	assert.Equal(t, time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC), later)

	earlier := NextOccurrence(TimeOfDay{Hour: 9, Minute: 30}, now)
	assert.Equal(t, time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC), earlier)

	same := NextOccurrence(TimeOfDay{Hour: 15}, now)
	assert.Equal(t, time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC), same)
	assert.Equal(t, 24*time.Hour, same.Sub(time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)))
}

func TestNextOccurrenceRollsOverMonthEnd(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 31, 23, 30, 0, 0, time.UTC)
	got := NextOccurrence(TimeOfDay{Hour: 8}, now)
	assert.Equal(t, time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC), got)
}

func TestParseReminder(t *testing.T) {
	t.Parallel()

	task, spec, err := ParseReminder("to call mom at 3pm")
	require.NoError(t, err)
	assert.Equal(t, "to call mom", task)
	assert.Equal(t, "3pm", spec)

	task, spec, err = ParseReminder("feed the cat at 18:45")
	require.NoError(t, err)
	assert.Equal(t, "feed the cat", task)
	assert.Equal(t, "18:45", spec)
}

func TestParseReminderRejectsAmbiguousSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reminder string
	}{
		{name: "missing separator", reminder: "call mom tomorrow"},
		{name: "separator twice", reminder: "meet at the office at 3pm"},
		{name: "nothing before", reminder: "at 3pm"},
		{name: "nothing after", reminder: "call mom at"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := ParseReminder(tc.reminder)
			assert.ErrorIs(t, err, ErrMalformedReminder)
		})
	}
}

func TestScheduledTaskDue(t *testing.T) {
	t.Parallel()

	fireAt := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	task := ScheduledTask{FireAt: fireAt}

	assert.False(t, task.Due(fireAt.Add(-time.Second)))
	assert.True(t, task.Due(fireAt))
	assert.True(t, task.Due(fireAt.Add(time.Minute)))
}
