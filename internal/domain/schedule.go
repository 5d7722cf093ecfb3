package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type TaskID string

type ScheduledTask struct {
	ID          TaskID
	Description string
	FireAt      time.Time
	CreatedAt   time.Time
}

// Due reports whether the task should fire at now.
func (t ScheduledTask) Due(now time.Time) bool {
	return !t.FireAt.After(now)
}

type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

var (
	meridiemPattern = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)$`)
	clockPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	separatorWord   = regexp.MustCompile(`\bat\b`)
)

// ParseTimeOfDay accepts "<N>pm", "<N>am" and 24-hour "HH:MM". Dots are
// dropped first so transcriptions like "3 p.m." read as "3pm".
func ParseTimeOfDay(spec string) (TimeOfDay, error) {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(spec)), ".", "")

	if match := meridiemPattern.FindStringSubmatch(cleaned); match != nil {
		n, _ := strconv.Atoi(match[1])
		if n < 1 || n > 12 {
			return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range in %q", ErrInvalidTimeSpec, n, spec)
		}

		hour := n
		switch match[2] {
		case "pm":
			if n != 12 {
				hour = n + 12
			}
		case "am":
			if n == 12 {
				hour = 0
			}
		}
		return TimeOfDay{Hour: hour}, nil
	}

	if match := clockPattern.FindStringSubmatch(cleaned); match != nil {
		hour, _ := strconv.Atoi(match[1])
		minute, _ := strconv.Atoi(match[2])
		if hour > 23 || minute > 59 {
			return TimeOfDay{}, fmt.Errorf("%w: %q is not a valid 24-hour time", ErrInvalidTimeSpec, spec)
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeSpec, spec)
}

// NextOccurrence combines tod with the calendar day of now and rolls it one
// day forward unless it is strictly after now.
func NextOccurrence(tod TimeOfDay, now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour, tod.Minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// ParseReminder splits "task at time" on the separator word "at". The
// separator must appear exactly once.
func ParseReminder(reminder string) (task string, timeSpec string, err error) {
	locations := separatorWord.FindAllStringIndex(reminder, -1)
	switch len(locations) {
	case 0:
		return "", "", fmt.Errorf("%w: missing %q in %q", ErrMalformedReminder, "at", reminder)
	case 1:
	default:
		return "", "", fmt.Errorf("%w: %q appears %d times in %q", ErrMalformedReminder, "at", len(locations), reminder)
	}

	task = strings.TrimSpace(reminder[:locations[0][0]])
	timeSpec = strings.TrimSpace(reminder[locations[0][1]:])
	if task == "" || timeSpec == "" {
		return "", "", fmt.Errorf("%w: expected %q", ErrMalformedReminder, "task at time")
	}

	return task, timeSpec, nil
}

// HasReminderSeparator reports whether text contains the word "at".
func HasReminderSeparator(text string) bool {
	return separatorWord.MatchString(text)
}
