package sla

import (
	"strings"
	"time"
)

// Status is the binary on-time/late verdict for a record's current stage.
type Status string

const (
	StatusOnTime Status = "on time"
	StatusLate   Status = "late"
)

// Label returns the Arabic display label used on the export surface.
func (s Status) Label() string {
	switch s {
	case StatusLate:
		return "متأخر"
	case StatusOnTime:
		return "ضمن الوقت"
	default:
		return string(s)
	}
}

// ParseStatus converts a CLI token into a Status. Both the display form
// ("on time") and the flag form ("on-time") are accepted.
func ParseStatus(value string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "late":
		return StatusLate, true
	case "on time", "on-time", "ontime":
		return StatusOnTime, true
	default:
		return "", false
	}
}

// dateLayout matches the registry storage format for stage-entry dates.
const dateLayout = "2006-01-02"

// Derived holds the computed view-model fields for one record.
type Derived struct {
	DaysInStage   int
	DaysRemaining int
	Status        Status
}

// Compute derives days-in-stage, days-remaining, and the status verdict.
//
// The day count is the whole-day difference between today and the stage-entry
// date; future-dated entries yield negative values and are not clamped. A
// missing or unparseable date contributes zero days so the record stays
// visible instead of being excluded. daysRemaining == 0 means due today,
// which is still on time.
func Compute(enteredDate string, slaDays int, today time.Time) Derived {
	daysIn := 0
	if entered, ok := parseEnteredDate(enteredDate); ok {
		daysIn = civilDaysBetween(entered, today)
	}

	remaining := slaDays - daysIn
	status := StatusOnTime
	if remaining < 0 {
		status = StatusLate
	}

	return Derived{
		DaysInStage:   daysIn,
		DaysRemaining: remaining,
		Status:        status,
	}
}

func parseEnteredDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true
	}
	// Legacy rows may carry a full timestamp.
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// civilDaysBetween counts whole calendar days from one date to another,
// ignoring the time-of-day and zone of either value.
func civilDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay) / (24 * time.Hour))
}
